package constants

// Redis key formats
const (
	// Dashboard Service
	KeyDashboardSummary        = "dashboard:summary:%s" // Format: dashboard:summary:{scope} where scope is "admin" or the company id
	KeyDashboardSummaryPattern = "dashboard:summary:*"
)
