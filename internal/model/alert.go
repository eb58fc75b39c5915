package model

// Alert is a persisted price-threshold alert. Write-once, fire-once: the
// matcher deletes it atomically with notification when price >= target.
type Alert struct {
	ID          int64
	ChatID      int64
	Symbol      string
	TargetPrice float64
}
