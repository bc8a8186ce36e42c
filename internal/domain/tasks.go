package domain

// DailyTasks tracks how many reward-eligible actions were completed on
// Date (device-local, YYYY-MM-DD). Done never exceeds the configured
// per-day limit after a successful mutation.
type DailyTasks struct {
	Date string `json:"date"`
	Done int    `json:"done"`
}

func (t *DailyTasks) Remaining(perDay int) int {
	r := perDay - t.Done
	if r < 0 {
		return 0
	}
	return r
}
