package model

// Time is the hour total recorded for one task on one day.
type Time struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Time  int    `json:"time"`
}

// TimeResult is the finalized outcome of one answered quiz: per-task
// hour totals in task-configuration order, zero-hour tasks excluded.
// It is immutable once emitted by the allocation engine.
type TimeResult struct {
	Date  QuizzDate `json:"date"`
	Times []Time    `json:"times"`
}

// TempoUpdate is one worklog submission computed from a TimeResult:
// a resolved ticket key, the hours to log against it, and the Tempo
// credentials to submit with. It is ephemeral and never persisted.
type TempoUpdate struct {
	Ticket string
	Time   int
	Tempo  TempoConfig
}
