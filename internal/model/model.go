package model

// Task is the central record shared by the store, the engine, and the UI.
// DueDate is an ISO YYYY-MM-DD string; empty means no due date. ID is
// zero until the store assigns one.
type Task struct {
	ID          int
	Title       string
	Description string
	DueDate     string
	Priority    string
	Completed   bool
	Category    string
	SubCategory string
	Notes       string
	Tags        []string
}

const (
	DefaultPriority = "Med"
	DefaultCategory = "Other"
)
