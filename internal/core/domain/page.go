package domain

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Pagination selects a page of the descending-by-creation-time task order.
// Cursor is the identifier of the last item of the previous page; empty means
// the first page.
type Pagination struct {
	Limit  int
	Cursor string
}

// ClampedLimit normalizes the requested page size into [1, MaxPageLimit],
// falling back to DefaultPageLimit when unset.
func (p Pagination) ClampedLimit() int {
	if p.Limit <= 0 {
		return DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		return MaxPageLimit
	}
	return p.Limit
}

// TaskPage is one page of a user's tasks. NextCursor is nil when no further
// items remain.
type TaskPage struct {
	Items      []Task
	NextCursor *string
}
