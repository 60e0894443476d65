package valueobjects

import "fmt"

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// statusTransitions is exhaustive. Anything missing, including staying in the
// same status, is rejected.
var statusTransitions = map[Status][]Status{
	StatusNew: {
		StatusInProgress,
		StatusClosed,
	},
	StatusInProgress: {
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusClosed,
		StatusInProgress,
	},
	StatusClosed: {
		StatusInProgress,
	},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the targets reachable from s.
func (s Status) AllowedTransitions() []Status {
	out := make([]Status, len(statusTransitions[s]))
	copy(out, statusTransitions[s])
	return out
}

// IsTerminal reports whether the inquiry counts as handled.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// IsOpen reports whether staff still owe the sender an answer.
func (s Status) IsOpen() bool {
	return s == StatusNew || s == StatusInProgress
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// IsReopen reports whether moving from s to next is the reopen edge.
func (s Status) IsReopen(next Status) bool {
	return s.IsTerminal() && next == StatusInProgress
}

func Statuses() []Status {
	return []Status{StatusNew, StatusInProgress, StatusResolved, StatusClosed}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid contact status: %s", s)
	}
	return st, nil
}
