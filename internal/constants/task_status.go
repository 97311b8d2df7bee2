package constants

type TaskStatus string

const (
	StatusDraft      TaskStatus = "DRAFT"
	StatusPlanned    TaskStatus = "PLANNED"
	StatusAssigned   TaskStatus = "ASSIGNED"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusSubmitted  TaskStatus = "SUBMITTED"
	StatusQAReview   TaskStatus = "QA_REVIEW"
	StatusApproved   TaskStatus = "APPROVED"
	StatusRejected   TaskStatus = "REJECTED"
	StatusArchived   TaskStatus = "ARCHIVED"
)

// ActiveStatuses are the statuses that occupy a worker's calendar.
var ActiveStatuses = []TaskStatus{
	StatusAssigned,
	StatusInProgress,
	StatusSubmitted,
	StatusPlanned,
}

var transitions = map[TaskStatus][]TaskStatus{
	StatusDraft:      {StatusPlanned},
	StatusPlanned:    {StatusAssigned},
	StatusAssigned:   {StatusInProgress},
	StatusInProgress: {StatusSubmitted},
	StatusSubmitted:  {StatusQAReview},
	StatusQAReview:   {StatusApproved, StatusRejected},
	StatusApproved:   {StatusArchived},
	StatusRejected:   {StatusArchived},
}

func (s TaskStatus) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

func (s TaskStatus) Valid() bool {
	if s == StatusArchived {
		return true
	}
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether to is a forward or branch step from from.
func CanTransition(from, to TaskStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AssignTransition is the forced transition applied whenever a worker is
// assigned. Any non-archived status moves to ASSIGNED; regressed is true when
// the task had already progressed past ASSIGNED.
func AssignTransition(from TaskStatus) (next TaskStatus, regressed bool, ok bool) {
	if from == StatusArchived {
		return from, false, false
	}
	switch from {
	case "", StatusDraft, StatusPlanned, StatusAssigned:
		return StatusAssigned, false, true
	}
	return StatusAssigned, !CanTransition(from, StatusAssigned), true
}
