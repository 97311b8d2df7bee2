package errors

import "net/http"

var ErrTaskArchived = &Exception{
	Message:    "archived tasks cannot be assigned",
	StatusCode: http.StatusConflict,
}

var ErrOptimisticLock = &Exception{
	Message:    "optimistic locking conflict",
	StatusCode: http.StatusConflict,
}

var ErrAssignmentLocked = &Exception{
	Message:    "another assignment for this worker and day is in progress",
	StatusCode: http.StatusConflict,
}
