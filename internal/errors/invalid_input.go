package errors

import "net/http"

var ErrTaskIDRequired = &Exception{
	Message:    "task id is required",
	StatusCode: http.StatusBadRequest,
}

var ErrWorkerIDRequired = &Exception{
	Message:    "worker id is required",
	StatusCode: http.StatusBadRequest,
}

var ErrCompanyIDRequired = &Exception{
	Message:    "company id is required",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidDate = &Exception{
	Message:    "date must be YYYY-MM-DD or RFC3339",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidWindow = &Exception{
	Message:    "window end must not be before its start",
	StatusCode: http.StatusBadRequest,
}

var ErrScheduledDateRequired = &Exception{
	Message:    "task has no scheduled date",
	StatusCode: http.StatusBadRequest,
}

var ErrNotAWorker = &Exception{
	Message:    "user is not an assignable worker",
	StatusCode: http.StatusBadRequest,
}
