package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrWorkerNotFound = &Exception{
	Message:    "worker not found",
	StatusCode: http.StatusNotFound,
}

var ErrPropertyNotFound = &Exception{
	Message:    "property not found",
	StatusCode: http.StatusNotFound,
}

var ErrCompanyNotFound = &Exception{
	Message:    "company not found",
	StatusCode: http.StatusNotFound,
}
