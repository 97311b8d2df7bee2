package errors

import "net/http"

var ErrCrossTenant = &Exception{
	Message:    "worker and task belong to different companies",
	StatusCode: http.StatusForbidden,
}
