package errors

import (
	"fmt"
	"net/http"
)

func TaskNotFound(id int64) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("Task with id %d not found", id),
		StatusCode: http.StatusNotFound,
	}
}
