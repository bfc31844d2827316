package validators

import (
	"io"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

// DecodeUpdateTaskRequest decodes and validates a partial update payload.
func DecodeUpdateTaskRequest(body io.Reader) (dto.UpdateTaskRequest, error) {
	var req dto.UpdateTaskRequest

	fields, verr, err := decodeObject(body, "title", "description", "completed")
	if err != nil {
		return req, err
	}
	if fields == nil {
		return req, verr
	}

	decodeString(fields, "title", &req.Title, verr)
	decodeString(fields, "description", &req.Description, verr)
	decodeBool(fields, "completed", &req.Completed, verr)

	validateUpdate(&req, verr)
	return req, result(verr)
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	verr := apperrors.NewValidationError()
	validateUpdate(r, verr)
	return result(verr)
}

// validateUpdate checks only the fields present in the payload. title and
// completed are never stored as null, so an explicit null is rejected.
func validateUpdate(r *dto.UpdateTaskRequest, verr *apperrors.ValidationError) {
	if r.Title.Set {
		if r.Title.Null {
			nullNotAllowed("title", "Input should be a valid string", apperrors.TypeStringType, verr)
		} else {
			checkLength("title", r.Title.Value, 1, TitleMaxLength, verr)
		}
	}

	if r.Description.Set && !r.Description.Null {
		checkLength("description", r.Description.Value, 0, DescriptionMaxLength, verr)
	}

	if r.Completed.Set && r.Completed.Null {
		nullNotAllowed("completed", "Input should be a valid boolean", apperrors.TypeBoolType, verr)
	}
}
