package validators

import (
	"io"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

// DecodeCreateTaskRequest decodes and validates a create payload. Shape and
// constraint errors are reported together.
func DecodeCreateTaskRequest(body io.Reader) (dto.CreateTaskRequest, error) {
	var req dto.CreateTaskRequest

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

	validateCreate(&req, verr)
	return req, result(verr)
}

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	verr := apperrors.NewValidationError()
	validateCreate(r, verr)
	return result(verr)
}

// validateCreate skips fields that already failed to decode.
func validateCreate(r *dto.CreateTaskRequest, verr *apperrors.ValidationError) {
	if !verr.HasField("body", "title") {
		switch {
		case !r.Title.Set:
			verr.Add(apperrors.FieldError{
				Loc:  []string{"body", "title"},
				Msg:  "Field required",
				Type: apperrors.TypeMissing,
			})
		case r.Title.Null:
			nullNotAllowed("title", "Input should be a valid string", apperrors.TypeStringType, verr)
		default:
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
