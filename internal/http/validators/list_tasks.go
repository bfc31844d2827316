package validators

import (
	"net/url"
	"strconv"
	"strings"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

func ParseListTasksQuery(q url.Values) (dto.ListTasksQuery, error) {
	query := dto.ListTasksQuery{Skip: 0, Limit: DefaultLimit}
	verr := apperrors.NewValidationError()

	if v := q.Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		switch {
		case err != nil:
			verr.Add(intParsingError("query", "skip"))
		case skip < 0:
			verr.Add(apperrors.FieldError{
				Loc:  []string{"query", "skip"},
				Msg:  "Input should be greater than or equal to 0",
				Type: apperrors.TypeGreaterEqual,
			})
		default:
			query.Skip = skip
		}
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		switch {
		case err != nil:
			verr.Add(intParsingError("query", "limit"))
		case limit < 1:
			verr.Add(apperrors.FieldError{
				Loc:  []string{"query", "limit"},
				Msg:  "Input should be greater than or equal to 1",
				Type: apperrors.TypeGreaterEqual,
			})
		case limit > MaxLimit:
			verr.Add(apperrors.FieldError{
				Loc:  []string{"query", "limit"},
				Msg:  "Input should be less than or equal to 1000",
				Type: apperrors.TypeLessEqual,
			})
		default:
			query.Limit = limit
		}
	}

	if v := q.Get("completed"); v != "" {
		completed, ok := parseBool(v)
		if !ok {
			verr.Add(apperrors.FieldError{
				Loc:  []string{"query", "completed"},
				Msg:  "Input should be a valid boolean, unable to interpret input",
				Type: apperrors.TypeBoolType,
			})
		} else {
			query.Completed = &completed
		}
	}

	if !verr.Empty() {
		return dto.ListTasksQuery{}, verr
	}
	return query, nil
}

// ParseTaskID parses the {id} path segment. Any integer is accepted; ids
// that were never assigned are reported as not found by the store lookup.
func ParseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(intParsingError("path", "task_id"))
	}
	return id, nil
}

func intParsingError(in, name string) apperrors.FieldError {
	return apperrors.FieldError{
		Loc:  []string{in, name},
		Msg:  "Input should be a valid integer, unable to parse string as an integer",
		Type: apperrors.TypeIntParsing,
	}
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true, true
	case "false", "0", "no", "off", "f", "n":
		return false, true
	default:
		return false, false
	}
}
