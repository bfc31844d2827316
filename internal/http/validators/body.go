package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

const (
	TitleMaxLength       = 100
	DescriptionMaxLength = 500
)

// decodeObject reads a JSON object and rejects any key not listed in allowed.
// A body over the configured size limit is returned as echo's 413 error.
func decodeObject(body io.Reader, allowed ...string) (map[string]json.RawMessage, *apperrors.ValidationError, error) {
	data, err := io.ReadAll(body)
	if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
		return nil, nil, err
	}
	if err != nil {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Loc:  []string{"body"},
			Msg:  "Unable to read request body",
			Type: apperrors.TypeJSONInvalid,
		}), nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Loc:  []string{"body"},
			Msg:  "Field required",
			Type: apperrors.TypeMissing,
		}), nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Loc:  []string{"body"},
			Msg:  "JSON decode error: expected an object",
			Type: apperrors.TypeJSONInvalid,
		}), nil
	}

	known := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		known[name] = struct{}{}
	}

	verr := apperrors.NewValidationError()
	extra := make([]string, 0)
	for name := range fields {
		if _, ok := known[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		verr.Add(apperrors.FieldError{
			Loc:  []string{"body", name},
			Msg:  "Extra inputs are not permitted",
			Type: apperrors.TypeExtraForbidden,
		})
	}

	return fields, verr, nil
}

func decodeString(fields map[string]json.RawMessage, name string, dst *dto.Optional[string], verr *apperrors.ValidationError) {
	raw, ok := fields[name]
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		*dst = dto.Optional[string]{}
		verr.Add(apperrors.FieldError{
			Loc:  []string{"body", name},
			Msg:  "Input should be a valid string",
			Type: apperrors.TypeStringType,
		})
	}
}

// decodeBool accepts JSON booleans plus the integers 0 and 1 and the
// strings understood by parseBool.
func decodeBool(fields map[string]json.RawMessage, name string, dst *dto.Optional[bool], verr *apperrors.ValidationError) {
	raw, ok := fields[name]
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, dst); err == nil {
		return
	}

	var (
		s      string
		parsed bool
	)
	switch string(bytes.TrimSpace(raw)) {
	case "1":
		parsed, ok = true, true
	case "0":
		parsed, ok = false, true
	default:
		ok = false
		if err := json.Unmarshal(raw, &s); err == nil {
			parsed, ok = parseBool(s)
		}
	}

	if ok {
		*dst = dto.Some(parsed)
		return
	}

	*dst = dto.Optional[bool]{}
	verr.Add(apperrors.FieldError{
		Loc:  []string{"body", name},
		Msg:  "Input should be a valid boolean",
		Type: apperrors.TypeBoolType,
	})
}

func checkLength(name, value string, min, max int, verr *apperrors.ValidationError) {
	n := utf8.RuneCountInString(value)
	switch {
	case n < min:
		verr.Add(apperrors.FieldError{
			Loc:  []string{"body", name},
			Msg:  fmt.Sprintf("String should have at least %d character", min),
			Type: apperrors.TypeStringTooShort,
		})
	case n > max:
		verr.Add(apperrors.FieldError{
			Loc:  []string{"body", name},
			Msg:  fmt.Sprintf("String should have at most %d characters", max),
			Type: apperrors.TypeStringTooLong,
		})
	}
}

func nullNotAllowed(name, msg, typ string, verr *apperrors.ValidationError) {
	verr.Add(apperrors.FieldError{
		Loc:  []string{"body", name},
		Msg:  msg,
		Type: typ,
	})
}

func result(verr *apperrors.ValidationError) error {
	if verr.Empty() {
		return nil
	}
	return verr
}
