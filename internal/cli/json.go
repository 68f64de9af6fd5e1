package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rileyhilliard/statdeck/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
	ErrCodeCardNotFound   = "CARD_NOT_FOUND"
	ErrCodeInvalidValue   = "INVALID_VALUE"
	ErrCodeFormat         = "FORMAT_FAILED"
	ErrCodeRender         = "RENDER_FAILED"
	ErrCodeUnknown        = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONError writes an error response to the writer.
func WriteJSONError(w io.Writer, code, message, suggestion string, details interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error: &JSONError{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
			Details:    details,
		},
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	if sdErr, ok := errors.From(err); ok {
		return &JSONError{
			Code:       mapErrorCode(err, sdErr.Message),
			Message:    sdErr.Message,
			Suggestion: sdErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps an error's category, and for config errors its message,
// to a machine-readable code.
func mapErrorCode(err error, message string) string {
	switch {
	case errors.IsCode(err, errors.ErrConfig):
		msgLower := strings.ToLower(message)
		switch {
		case strings.Contains(msgLower, "no card"):
			return ErrCodeCardNotFound
		case strings.Contains(msgLower, "not found"), strings.Contains(msgLower, "couldn't find"):
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.IsCode(err, errors.ErrInput):
		return ErrCodeInvalidValue
	case errors.IsCode(err, errors.ErrFormat):
		return ErrCodeFormat
	case errors.IsCode(err, errors.ErrRender):
		return ErrCodeRender
	}
	return ErrCodeUnknown
}
