package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/statdeck/internal/errors"
)

func decodeEnvelope(t *testing.T, buf *bytes.Buffer) JSONEnvelope {
	t.Helper()
	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	return env
}

func TestWriteJSONSuccess_BasicData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONSuccess(&buf, map[string]string{"key": "value"}))

	env := decodeEnvelope(t, &buf)
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)

	dataMap, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "value", dataMap["key"])
}

func TestWriteJSONSuccess_NilData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONSuccess(&buf, nil))

	env := decodeEnvelope(t, &buf)
	assert.True(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Nil(t, env.Error)
}

func TestWriteJSONSuccess_KeepsSymbolsUnescaped(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONSuccess(&buf, map[string]string{"text": "₹12,400 <goal>"}))

	assert.Contains(t, buf.String(), "₹12,400 <goal>")
}

func TestWriteJSONError_AllFields(t *testing.T) {
	var buf bytes.Buffer
	details := map[string]string{"key": "revenue"}
	require.NoError(t, WriteJSONError(&buf, ErrCodeInvalidValue, "Not a number", "Pass a number", details))

	env := decodeEnvelope(t, &buf)
	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeInvalidValue, env.Error.Code)
	assert.Equal(t, "Not a number", env.Error.Message)
	assert.Equal(t, "Pass a number", env.Error.Suggestion)

	detailsMap, ok := env.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "revenue", detailsMap["key"])
}

func TestWriteJSONFromError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantCode       string
		wantMessage    string
		wantSuggestion string
	}{
		{
			name:        "generic error",
			err:         fmt.Errorf("something went wrong"),
			wantCode:    ErrCodeUnknown,
			wantMessage: "something went wrong",
		},
		{
			name:           "structured error",
			err:            errors.New(errors.ErrConfig, "Config file not found", "Run 'statdeck init' to create one"),
			wantCode:       ErrCodeConfigNotFound,
			wantMessage:    "Config file not found",
			wantSuggestion: "Run 'statdeck init' to create one",
		},
		{
			name:        "wrapped structured error",
			err:         fmt.Errorf("set failed: %w", errors.New(errors.ErrInput, "'abc' doesn't contain a number", "")),
			wantCode:    ErrCodeInvalidValue,
			wantMessage: "'abc' doesn't contain a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteJSONFromError(&buf, tt.err))

			env := decodeEnvelope(t, &buf)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Equal(t, tt.wantMessage, env.Error.Message)
			assert.Equal(t, tt.wantSuggestion, env.Error.Suggestion)
		})
	}
}

func TestWriteJSONFromError_NilError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONFromError(&buf, nil))

	env := decodeEnvelope(t, &buf)
	assert.False(t, env.Success)
	assert.Nil(t, env.Error)
}

func TestErrorToJSON_NilReturnsNil(t *testing.T) {
	assert.Nil(t, ErrorToJSON(nil))
}

func TestErrorToJSON_AllInternalErrorCodes(t *testing.T) {
	tests := []struct {
		name         string
		internalCode string
		message      string
		wantCode     string
	}{
		{"config not found", errors.ErrConfig, "Config file not found", ErrCodeConfigNotFound},
		{"config couldn't find", errors.ErrConfig, "Couldn't find config file", ErrCodeConfigNotFound},
		{"config invalid", errors.ErrConfig, "Duplicate key 'revenue'", ErrCodeConfigInvalid},
		{"unknown card", errors.ErrConfig, "No card with key 'revnue'", ErrCodeCardNotFound},
		{"bad value", errors.ErrInput, "'n/a' doesn't contain a number", ErrCodeInvalidValue},
		{"format", errors.ErrFormat, "Unknown currency code 'XYZ'", ErrCodeFormat},
		{"render", errors.ErrRender, "Dashboard exited with an error", ErrCodeRender},
		{"unknown internal code", "MYSTERY", "Some message", ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ErrorToJSON(errors.New(tt.internalCode, tt.message, "some suggestion"))

			require.NotNil(t, result)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.message, result.Message)
			assert.Equal(t, "some suggestion", result.Suggestion)
		})
	}
}

func TestErrorToJSON_WrappedError(t *testing.T) {
	inner := errors.New(errors.ErrConfig, "No card with key 'profit'", "Check the key.")
	result := ErrorToJSON(fmt.Errorf("set: %w", inner))

	require.NotNil(t, result)
	assert.Equal(t, ErrCodeCardNotFound, result.Code)
	assert.Equal(t, "No card with key 'profit'", result.Message)
}

func TestJSONEnvelope_Structure(t *testing.T) {
	data, err := json.Marshal(JSONEnvelope{Success: true, Data: "test"})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"success":true`)
	assert.Contains(t, string(data), `"data":"test"`)
	assert.NotContains(t, string(data), `"error"`)
}

func TestJSONError_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(JSONError{Code: "TEST", Message: "Test"})
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"suggestion"`)
	assert.NotContains(t, string(data), `"details"`)
}

func TestWriteJSONEnvelope_Formatting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONSuccess(&buf, map[string]string{"test": "value"}))

	output := buf.String()
	assert.Contains(t, output, "\n  ", "indented with 2 spaces")
	assert.Equal(t, byte('\n'), output[len(output)-1])
}

func TestErrorCodes_UniqueUpperSnake(t *testing.T) {
	codes := []string{
		ErrCodeConfigNotFound,
		ErrCodeConfigInvalid,
		ErrCodeCardNotFound,
		ErrCodeInvalidValue,
		ErrCodeFormat,
		ErrCodeRender,
		ErrCodeUnknown,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "duplicate error code: %s", code)
		seen[code] = true
		assert.Regexp(t, `^[A-Z_]+$`, code)
	}
}
