package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/statdeck/internal/config"
	"github.com/rileyhilliard/statdeck/internal/errors"
)

func TestSetCommand(t *testing.T) {
	dir := inTempDir(t)
	path := writeTestConfig(t, dir, testConfigYAML)

	var buf bytes.Buffer
	require.NoError(t, setCommand(&buf, "orders", "402", false))
	assert.Contains(t, buf.String(), "Set orders to 402")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	card, _, err := config.FindCard(cfg, "orders")
	require.NoError(t, err)
	assert.Equal(t, "402", card.Value)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# keep this comment")
}

func TestSetCommand_JSON(t *testing.T) {
	dir := inTempDir(t)
	path := writeTestConfig(t, dir, testConfigYAML)

	var buf bytes.Buffer
	require.NoError(t, setCommand(&buf, "revenue", "₹15,000", true))

	var env struct {
		Success bool      `json:"success"`
		Data    SetOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, SetOutput{Config: path, Key: "revenue", Value: "₹15,000", Parsed: 15000}, env.Data)
}

func TestSetCommand_ExplicitConfig(t *testing.T) {
	dir := inTempDir(t)
	path := writeTestConfig(t, dir, testConfigYAML)
	require.NoError(t, os.Rename(path, dir+"/sales.yaml"))
	cfgFile = dir + "/sales.yaml"

	require.NoError(t, setCommand(&bytes.Buffer{}, "revenue", "9000", false))

	cfg, err := config.Load(cfgFile)
	require.NoError(t, err)
	card, _, err := config.FindCard(cfg, "revenue")
	require.NoError(t, err)
	assert.Equal(t, "9000", card.Value)
}

func TestSetCommand_Errors(t *testing.T) {
	tests := []struct {
		name        string
		noConfig    bool
		key         string
		value       string
		wantCode    string
		wantJSON    string
		wantMessage string
	}{
		{
			name:        "no config file",
			noConfig:    true,
			key:         "revenue",
			value:       "10",
			wantCode:    errors.ErrConfig,
			wantJSON:    ErrCodeConfigNotFound,
			wantMessage: "statdeck init",
		},
		{
			name:        "unknown key suggests a close match",
			key:         "revenu",
			value:       "10",
			wantCode:    errors.ErrConfig,
			wantJSON:    ErrCodeCardNotFound,
			wantMessage: "Did you mean: revenue?",
		},
		{
			name:        "progress keys aren't cards",
			key:         "goal",
			value:       "10",
			wantCode:    errors.ErrConfig,
			wantJSON:    ErrCodeCardNotFound,
			wantMessage: "No card with key 'goal'",
		},
		{
			name:        "value without a number",
			key:         "revenue",
			value:       "lots",
			wantCode:    errors.ErrInput,
			wantJSON:    ErrCodeInvalidValue,
			wantMessage: "doesn't contain a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := inTempDir(t)
			var original []byte
			if !tt.noConfig {
				path := writeTestConfig(t, dir, testConfigYAML)
				original, _ = os.ReadFile(path)
			}

			var buf bytes.Buffer
			err := setCommand(&buf, tt.key, tt.value, false)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.wantCode), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMessage)

			buf.Reset()
			err = setCommand(&buf, tt.key, tt.value, true)
			require.Error(t, err)
			var env JSONEnvelope
			require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantJSON, env.Error.Code)

			if !tt.noConfig {
				content, _ := os.ReadFile(dir + "/.statdeck.yaml")
				assert.Equal(t, string(original), string(content), "file is unchanged")
			}
		})
	}
}
