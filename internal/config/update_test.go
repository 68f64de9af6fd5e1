package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const updateFixture = `# dashboard config
version: 1
tabs:
  - name: Sales
    cards:
      # headline number
      - key: revenue
        label: Revenue
        value: "₹12,400"
      - key: orders
        label: Orders
`

func TestSetCardValue_Replaces(t *testing.T) {
	path := writeConfig(t, t.TempDir(), updateFixture)

	require.NoError(t, SetCardValue(path, "revenue", "₹15,000"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# dashboard config")
	assert.Contains(t, content, "# headline number")
	assert.Contains(t, content, "₹15,000")
	assert.NotContains(t, content, "₹12,400")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "₹15,000", cfg.Tabs[0].Cards[0].Value)
}

func TestSetCardValue_AddsMissingValue(t *testing.T) {
	path := writeConfig(t, t.TempDir(), updateFixture)

	require.NoError(t, SetCardValue(path, "orders", "320"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "320", cfg.Tabs[0].Cards[1].Value)
	assert.Equal(t, "Orders", cfg.Tabs[0].Cards[1].Label)
}

func TestSetCardValue_UnknownKey(t *testing.T) {
	path := writeConfig(t, t.TempDir(), updateFixture)

	err := SetCardValue(path, "missing", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No card with key 'missing'")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, updateFixture, string(data), "file is untouched on error")
}

func TestSetCardValue_MissingFile(t *testing.T) {
	err := SetCardValue(filepath.Join(t.TempDir(), "nope.yaml"), "revenue", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config file")
}

func TestSetCardValue_EmptyFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")
	err := SetCardValue(path, "revenue", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config file is empty")
}
