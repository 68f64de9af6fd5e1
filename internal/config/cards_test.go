package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/statdeck/internal/errors"
)

func TestFindCard(t *testing.T) {
	cfg := DefaultConfig()

	card, ref, err := FindCard(cfg, "saved")
	require.NoError(t, err)
	assert.Equal(t, "Saved", card.Label)
	assert.Equal(t, CardRef{Tab: 1, Card: 1}, ref)

	// The returned card aliases the config.
	card.Value = "₹1"
	assert.Equal(t, "₹1", cfg.Tabs[1].Cards[1].Value)
}

func TestFindCard_Suggests(t *testing.T) {
	_, _, err := FindCard(DefaultConfig(), "revnue")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "No card with key 'revnue'")
	assert.Contains(t, err.Error(), "Did you mean: revenue?")
}

func TestFindCard_ListsAvailable(t *testing.T) {
	_, _, err := FindCard(DefaultConfig(), "latency")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available cards: revenue, orders, customers, spent, saved")
}

func TestFindCard_NilConfig(t *testing.T) {
	_, _, err := FindCard(nil, "revenue")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestCardKeys(t *testing.T) {
	assert.Equal(t, []string{"revenue", "orders", "customers", "spent", "saved"}, CardKeys(DefaultConfig()))
	assert.Nil(t, CardKeys(nil))
	assert.Equal(t, 5, CardCount(DefaultConfig()))
}
