package config

import (
	"fmt"

	"github.com/rileyhilliard/statdeck/internal/errors"
	"github.com/rileyhilliard/statdeck/internal/util"
)

// CardRef locates a card within the config.
type CardRef struct {
	Tab  int
	Card int
}

// FindCard returns the card with the given key and where it lives.
// Unknown keys get a suggestion for close matches.
func FindCard(cfg *Config, key string) (*CardConfig, CardRef, error) {
	if cfg == nil {
		return nil, CardRef{}, errors.New(errors.ErrConfig,
			"Config hasn't been loaded yet",
			"This is unexpected - load a config before looking up cards.")
	}

	for ti := range cfg.Tabs {
		for ci := range cfg.Tabs[ti].Cards {
			if cfg.Tabs[ti].Cards[ci].Key == key {
				return &cfg.Tabs[ti].Cards[ci], CardRef{Tab: ti, Card: ci}, nil
			}
		}
	}

	keys := CardKeys(cfg)
	hint := "Check the 'tabs' section of your .statdeck.yaml for card keys."
	if similar := util.SuggestSimilar(key, keys, 3); len(similar) > 0 {
		hint = fmt.Sprintf("Did you mean: %s?", util.JoinOrNone(similar))
	} else if len(keys) > 0 {
		hint = fmt.Sprintf("Available cards: %s", util.JoinOrNone(keys))
	}
	return nil, CardRef{}, errors.New(errors.ErrConfig,
		fmt.Sprintf("No card with key '%s'", key),
		hint)
}

// CardKeys returns every card key in tab order.
func CardKeys(cfg *Config) []string {
	if cfg == nil {
		return nil
	}
	var keys []string
	for _, tab := range cfg.Tabs {
		for _, card := range tab.Cards {
			keys = append(keys, card.Key)
		}
	}
	return keys
}

// CardCount returns the number of cards across all tabs.
func CardCount(cfg *Config) int {
	return len(CardKeys(cfg))
}
