package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/statdeck/internal/errors"
)

// SetCardValue rewrites the value of the card with the given key in the
// config file. It edits the YAML node tree so comments and key order survive.
func SetCardValue(configPath, key, value string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists: "+configPath)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file",
			"Check the YAML syntax in "+configPath)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return errors.New(errors.ErrConfig,
			"Config file is empty",
			"Run 'statdeck init' to create one.")
	}

	card := findCardNode(root.Content[0], key)
	if card == nil {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("No card with key '%s' in %s", key, configPath),
			"Card keys live under tabs[].cards[].key.")
	}

	if valueNode := findMapValue(card, "value"); valueNode != nil {
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = "!!str"
		valueNode.Value = value
		valueNode.Style = 0
	} else {
		card.Content = append(card.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "value"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"This is unexpected - the file was not changed.")
	}
	encoder.Close()

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check file permissions on "+configPath)
	}
	return nil
}

// findCardNode walks tabs[].cards[] for the mapping whose key matches.
func findCardNode(doc *yaml.Node, key string) *yaml.Node {
	tabs := findMapValue(doc, "tabs")
	if tabs == nil || tabs.Kind != yaml.SequenceNode {
		return nil
	}

	for _, tab := range tabs.Content {
		cards := findMapValue(tab, "cards")
		if cards == nil || cards.Kind != yaml.SequenceNode {
			continue
		}
		for _, card := range cards.Content {
			if k := findMapValue(card, "key"); k != nil && k.Value == key {
				return card
			}
		}
	}
	return nil
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
