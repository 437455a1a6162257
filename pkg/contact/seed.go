package contact

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-contacts/pkg/model"
)

// ParseSeed decodes a seed document: a YAML or JSON sequence of field-sets.
// The contacts entry may be a list or a single comma separated string. An
// empty document yields an empty seed; any other non-sequence root fails with
// ErrInvalidInput. Ids present in the document are ignored.
func ParseSeed(data []byte) ([]Fields, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Fields{}, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("seed: decode: %v: %w", err, ErrInvalidInput)
	}
	node := &root
	if node.Kind == 0 {
		return []Fields{}, nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return []Fields{}, nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("seed: root must be a sequence of field-sets: %w", ErrInvalidInput)
	}

	var entries []seedEntry
	if err := node.Decode(&entries); err != nil {
		return nil, fmt.Errorf("seed: decode entries: %v: %w", err, ErrInvalidInput)
	}

	seed := make([]Fields, 0, len(entries))
	for _, entry := range entries {
		seed = append(seed, Fields{
			Name:      entry.Name,
			Address:   entry.Address,
			Telephone: entry.Telephone,
			Email:     entry.Email,
			Contacts:  []string(entry.Contacts),
		})
	}
	return seed, nil
}

type seedEntry struct {
	Name      string      `yaml:"name"`
	Address   string      `yaml:"address"`
	Telephone string      `yaml:"telephone"`
	Email     string      `yaml:"email"`
	Contacts  contactList `yaml:"contacts"`
}

// contactList accepts either a YAML sequence or a delimited scalar.
type contactList []string

func (l *contactList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*l = model.SplitList(raw)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: contacts must be a string or a list", value.Line)
	}
}
