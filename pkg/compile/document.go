package compile

import (
	"github.com/vango-dev/domgen/internal/errors"
	"github.com/vango-dev/domgen/pkg/tree"
	"gopkg.in/yaml.v3"
)

// Document is the parser's description of one source file.
type Document struct {
	// File is the path of the source file, used in positions and errors.
	File string `yaml:"file"`

	// Package names the synthesized file when Source is empty.
	Package string `yaml:"package,omitempty"`

	// Source is the Go source with literal placeholders.
	Source string `yaml:"source,omitempty"`

	// Literals are the markup literals of the file.
	Literals []*tree.Literal `yaml:"literals"`
}

// ParseDocument decodes a YAML or JSON document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("E109").WithDetail(err.Error()).Wrap(err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks document-level invariants: literals are present and
// their ids are unique.
func (d *Document) Validate() error {
	seen := make(map[int]bool, len(d.Literals))
	for i, lit := range d.Literals {
		if lit == nil {
			return errors.New("E109").WithDetailf("literal %d is empty", i)
		}
		if seen[lit.ID] {
			return errors.New("E109").WithDetailf("duplicate literal id %d", lit.ID)
		}
		seen[lit.ID] = true
	}
	return nil
}
