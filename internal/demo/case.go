// Package demo runs named splitting examples and prints their results.
package demo

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DjordjeVuckovic/strsplit/internal/apperr"
	"github.com/DjordjeVuckovic/strsplit/pkg/strsplit"
	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeSplit Mode = "split"
	ModeUntil Mode = "until"
)

// Case is one demonstration. Delimiter uses the strsplit.ParseDelimiter
// syntax; in until mode it must name a single rune.
type Case struct {
	Name      string `yaml:"name"`
	Input     string `yaml:"input"`
	Delimiter string `yaml:"delimiter"`
	Mode      Mode   `yaml:"mode"`
}

func DefaultCases() []Case {
	return []Case{
		{Name: "letters", Input: "a b c  d e", Delimiter: "literal: ", Mode: ModeSplit},
		{Name: "until_char result", Input: "hello world", Delimiter: "rune:o", Mode: ModeUntil},
		{Name: "fruits", Input: "apple,banana,mango", Delimiter: "rune:,", Mode: ModeSplit},
	}
}

func LoadCasesFromFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cases file: %w", err)
	}
	defer f.Close()

	return LoadCases(f)
}

// LoadCases decodes a YAML list of cases and validates every entry.
// A missing mode defaults to split.
func LoadCases(r io.Reader) ([]Case, error) {
	var cases []Case
	if err := yaml.NewDecoder(r).Decode(&cases); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperr.NewValidation("cases file is empty")
		}
		return nil, apperr.NewValidationWrap("parse cases YAML", err)
	}

	for i := range cases {
		if cases[i].Mode == "" {
			cases[i].Mode = ModeSplit
		}
		if err := cases[i].validate(); err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
	}
	return cases, nil
}

func (c Case) validate() error {
	if c.Name == "" {
		return apperr.NewValidation("case has no name")
	}

	d, err := strsplit.ParseDelimiter(c.Delimiter)
	if err != nil {
		return err
	}

	switch c.Mode {
	case ModeSplit:
	case ModeUntil:
		if _, ok := d.(strsplit.Rune); !ok {
			return apperr.NewValidationf("case %q: until mode needs a rune delimiter", c.Name)
		}
	default:
		return apperr.NewValidationf("case %q: unknown mode %q", c.Name, c.Mode)
	}
	return nil
}
