package dotfiles

import (
	"encoding/json"
	"fmt"
)

// PrettierFile is the formatter-rules file name.
const PrettierFile = ".prettierrc"

// Prettierrc is the formatter configuration. Field order is the file's key order.
type Prettierrc struct {
	SingleQuote    bool   `json:"singleQuote"`
	TrailingComma  string `json:"trailingComma"`
	PrintWidth     int    `json:"printWidth"`
	UseTabs        bool   `json:"useTabs"`
	TabWidth       int    `json:"tabWidth"`
	Semi           bool   `json:"semi"`
	BracketSpacing bool   `json:"bracketSpacing"`
}

// DefaultPrettierrc returns the formatter rules written into every project.
func DefaultPrettierrc() Prettierrc {
	return Prettierrc{
		SingleQuote:    false,
		TrailingComma:  "all",
		PrintWidth:     100,
		UseTabs:        false,
		TabWidth:       4,
		Semi:           true,
		BracketSpacing: true,
	}
}

// Marshal encodes the rules with a four space indent.
func (p Prettierrc) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", PrettierFile, err)
	}
	return append(data, '\n'), nil
}
