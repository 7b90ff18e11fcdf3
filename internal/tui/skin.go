package tui

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed skins.yml
var builtinSkinsYAML []byte

// skinSpec is the declarative form of a skin as written in skins.yml.
type skinSpec struct {
	Clock      string `yaml:"clock"`
	Bold       bool   `yaml:"bold"`
	FooterKey  string `yaml:"footer-key"`
	FooterDesc string `yaml:"footer-desc"`
}

// Skin is the resolved lipgloss style set for the clock surface.
type Skin struct {
	Name       string
	Clock      lipgloss.Style
	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style
}

// builtinSkins parses the embedded skin table.
func builtinSkins() (map[string]skinSpec, error) {
	specs := make(map[string]skinSpec)
	if err := yaml.Unmarshal(builtinSkinsYAML, &specs); err != nil {
		return nil, fmt.Errorf("parsing built-in skins: %w", err)
	}
	return specs, nil
}

// LoadSkin resolves a built-in skin by name.
func LoadSkin(name string) (Skin, error) {
	specs, err := builtinSkins()
	if err != nil {
		return Skin{}, err
	}

	spec, ok := specs[name]
	if !ok {
		return Skin{}, fmt.Errorf("unknown skin %q (available: %v)", name, skinNames(specs))
	}

	clockStyle := lipgloss.NewStyle().Bold(spec.Bold)
	if spec.Clock != "" {
		clockStyle = clockStyle.Foreground(lipgloss.Color(spec.Clock))
	}

	return Skin{
		Name:       name,
		Clock:      clockStyle,
		FooterKey:  lipgloss.NewStyle().Foreground(lipgloss.Color(spec.FooterKey)),
		FooterDesc: lipgloss.NewStyle().Foreground(lipgloss.Color(spec.FooterDesc)),
	}, nil
}

func skinNames(specs map[string]skinSpec) []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
