package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"clipx/internal/hexview"
)

type Theme struct {
	AddressColor        string `toml:"address_color"`
	SeparatorColor      string `toml:"separator_color"`
	HexEvenColor        string `toml:"hex_even_color"`
	HexOddColor         string `toml:"hex_odd_color"`
	ASCIIColor          string `toml:"ascii_color"`
	SelectionBackground string `toml:"selection_background"`
	CaretBackground     string `toml:"caret_background"`
	CaretShadow         string `toml:"caret_shadow_background"`
	LegendBackground    string `toml:"legend_background"`
	LegendHighlight     string `toml:"legend_highlight"`
	FormatBarBackground string `toml:"format_bar_background"`
	FormatActive        string `toml:"format_active"`
	TabActive           string `toml:"tab_active"`
	TreeDirColor        string `toml:"tree_dir_color"`
	TreeSelected        string `toml:"tree_selected_background"`
	StatusColor         string `toml:"status_color"`
	ErrorColor          string `toml:"error_color"`
	DisabledColor       string `toml:"disabled_color"`
}

type Config struct {
	Theme Theme `toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: Theme{
			AddressColor:        "#951616",
			SeparatorColor:      "#006400",
			HexEvenColor:        "#BBBBBB",
			HexOddColor:         "#5577FF",
			ASCIIColor:          "#BBBBBB",
			SelectionBackground: "#87AAD7",
			CaretBackground:     "#FF0000",
			CaretShadow:         "#803030",
			LegendBackground:    "#0000FF",
			LegendHighlight:     "#FF0000",
			FormatBarBackground: "#222222",
			FormatActive:        "#FF00FF",
			TabActive:           "#FF00FF",
			TreeDirColor:        "#5577FF",
			TreeSelected:        "#404070",
			StatusColor:         "#AAAAAA",
			ErrorColor:          "#FF5555",
			DisabledColor:       "#666666",
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "clipx.toml"
	}
	return filepath.Join(home, ".config", "clipx", "clipx.toml")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()
	path := ConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

type Styles struct {
	Legend          lipgloss.Style
	LegendHighlight lipgloss.Style
	FormatBar       lipgloss.Style
	FormatActive    lipgloss.Style
	TabActive       lipgloss.Style
	TabInactive     lipgloss.Style
	TreeDir         lipgloss.Style
	TreeFile        lipgloss.Style
	TreeSelected    lipgloss.Style
	Status          lipgloss.Style
	Error           lipgloss.Style
	Disabled        lipgloss.Style
	Prompt          lipgloss.Style

	Hex hexview.Styles
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Legend: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.LegendBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		LegendHighlight: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.LegendBackground)).
			Foreground(lipgloss.Color(theme.LegendHighlight)).
			Bold(true),
		FormatBar: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.FormatBarBackground)).
			Foreground(lipgloss.Color("#AAAAAA")),
		FormatActive: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.FormatBarBackground)).
			Foreground(lipgloss.Color(theme.FormatActive)).
			Bold(true),
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TabActive)).
			Bold(true),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")),
		TreeDir: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TreeDirColor)).
			Bold(true),
		TreeFile: lipgloss.NewStyle(),
		TreeSelected: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.TreeSelected)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.StatusColor)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorColor)).
			Bold(true),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DisabledColor)),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),

		Hex: hexview.Styles{
			Address: lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.AddressColor)),
			Separator: lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.SeparatorColor)),
			HexEven: lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.HexEvenColor)),
			HexOdd: lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.HexOddColor)),
			ASCII: lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.ASCIIColor)),
			Selection: lipgloss.NewStyle().
				Background(lipgloss.Color(theme.SelectionBackground)).
				Foreground(lipgloss.Color("#000000")),
			Caret: lipgloss.NewStyle().
				Background(lipgloss.Color(theme.CaretBackground)).
				Foreground(lipgloss.Color("#FFFFFF")),
			CaretShadow: lipgloss.NewStyle().
				Background(lipgloss.Color(theme.CaretShadow)).
				Foreground(lipgloss.Color("#FFFFFF")),
		},
	}
}
