// Package theme maps named or file-based themes to the renderer's
// style configuration.
package theme

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/mdv/pkg/renderer"
)

// Style describes one construct's appearance in a theme file. Colors
// are lipgloss color strings: ANSI256 numbers or hex values.
type Style struct {
	Color         string `yaml:"color,omitempty"`
	Background    string `yaml:"background,omitempty"`
	Bold          bool   `yaml:"bold,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Faint         bool   `yaml:"faint,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
}

// Theme holds a style per renderable construct.
type Theme struct {
	Name         string `yaml:"name,omitempty"`
	Code         Style  `yaml:"code,omitempty"`
	Blockquote   Style  `yaml:"blockquote,omitempty"`
	HTML         Style  `yaml:"html,omitempty"`
	Heading      Style  `yaml:"heading,omitempty"`
	FirstHeading Style  `yaml:"first_heading,omitempty"`
	HR           Style  `yaml:"hr,omitempty"`
	ListItem     Style  `yaml:"listitem,omitempty"`
	List         Style  `yaml:"list,omitempty"`
	Table        Style  `yaml:"table,omitempty"`
	TableBorder  Style  `yaml:"table_border,omitempty"`
	Paragraph    Style  `yaml:"paragraph,omitempty"`
	Strong       Style  `yaml:"strong,omitempty"`
	Em           Style  `yaml:"em,omitempty"`
	Codespan     Style  `yaml:"codespan,omitempty"`
	Del          Style  `yaml:"del,omitempty"`
	Link         Style  `yaml:"link,omitempty"`
	Href         Style  `yaml:"href,omitempty"`
	Text         Style  `yaml:"text,omitempty"`
}

// Default is the built-in color theme.
func Default() Theme {
	return Theme{
		Name:         "default",
		Code:         Style{Color: "222"},
		Blockquote:   Style{Color: "245", Italic: true},
		HTML:         Style{Color: "245", Faint: true},
		Heading:      Style{Color: "75", Bold: true},
		FirstHeading: Style{Color: "39", Bold: true, Underline: true},
		HR:           Style{Color: "240"},
		Strong:       Style{Bold: true},
		Em:           Style{Italic: true},
		Codespan:     Style{Color: "222"},
		Del:          Style{Strikethrough: true},
		Link:         Style{Color: "45", Underline: true},
		Href:         Style{Color: "45", Underline: true},
		TableBorder:  Style{Color: "240"},
	}
}

// Mono is the monochrome theme: every construct renders unstyled.
func Mono() Theme {
	return Theme{Name: "mono"}
}

// Load resolves a theme by built-in name, falling back to reading the
// argument as a YAML file path.
func Load(name string) (Theme, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "mono":
		return Mono(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", name, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a YAML theme document.
func Read(r io.Reader) (Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme: %w", err)
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}
	return t, nil
}

// Compile turns the theme into renderer style functions using a
// lipgloss renderer with a forced color profile. Forcing the profile
// keeps output identical whether or not stdout is a terminal, which is
// what tests and pipes need. termenv.Ascii yields unstyled output.
func (t Theme) Compile(profile termenv.Profile) (renderer.Styles, renderer.TableOptions) {
	lr := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(profile))
	lr.SetColorProfile(profile)

	mk := func(s Style) renderer.StyleFunc {
		if s == (Style{}) || profile == termenv.Ascii {
			return nil // renderer substitutes identity
		}
		style := lr.NewStyle()
		if s.Color != "" {
			style = style.Foreground(lipgloss.Color(s.Color))
		}
		if s.Background != "" {
			style = style.Background(lipgloss.Color(s.Background))
		}
		style = style.
			Bold(s.Bold).
			Italic(s.Italic).
			Underline(s.Underline).
			Faint(s.Faint).
			Strikethrough(s.Strikethrough)
		return func(text string) string {
			return style.Render(text)
		}
	}

	styles := renderer.Styles{
		Code:         mk(t.Code),
		Blockquote:   mk(t.Blockquote),
		HTML:         mk(t.HTML),
		Heading:      mk(t.Heading),
		FirstHeading: mk(t.FirstHeading),
		HR:           mk(t.HR),
		ListItem:     mk(t.ListItem),
		List:         mk(t.List),
		Table:        mk(t.Table),
		Paragraph:    mk(t.Paragraph),
		Strong:       mk(t.Strong),
		Em:           mk(t.Em),
		Codespan:     mk(t.Codespan),
		Del:          mk(t.Del),
		Link:         mk(t.Link),
		Href:         mk(t.Href),
		Text:         mk(t.Text),
	}

	border := lr.NewStyle()
	if t.TableBorder.Color != "" && profile != termenv.Ascii {
		border = border.Foreground(lipgloss.Color(t.TableBorder.Color))
	}
	cell := lr.NewStyle().Padding(0, 1)
	tableOpts := renderer.TableOptions{
		Border:      lipgloss.NormalBorder(),
		BorderStyle: border,
		CellStyle:   &cell,
	}
	return styles, tableOpts
}
