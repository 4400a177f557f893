package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Latte (light) and Mocha (dark) base colors.
type palette struct {
	text    lipgloss.Color
	subtext lipgloss.Color
	surface lipgloss.Color
	accent  lipgloss.Color
	focus   lipgloss.Color
	warning lipgloss.Color
	err     lipgloss.Color
}

var (
	latte = palette{
		text:    "#4c4f69",
		subtext: "#6c6f85",
		surface: "#ccd0da",
		accent:  "#1e66f5",
		focus:   "#7287fd",
		warning: "#df8e1d",
		err:     "#d20f39",
	}
	mocha = palette{
		text:    "#cdd6f4",
		subtext: "#a6adc8",
		surface: "#313244",
		accent:  "#89b4fa",
		focus:   "#b4befe",
		warning: "#f9e2af",
		err:     "#f38ba8",
	}
)

var tagColors = map[string]lipgloss.Color{
	"normal":   "#9ca3af",
	"fire":     "#ef4444",
	"water":    "#3b82f6",
	"electric": "#facc15",
	"grass":    "#22c55e",
	"ice":      "#67e8f9",
	"fighting": "#b91c1c",
	"poison":   "#a855f7",
	"ground":   "#ca8a04",
	"flying":   "#a5b4fc",
	"psychic":  "#ec4899",
	"bug":      "#84cc16",
	"rock":     "#854d0e",
	"ghost":    "#7e22ce",
	"dragon":   "#4f46e5",
	"dark":     "#374151",
	"steel":    "#6b7280",
	"fairy":    "#f9a8d4",
}

type Styles struct {
	Theme       Theme
	Title       lipgloss.Style
	Heading     lipgloss.Style
	Name        lipgloss.Style
	Muted       lipgloss.Style
	Favorite    lipgloss.Style
	Page        lipgloss.Style
	CurrentPage lipgloss.Style
	Error       lipgloss.Style
	Bar         lipgloss.Style

	tagBase  lipgloss.Style
	fallback lipgloss.Color
}

func For(t Theme) Styles {
	p := mocha
	if t == Light {
		p = latte
	}
	return Styles{
		Theme:       t,
		Title:       lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Heading:     lipgloss.NewStyle().Bold(true).Foreground(p.text),
		Name:        lipgloss.NewStyle().Bold(true).Foreground(p.text),
		Muted:       lipgloss.NewStyle().Foreground(p.subtext),
		Favorite:    lipgloss.NewStyle().Foreground(p.warning),
		Page:        lipgloss.NewStyle().Foreground(p.text).Padding(0, 1),
		CurrentPage: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(p.accent).Padding(0, 1),
		Error:       lipgloss.NewStyle().Foreground(p.err),
		Bar:         lipgloss.NewStyle().Foreground(p.focus),
		tagBase:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Padding(0, 1),
		fallback:    p.surface,
	}
}

// Tag renders name as a colored badge. Unknown tags use the surface color.
func (s Styles) Tag(name string) string {
	color, ok := tagColors[name]
	if !ok {
		color = s.fallback
	}
	return s.tagBase.Background(color).Render(name)
}
