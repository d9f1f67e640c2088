package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rlocus/internal/analysis"
	"github.com/san-kum/rlocus/internal/viz"
)

var (
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	on     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	off    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Viewer shows a computed report. It never touches the engine: toggles only
// change what gets drawn.
type Viewer struct {
	report  *analysis.Report
	layers  viz.Layers
	theme   int
	summary bool

	width  int
	height int
}

// NewViewer builds a viewer for r with every layer visible.
func NewViewer(r *analysis.Report, theme string) Viewer {
	v := Viewer{
		report:  r,
		layers:  viz.AllLayers,
		summary: true,
		width:   80,
		height:  24,
	}
	for i, t := range viz.Themes {
		if t.Name == theme {
			v.theme = i
		}
	}
	return v
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case "l":
			v.layers.Locus = !v.layers.Locus
		case "a":
			v.layers.Asymptotes = !v.layers.Asymptotes
		case "b":
			v.layers.Breakaway = !v.layers.Breakaway
		case "x":
			v.layers.Axes = !v.layers.Axes
		case "s":
			v.summary = !v.summary
		case "t":
			v.theme = (v.theme + 1) % len(viz.Themes)
		}
	}
	return v, nil
}

// Layers reports the current toggle state.
func (v Viewer) Layers() viz.Layers { return v.layers }

// Theme reports the active theme.
func (v Viewer) Theme() viz.Theme { return viz.Themes[v.theme] }

func (v Viewer) View() string {
	theme := v.Theme()
	cw, ch := v.plotSize()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(viz.RenderReport(v.report, cw, ch, v.layers, theme))
	b.WriteString(dimmer.Render(strings.Repeat("─", cw)) + "\n")
	if v.summary {
		b.WriteString(viz.Summary(v.report, theme))
	}
	b.WriteString("\n")
	b.WriteString(v.status() + "\n")
	b.WriteString(dim.Render("l locus  a asymptotes  b breakaway  x axes  s summary  t theme  q quit") + "\n")
	return b.String()
}

func (v Viewer) plotSize() (int, int) {
	cw := v.width - 2
	if cw < 40 {
		cw = 40
	}
	reserved := 5
	if v.summary {
		reserved += 9 + len(v.report.Departures) + len(v.report.Arrivals)
	}
	ch := v.height - reserved
	if ch < 10 {
		ch = 10
	}
	return cw, ch
}

func (v Viewer) status() string {
	flag := func(name string, set bool) string {
		if set {
			return on.Render("● " + name)
		}
		return off.Render("○ " + name)
	}
	return fmt.Sprintf("%s  %s  %s  %s  %s",
		flag("locus", v.layers.Locus),
		flag("asymptotes", v.layers.Asymptotes),
		flag("breakaway", v.layers.Breakaway),
		flag("axes", v.layers.Axes),
		dim.Render("theme "+v.Theme().Name))
}

// Run opens the viewer on the alternate screen and blocks until it exits.
func Run(r *analysis.Report, theme string) error {
	p := tea.NewProgram(NewViewer(r, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
