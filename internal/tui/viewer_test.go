package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/rlocus/internal/analysis"
	"github.com/san-kum/rlocus/internal/locus"
	"github.com/san-kum/rlocus/internal/viz"
)

func testReport(t *testing.T) *analysis.Report {
	t.Helper()
	set := locus.New([]complex128{0, -2, -4}, []complex128{-1})
	opts := analysis.Options{
		ScanX:      locus.Interval{Min: -6, Max: 2},
		ScanY:      locus.Interval{Min: -4, Max: 4},
		Resolution: 40,
		Tolerance:  locus.DefaultAngleTolerance,
		Breakaway: locus.BreakawaySearch{
			Range:   locus.Interval{Min: -5, Max: 1},
			Samples: 60,
			Step:    locus.DefaultDerivativeStep,
		},
	}
	r, err := analysis.Run("textbook", set, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return r
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewer_Toggles(t *testing.T) {
	var m tea.Model = NewViewer(testReport(t), "minimal")

	for _, k := range []string{"l", "a", "b", "x"} {
		m, _ = m.Update(key(k))
	}
	layers := m.(Viewer).Layers()
	if layers != (viz.Layers{}) {
		t.Errorf("all layers should be off, got %+v", layers)
	}

	m, _ = m.Update(key("l"))
	if !m.(Viewer).Layers().Locus {
		t.Error("second l should turn the locus back on")
	}
}

func TestViewer_ThemeCycle(t *testing.T) {
	var m tea.Model = NewViewer(testReport(t), "minimal")
	if got := m.(Viewer).Theme().Name; got != "minimal" {
		t.Fatalf("initial theme = %q", got)
	}
	for range viz.Themes {
		m, _ = m.Update(key("t"))
	}
	if got := m.(Viewer).Theme().Name; got != "minimal" {
		t.Errorf("full cycle should return to minimal, got %q", got)
	}
}

func TestViewer_Quit(t *testing.T) {
	_, cmd := NewViewer(testReport(t), "").Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestViewer_View(t *testing.T) {
	var m tea.Model = NewViewer(testReport(t), "")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.View()
	if !strings.ContainsRune(out, viz.PoleMarker) {
		t.Error("view should draw poles")
	}
	if !strings.Contains(out, "root locus: textbook") {
		t.Error("view should include the summary")
	}

	m, _ = m.Update(key("s"))
	if strings.Contains(m.View(), "root locus: textbook") {
		t.Error("s should hide the summary")
	}
}
