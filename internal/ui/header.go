package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: brand, catalog counts, result count,
// the active filter and any error.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	brand := bg.Render("Recipe", styles.Logo) + lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Accent)).
		Bold(true).
		Render("Ideas")
	parts := []string{brand}

	idx := m.snapshot.Index
	switch {
	case m.snapshot.HasIndex && compact:
		parts = append(parts, bg.Render(fmt.Sprintf("C:%d I:%d A:%d",
			len(idx.Categories), len(idx.Ingredients), len(idx.Areas)), styles.MutedText))
	case m.snapshot.HasIndex:
		parts = append(parts,
			bg.Pair("Categories:", fmt.Sprint(len(idx.Categories)), styles.MutedText, styles.Text),
			bg.Pair("Ingredients:", fmt.Sprint(len(idx.Ingredients)), styles.MutedText, styles.Text),
			bg.Pair("Areas:", fmt.Sprint(len(idx.Areas)), styles.MutedText, styles.Text),
		)
	case m.snapshot.LastError == nil:
		parts = append(parts, bg.Render("Loading catalog...", styles.WarningText))
	}

	parts = append(parts, bg.Pair("Meals:", fmt.Sprint(len(m.meals)), styles.MutedText, styles.Text))

	if !m.query.Blank() {
		parts = append(parts, bg.Pair(m.query.Kind.String()+":", truncate(m.query.Term, 24), styles.MutedText, styles.AccentText))
	}

	if m.loading() {
		parts = append(parts, bg.Render(m.spinner.View(), styles.InfoText))
	}

	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("OFFLINE", styles.DangerText))
	}
	if err := m.snapshot.LastError; err != nil {
		limit := 60
		if compact {
			limit = 30
		}
		parts = append(parts, bg.Pair("ERROR", truncate(err.Error(), limit), styles.DangerText, styles.DangerText))
	}

	if ts := m.formatTimestamp(); ts != "" && !compact {
		parts = append(parts, bg.Render(ts, styles.FaintText))
	}

	if m.status != "" {
		style := styles.SuccessText
		if m.statusErr {
			style = styles.WarningText
		}
		parts = append(parts, bg.Render(truncate(m.status, 50), style))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// formatTimestamp formats the last store update.
func (m Model) formatTimestamp() string {
	if m.snapshot.LastUpdated.IsZero() {
		return ""
	}
	return "updated " + m.snapshot.LastUpdated.Format(time.Kitchen)
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd
	switch {
	case m.view == ViewDetail:
		commands = []cmd{
			{"esc/b", "Back"},
			{"j/k", "Scroll"},
			{"o", "Video"},
			{"y", "Copy ingredients"},
			{"T", "Theme"},
			{"?", "More"},
		}
	case m.input.Focused():
		commands = []cmd{
			{"enter", "Search"},
			{"↑/↓", "Suggestions"},
			{"esc", "Done"},
			{"ctrl+c", "Quit"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"j/k", "Navigate"},
			{"enter", "Open"},
			{"T", "Theme"},
			{"a", "About"},
			{"L", "Log"},
			{"?", "More"},
			{"q", "Quit"},
		}
	}

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments, bg.Hint(c.key, c.desc, styles))
	}
	return styles.Header.Width(m.width).Render(bg.Join(segments, "  "))
}
