package ui

import (
	"strings"
)

// renderLogs renders the tail of the app log in a full-screen box.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	height := max(m.height, 3)
	rows := height - 2

	var lines []string
	switch {
	case m.logPath == "":
		lines = []string{styles.MutedText.Render(" Logging to stderr")}
	case m.logErr != nil:
		lines = []string{styles.DangerText.Render(" " + truncate(m.logErr.Error(), m.width-6))}
	case len(m.logLines) == 0:
		lines = []string{styles.MutedText.Render(" No log entries yet")}
	default:
		visible := m.logLines
		if len(visible) > rows {
			visible = visible[len(visible)-rows:]
		}
		for _, l := range visible {
			lines = append(lines, " "+truncate(l, m.width-4))
		}
	}

	title := "Log"
	if m.logPath != "" {
		title = "Log: " + truncateMiddle(m.logPath, max(m.width/2, 10))
	}
	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, height, true)
}
