package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Jithendhar18/recipe-ideas/internal/mealdb"
	"github.com/Jithendhar18/recipe-ideas/internal/recipe"
)

// renderMain renders header, active view and command bar.
func (m Model) renderMain() string {
	var body string
	switch m.view {
	case ViewDetail:
		body = m.renderDetail()
	default:
		body = m.renderList()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderCommandBar(),
	)
}

// contentHeight is the space between header and command bar.
func (m Model) contentHeight() int {
	return max(m.height-2, 3)
}

// suggestionRows is how many lines the dropdown currently takes.
func (m Model) suggestionRows() int {
	if !m.showSuggestions() {
		return 0
	}
	return min(len(m.suggestions), MaxSuggestionRows)
}

// listBoxHeight is the meal box height including its borders.
func (m Model) listBoxHeight() int {
	return max(m.contentHeight()-1-m.suggestionRows(), 3)
}

// listHeight is the number of meal rows visible at once.
func (m Model) listHeight() int {
	return max(m.listBoxHeight()-2, 1)
}

func (m Model) detailWidth() int {
	return max(m.width-4, 20)
}

func (m Model) detailHeight() int {
	return max(m.contentHeight()-2, 1)
}

func (m *Model) resizeDetail() {
	m.detailViewport.Width = m.detailWidth()
	m.detailViewport.Height = m.detailHeight()
	if m.view == ViewDetail {
		m.refreshDetail()
	}
}

// renderList renders the search bar, the suggestion dropdown and the meals.
func (m Model) renderList() string {
	parts := []string{m.renderSearchBar()}
	if rows := m.renderSuggestions(); rows != "" {
		parts = append(parts, rows)
	}

	focused := !m.input.Focused()
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	width := m.width
	content := m.renderMealRows(width-2, bgColor)
	parts = append(parts, m.renderTitledBox(m.listTitle(), content, width, m.listBoxHeight(), focused))
	return strings.Join(parts, "\n")
}

func (m Model) renderSearchBar() string {
	bgColor := m.theme.SurfaceAlt
	if m.input.Focused() {
		bgColor = m.theme.FocusBg
	}
	return NewBgStyle(bgColor).FillLine(" "+m.input.View(), m.width)
}

// renderSuggestions renders the typeahead dropdown, one icon-tagged name per row.
func (m Model) renderSuggestions() string {
	rows := m.suggestionRows()
	if rows == 0 {
		return ""
	}
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	lines := make([]string, 0, rows)
	for i, s := range m.suggestions[:rows] {
		label := fmt.Sprintf("%s %s", s.Kind.Icon(), s.Name)
		if i == m.suggestIdx {
			sel := styles.Selected
			line := NewBgStyle(m.theme.SelectionBg).Render("  "+label, sel) +
				NewBgStyle(m.theme.SelectionBg).Render("  "+s.Kind.String(), sel)
			lines = append(lines, NewBgStyle(m.theme.SelectionBg).FillLine(line, m.width))
			continue
		}
		line := bg.Spaces(2) + bg.Render(label, styles.Text) + bg.Spaces(2) + bg.Render(s.Kind.String(), styles.FaintText)
		lines = append(lines, bg.FillLine(line, m.width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) listTitle() string {
	if m.query.Blank() {
		return "Recipe Ideas"
	}
	return fmt.Sprintf("%s %s: %s", m.query.Kind.Icon(), titleCase(m.query.Kind.String()), m.query.Term)
}

// renderMealRows renders the visible window of the meal list, or the empty
// state when there is nothing to show.
func (m Model) renderMealRows(width int, bgColor string) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(bgColor)

	if len(m.meals) == 0 {
		var msg string
		switch {
		case m.loading():
			msg = bg.Render(m.spinner.View(), styles.InfoText) + bg.Space() + bg.Render("Loading meals...", styles.MutedText)
		case m.searchErr != nil:
			msg = bg.Render("Error: "+truncate(m.searchErr.Error(), width-10), styles.DangerText)
		case m.notice != "":
			msg = bg.Render(truncate(m.notice, width-2), styles.MutedText)
		default:
			msg = bg.Render("No meals available", styles.MutedText)
		}
		return bg.Space() + msg
	}

	rows := m.listHeight()
	start := 0
	if m.selectedRow >= rows {
		start = m.selectedRow - rows + 1
	}
	end := min(start+rows, len(m.meals))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		meal := m.meals[i]
		if i == m.selectedRow {
			content := m.formatMealRow(meal, width, m.theme.SelectionBg, true)
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(width).
				Render(content))
			continue
		}
		content := m.formatMealRow(meal, width, bgColor, false)
		lines = append(lines, lipgloss.NewStyle().
			Background(lipgloss.Color(bgColor)).
			Width(width).
			Render(content))
	}
	return strings.Join(lines, "\n")
}

// formatMealRow formats one meal: "Name · Area | Category".
// Filter results carry only the name.
func (m Model) formatMealRow(meal mealdb.Meal, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	var nameStyle, metaStyle lipgloss.Style
	if selected {
		nameStyle = styles.Selected.Bold(true)
		metaStyle = styles.Selected
	} else {
		nameStyle = styles.Text
		metaStyle = styles.MutedText
	}

	meta := meal.Meta()
	nameWidth := width - 2
	if meta != "" {
		nameWidth = max(width-lipgloss.Width(meta)-5, 10)
	}
	row := bg.Space() + bg.Render(truncate(meal.Name, nameWidth), nameStyle)
	if meta != "" {
		row += bg.Render(" · ", metaStyle) + bg.Render(meta, metaStyle)
	}
	return row
}

// renderDetail renders the recipe viewport inside a titled box.
func (m Model) renderDetail() string {
	title := "Recipe"
	if m.selected != nil && strings.TrimSpace(m.selected.Name) != "" {
		title = truncate(m.selected.Name, max(m.width-10, 10))
	}
	bg := NewBgStyle(m.theme.FocusBg)
	lines := strings.Split(m.detailViewport.View(), "\n")
	for i, line := range lines {
		lines[i] = bg.Space() + line
	}
	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, m.contentHeight(), true)
}

// refreshDetail re-renders the detail viewport from the lookup state.
func (m *Model) refreshDetail() {
	styles := m.theme.Styles()
	st := m.detailHook.State()

	var content string
	switch {
	case st.Loading:
		content = styles.InfoText.Render(m.spinner.View()) + " " + styles.MutedText.Render("Loading recipe...")
	case st.Err != nil, st.Data == nil, len(st.Data.Meals) == 0:
		if st.Err != nil {
			m.log.Warn("meal lookup failed", zap.String("url", st.URL), zap.Error(st.Err))
		}
		content = styles.MutedText.Render("Meal not found.")
	default:
		rendered, err := recipe.Render(st.Data.Meals[0], m.theme.Glamour, m.detailViewport.Width)
		if err != nil {
			m.log.Warn("render recipe", zap.Error(err))
			rendered = recipe.Markdown(st.Data.Meals[0])
		}
		content = rendered
	}
	m.detailViewport.SetContent(content)
}

// renderTitledBox renders content in a box with the title embedded in the top
// border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		lipgloss.NewStyle().Background(lipgloss.Color(bgColorStr)).Inherit(titleStyle).Render(" "+title+" ") +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}

// titleCase upper-cases the first letter.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
