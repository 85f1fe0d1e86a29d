package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Jithendhar18/recipe-ideas/internal/logtail"
	"github.com/Jithendhar18/recipe-ideas/internal/mealdb"
	"github.com/Jithendhar18/recipe-ideas/internal/prefs"
	"github.com/Jithendhar18/recipe-ideas/internal/recipe"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Any key closes an overlay.
	if m.overlay != overlayNone {
		m.overlay = overlayNone
		return m, nil
	}

	if m.view == ViewList && m.input.Focused() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
		return m, nil
	case key.Matches(msg, m.keys.About):
		m.overlay = overlayAbout
		return m, nil
	case key.Matches(msg, m.keys.Logs):
		m.overlay = overlayLogs
		return m, readLogsCmd(m.logPath)
	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
		return m, nil
	}

	switch m.view {
	case ViewDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// handleInputKey routes keys while the search box has focus.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		term := strings.TrimSpace(m.input.Value())
		if m.showSuggestions() && m.suggestIdx >= 0 && m.suggestIdx < len(m.suggestions) {
			term = m.suggestions[m.suggestIdx].Name
		}
		if term == "" {
			return m, nil
		}
		cmd := m.smartSearch(term)
		return m, cmd

	case key.Matches(msg, m.keys.SuggestDown):
		if n := len(m.suggestions); n > 0 {
			m.suggestIdx = (m.suggestIdx + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.SuggestUp):
		if n := len(m.suggestions); n > 0 {
			if m.suggestIdx <= 0 {
				m.suggestIdx = n - 1
			} else {
				m.suggestIdx--
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Blur):
		m.input.Blur()
		m.suggestIdx = -1
		return m, nil
	}

	before := m.input.Value()
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	after := m.input.Value()
	if after == before {
		return m, inputCmd
	}
	m.suggestIdx = -1

	m.updateSuggestions()
	if strings.TrimSpace(after) == "" {
		clearCmd := m.clearSearch()
		return m, tea.Batch(inputCmd, clearCmd)
	}
	return m, inputCmd
}

// handleListKey processes keys for the meal list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FocusSearch):
		m.input.CursorEnd()
		m.updateSuggestions()
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Open):
		cmd := m.openSelected()
		return m, cmd
	}

	count := len(m.meals)
	if count == 0 {
		return m, nil
	}
	page := max(m.listHeight()-1, 1)
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = count - 1
	case key.Matches(msg, m.keys.PageDown):
		m.selectedRow = min(m.selectedRow+page, count-1)
	case key.Matches(msg, m.keys.PageUp):
		m.selectedRow = max(m.selectedRow-page, 0)
	}
	return m, nil
}

// handleDetailKey processes keys for the recipe detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeDetail()
		return m, nil
	case key.Matches(msg, m.keys.OpenVideo):
		meal, ok := m.detailMeal()
		if !ok || meal.Video == "" {
			m.setStatus("", errors.New("no video for this recipe"))
			return m, nil
		}
		return m, openURLCmd(meal.Video)
	case key.Matches(msg, m.keys.CopyIngredients):
		meal, ok := m.detailMeal()
		if !ok {
			return m, nil
		}
		return m, copyCmd(recipe.IngredientText(meal), fmt.Sprintf("Copied %d ingredients", len(meal.Ingredients)))
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) toggleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.Warn("save theme preference", zap.Error(err))
			m.setStatus("", fmt.Errorf("save theme: %w", err))
		}
	}
	if m.view == ViewDetail {
		m.refreshDetail()
	}
}

// openSelected shows the detail view for the highlighted meal.
func (m *Model) openSelected() tea.Cmd {
	if m.selectedRow < 0 || m.selectedRow >= len(m.meals) {
		return nil
	}
	meal := m.meals[m.selectedRow]
	m.selected = &meal
	m.view = ViewDetail
	m.detailViewport.GotoTop()

	var cmd tea.Cmd
	if m.client != nil {
		if req, ok := m.detailHook.Request(m.client.LookupURL(meal.ID)); ok {
			cmd = detailCmd(m.ctx, req)
		}
	}
	m.refreshDetail()
	return cmd
}

// closeDetail returns to the list. The list itself is untouched; a lookup
// still in flight is dropped when it arrives.
func (m *Model) closeDetail() {
	m.view = ViewList
	m.selected = nil
	m.detailHook.Reset()
}

func (m Model) detailMeal() (mealdb.Meal, bool) {
	st := m.detailHook.State()
	if st.Loading || st.Err != nil || st.Data == nil || len(st.Data.Meals) == 0 {
		return mealdb.Meal{}, false
	}
	return st.Data.Meals[0], true
}

func (m *Model) clampSelection() {
	if m.selectedRow >= len(m.meals) {
		m.selectedRow = len(m.meals) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logTailMsg{}
		}
		entries, err := logtail.Tail(path, LogTailLines)
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, e.Format())
		}
		return logTailMsg{lines: lines, err: err}
	}
}
