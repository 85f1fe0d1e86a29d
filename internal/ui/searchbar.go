package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Jithendhar18/recipe-ideas/internal/search"
)

// showSuggestions reports whether the dropdown is visible: the input has
// focus and holds something other than whitespace.
func (m Model) showSuggestions() bool {
	return m.input.Focused() && strings.TrimSpace(m.input.Value()) != "" && len(m.suggestions) > 0
}

func (m *Model) updateSuggestions() {
	m.suggestions = m.snapshot.Index.Suggest(m.input.Value())
	if m.suggestIdx >= len(m.suggestions) {
		m.suggestIdx = -1
	}
}

// smartSearch classifies term, points the search hook at the matching
// endpoint and leaves the input showing the term.
func (m *Model) smartSearch(term string) tea.Cmd {
	intent := m.snapshot.Index.Classify(term)
	m.query = intent
	m.input.SetValue(intent.Term)
	m.input.Blur()
	m.suggestIdx = -1
	m.selectedRow = 0
	m.notice = ""
	m.searchErr = nil

	m.log.Debug("search", zap.String("term", intent.Term), zap.Stringer("kind", intent.Kind))
	if m.client == nil {
		return nil
	}
	req, ok := m.searchHook.Request(intent.Endpoint(m.client))
	if !ok {
		// Same endpoint as the current results.
		m.applySearchState()
		return nil
	}
	return searchCmd(m.ctx, req)
}

// clearSearch drops the active query and shows the initial sample again
// while a fresh one loads.
func (m *Model) clearSearch() tea.Cmd {
	m.query = search.Intent{}
	m.searchHook.Reset()
	m.searchErr = nil
	m.notice = ""
	m.meals = m.snapshot.Sample
	m.sampleVersion = m.snapshot.SampleVersion
	m.selectedRow = 0
	return resampleCmd(m.ctx, m.loader)
}

// applySearchState folds the search hook's state into the meal list.
func (m *Model) applySearchState() {
	st := m.searchHook.State()
	if st.Loading {
		return
	}
	m.notice = ""
	m.searchErr = nil
	switch {
	case st.Err != nil:
		m.meals = nil
		m.searchErr = st.Err
		m.log.Warn("search failed", zap.String("url", st.URL), zap.Error(st.Err))
	case st.Data != nil && len(st.Data.Meals) > 0:
		m.meals = st.Data.Meals
	case !m.query.Blank():
		m.meals = nil
		m.notice = fmt.Sprintf("No meals found for %q", m.query.Term)
	}
	m.clampSelection()
}
