package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Jithendhar18/recipe-ideas/internal/fetch"
	"github.com/Jithendhar18/recipe-ideas/internal/mealdb"
	"github.com/Jithendhar18/recipe-ideas/internal/prefs"
	"github.com/Jithendhar18/recipe-ideas/internal/search"
	"github.com/Jithendhar18/recipe-ideas/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewDetail
)

// overlay is a modal drawn over the current view.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayAbout
	overlayLogs
)

// Loader reloads the per-category sample in the background.
type Loader interface {
	Resample(ctx context.Context)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *mealdb.Client
	Store     *state.Store
	Loader    Loader
	Logger    *zap.Logger
	Tick      time.Duration
	ThemeName string
	PrefsPath string
	LogPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *mealdb.Client
	store     *state.Store
	loader    Loader
	log       *zap.Logger
	prefsPath string
	logPath   string
	tick      time.Duration
	keys      keyMap

	// UI state
	theme   Theme
	view    View
	overlay overlay
	width   int
	height  int
	ready   bool
	spinner spinner.Model

	// Data state
	snapshot      state.Snapshot
	sampleVersion uint64

	// Search state
	input       textinput.Model
	suggestions []search.Suggestion
	suggestIdx  int // -1 when nothing is highlighted
	query       search.Intent
	searchHook  *fetch.Hook[mealdb.MealList]
	searchErr   error

	// List state
	meals       []mealdb.Meal
	selectedRow int
	notice      string

	// Detail state
	selected       *mealdb.Meal
	detailHook     *fetch.Hook[mealdb.MealList]
	detailViewport viewport.Model

	// Diagnostics overlay
	logLines []string
	logErr   error

	// Transient status line
	status     string
	statusErr  bool
	statusTime time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	input := textinput.New()
	input.Placeholder = "Search by meal, ingredient, category, or area..."
	input.Prompt = "🔎 "
	input.CharLimit = 100

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	m := Model{
		ctx:        ctx,
		client:     opts.Client,
		store:      store,
		loader:     opts.Loader,
		log:        logger,
		prefsPath:  prefsPath,
		logPath:    opts.LogPath,
		tick:       tick,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(opts.ThemeName),
		view:       ViewList,
		spinner:    spin,
		input:      input,
		suggestIdx: -1,
		searchHook: fetch.New[mealdb.MealList](opts.Client),
		detailHook: fetch.New[mealdb.MealList](opts.Client),
	}
	m.applySnapshot(store.Snapshot())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.tick),
		fetchSnapshotCmd(m.store),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(m.detailWidth(), m.detailHeight())
		}
		m.ready = true
		m.input.Width = max(m.width-8, 10)
		m.resizeDetail()
		return m, nil

	case tickMsg:
		if !m.statusTime.IsZero() && time.Since(m.statusTime) > StatusMessageTTL {
			m.status = ""
			m.statusTime = time.Time{}
		}
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.tick))

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case searchResultMsg:
		if m.searchHook.Apply(msg.res) {
			m.applySearchState()
		}
		return m, nil

	case detailResultMsg:
		if m.detailHook.Apply(msg.res) {
			m.refreshDetail()
		}
		return m, nil

	case logTailMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		return m, nil

	case actionMsg:
		m.setStatus(msg.text, msg.err)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	switch m.overlay {
	case overlayHelp:
		return m.renderHelp()
	case overlayAbout:
		return m.renderAbout()
	case overlayLogs:
		return m.renderLogs()
	}
	return m.renderMain()
}

// applySnapshot records the latest store contents. While no query is active
// the list follows the sample set.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if m.query.Blank() && snap.SampleVersion != m.sampleVersion {
		m.meals = snap.Sample
		m.sampleVersion = snap.SampleVersion
		m.clampSelection()
	}
	if m.input.Focused() {
		m.updateSuggestions()
	}
}

func (m *Model) setStatus(text string, err error) {
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
	} else {
		m.status = text
		m.statusErr = false
	}
	m.statusTime = time.Now()
}

// loading reports whether the list is waiting on any request.
func (m Model) loading() bool {
	if !m.query.Blank() {
		return m.searchHook.State().Loading
	}
	return m.snapshot.SampleLoading || (!m.snapshot.HasIndex && m.snapshot.LastError == nil)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type searchResultMsg struct {
	res fetch.Result[mealdb.MealList]
}

type detailResultMsg struct {
	res fetch.Result[mealdb.MealList]
}

type logTailMsg struct {
	lines []string
	err   error
}

type actionMsg struct {
	text string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func searchCmd(ctx context.Context, req fetch.Request[mealdb.MealList]) tea.Cmd {
	return func() tea.Msg {
		return searchResultMsg{res: req.Do(ctx)}
	}
}

func detailCmd(ctx context.Context, req fetch.Request[mealdb.MealList]) tea.Cmd {
	return func() tea.Msg {
		return detailResultMsg{res: req.Do(ctx)}
	}
}

func resampleCmd(ctx context.Context, loader Loader) tea.Cmd {
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		loader.Resample(ctx)
		return nil
	}
}

// Run starts the Bubble Tea program. Both fetch hooks are closed on exit so
// responses still in flight are dropped.
func Run(opts Options) error {
	silenceBrowser()
	m := New(opts)
	defer m.searchHook.Close()
	defer m.detailHook.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
