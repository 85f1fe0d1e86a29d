package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Jithendhar18/recipe-ideas/internal/config"
	"github.com/Jithendhar18/recipe-ideas/internal/fetch"
	"github.com/Jithendhar18/recipe-ideas/internal/logging"
	"github.com/Jithendhar18/recipe-ideas/internal/mealdb"
	"github.com/Jithendhar18/recipe-ideas/internal/prefs"
	"github.com/Jithendhar18/recipe-ideas/internal/search"
	"github.com/Jithendhar18/recipe-ideas/internal/state"
	"github.com/Jithendhar18/recipe-ideas/internal/ui"
)

// Options configure the recipe-ideas application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/recipe-ideas/prefs.toml
	LogFile    string // overrides the configured log file
	Verbose    bool
	// Interactive sends logs to the log file instead of stderr.
	Interactive bool
}

// App holds the wired dependencies shared by the TUI and the CLI commands.
type App struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	LogPath   string
	Log       *zap.Logger
	Client    *mealdb.Client
	Store     *state.Store
	Loader    *Loader
}

// New loads configuration and builds every dependency. Call Close when done.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logOpts := logging.Options{Level: cfg.LogLevel, Verbose: opts.Verbose}
	logPath := ""
	if opts.Interactive {
		logPath = cfg.LogFile
		if strings.TrimSpace(opts.LogFile) != "" {
			if logPath, err = config.ExpandPath(opts.LogFile); err != nil {
				return nil, fmt.Errorf("resolve log file: %w", err)
			}
		}
		logOpts.File = logPath
	} else if !opts.Verbose {
		logOpts.Level = "warn"
	}
	log, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}

	client, err := mealdb.NewClient(cfg.APIBase,
		mealdb.WithTimeout(cfg.RequestTimeout),
		mealdb.WithRateLimit(cfg.RequestsPerSecond, cfg.Burst),
		mealdb.WithLogger(log.Named("mealdb")),
	)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("init mealdb client: %w", err)
	}

	store := &state.Store{}
	return &App{
		Config:    cfg,
		Prefs:     prefs.Load(opts.PrefsPath),
		PrefsPath: opts.PrefsPath,
		LogPath:   logPath,
		Log:       log,
		Client:    client,
		Store:     store,
		Loader:    NewLoader(client, store, log.Named("loader"), cfg.PerCategory, cfg.MaxConcurrency),
	}, nil
}

// Close flushes the logger.
func (a *App) Close() error {
	if a == nil || a.Log == nil {
		return nil
	}
	_ = a.Log.Sync()
	return nil
}

// Run boots the TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	opts.Interactive = true
	a, err := New(opts)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Browse(ctx)
}

// Browse starts the background loader and runs the TUI.
func (a *App) Browse(ctx context.Context) error {
	a.Log.Info("starting browser", zap.String("api", a.Config.APIBase), zap.String("theme", a.Prefs.Theme))
	a.Loader.Start(ctx)

	err := ui.Run(ui.Options{
		Context:   ctx,
		Client:    a.Client,
		Store:     a.Store,
		Loader:    a.Loader,
		Logger:    a.Log.Named("ui"),
		ThemeName: a.Prefs.Theme,
		PrefsPath: a.PrefsPath,
		LogPath:   a.LogPath,
	})
	if err != nil {
		a.Log.Error("ui exited", zap.Error(err))
	}
	return err
}

// Search classifies term against the base lists and returns the matching
// meals. The lists are loaded first; if they are unavailable every term is
// treated as a name search.
func (a *App) Search(ctx context.Context, term string) (search.Intent, []mealdb.Meal, error) {
	idx, err := LoadIndex(ctx, a.Client)
	if err != nil {
		a.Log.Warn("base lists unavailable, using name search", zap.Error(err))
	}
	intent := idx.Classify(term)
	if intent.Blank() {
		return intent, nil, fmt.Errorf("search term required")
	}

	hook := fetch.New[mealdb.MealList](a.Client)
	defer hook.Close()
	st := hook.Fetch(ctx, intent.Endpoint(a.Client))
	if st.Err != nil {
		return intent, nil, fmt.Errorf("search %s %q: %w", intent.Kind, intent.Term, st.Err)
	}
	if st.Data == nil {
		return intent, nil, nil
	}
	return intent, st.Data.Meals, nil
}

// Meal returns one full meal record.
func (a *App) Meal(ctx context.Context, id string) (mealdb.Meal, error) {
	return a.Client.Lookup(ctx, id)
}

// Suggest returns typeahead suggestions for text.
func (a *App) Suggest(ctx context.Context, text string) ([]search.Suggestion, error) {
	idx, err := LoadIndex(ctx, a.Client)
	if err != nil {
		return nil, err
	}
	return idx.Suggest(text), nil
}

// Sample returns the initial browsing set: the first few meals of every
// category.
func (a *App) Sample(ctx context.Context) ([]mealdb.Meal, error) {
	idx, err := LoadIndex(ctx, a.Client)
	if err != nil {
		return nil, err
	}
	return SampleMeals(ctx, a.Client, idx.Categories, a.Config.PerCategory, a.Config.MaxConcurrency)
}
