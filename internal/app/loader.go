package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Jithendhar18/recipe-ideas/internal/mealdb"
	"github.com/Jithendhar18/recipe-ideas/internal/search"
	"github.com/Jithendhar18/recipe-ideas/internal/state"
)

const (
	defaultPerCategory    = 3
	defaultMaxConcurrency = 8
)

// LoadIndex fetches the category, ingredient and area lists concurrently.
// The lists are all or nothing: if any call fails the returned index is
// empty.
func LoadIndex(ctx context.Context, catalog mealdb.Catalog) (search.Index, error) {
	var idx search.Index
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		names, err := catalog.Categories(gctx)
		idx.Categories = names
		return err
	})
	g.Go(func() error {
		names, err := catalog.Ingredients(gctx)
		idx.Ingredients = names
		return err
	})
	g.Go(func() error {
		names, err := catalog.Areas(gctx)
		idx.Areas = names
		return err
	})
	if err := g.Wait(); err != nil {
		return search.Index{}, fmt.Errorf("load base lists: %w", err)
	}
	return idx, nil
}

// SampleMeals runs one category filter per category, at most limit at a time,
// keeps the first perCategory meals of each and flattens them in category
// order. Any failed filter fails the whole sample.
func SampleMeals(ctx context.Context, catalog mealdb.Catalog, categories []string, perCategory, limit int) ([]mealdb.Meal, error) {
	if perCategory <= 0 {
		perCategory = defaultPerCategory
	}
	if limit <= 0 {
		limit = defaultMaxConcurrency
	}

	results := make([][]mealdb.Meal, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, category := range categories {
		i, category := i, category
		g.Go(func() error {
			meals, err := catalog.Filter(gctx, mealdb.ByCategory, category)
			if err != nil {
				return err
			}
			if len(meals) > perCategory {
				meals = meals[:perCategory]
			}
			results[i] = meals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load meals by category: %w", err)
	}

	var out []mealdb.Meal
	for _, meals := range results {
		out = append(out, meals...)
	}
	return out, nil
}

// Loader fills the store in the background: the base lists once, then the
// per-category sample whenever Resample is called.
type Loader struct {
	catalog     mealdb.Catalog
	store       *state.Store
	log         *zap.Logger
	perCategory int
	concurrency int

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLoader returns a loader writing into store.
func NewLoader(catalog mealdb.Catalog, store *state.Store, log *zap.Logger, perCategory, concurrency int) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		catalog:     catalog,
		store:       store,
		log:         log,
		perCategory: perCategory,
		concurrency: concurrency,
	}
}

// Start launches the initial load and returns immediately.
func (l *Loader) Start(ctx context.Context) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		idx, err := LoadIndex(ctx, l.catalog)
		if err != nil {
			l.log.Warn("base lists unavailable", zap.Error(err))
		} else {
			l.log.Info("base lists loaded",
				zap.Int("categories", len(idx.Categories)),
				zap.Int("ingredients", len(idx.Ingredients)),
				zap.Int("areas", len(idx.Areas)))
		}
		l.store.SetIndex(idx, err)
		if err == nil {
			l.Resample(ctx)
		}
	}()
}

// Resample reloads the per-category sample. A newer call supersedes an
// older one still in flight. Without categories there is nothing to sample.
func (l *Loader) Resample(ctx context.Context) {
	categories := l.store.Snapshot().Index.Categories
	if len(categories) == 0 {
		return
	}

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	l.store.BeginSample()
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer cancel()

		meals, err := SampleMeals(runCtx, l.catalog, categories, l.perCategory, l.concurrency)

		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.gen {
			return
		}
		if err != nil {
			l.log.Warn("sample load failed", zap.Error(err))
		} else {
			l.log.Debug("sample loaded", zap.Int("meals", len(meals)))
		}
		l.store.SetSample(meals, err)
	}()
}

// Wait blocks until every load started so far has finished.
func (l *Loader) Wait() {
	l.wg.Wait()
}
