package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/Jithendhar18/recipe-ideas/internal/mealdb"
	"github.com/Jithendhar18/recipe-ideas/internal/state"
)

type fakeCatalog struct {
	categories []string
	listErr    error
	filterErr  map[string]error
	byCategory map[string][]mealdb.Meal

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	mu          sync.Mutex
	filtered    []string
}

func (f *fakeCatalog) Categories(context.Context) ([]string, error) {
	return f.categories, f.listErr
}

func (f *fakeCatalog) Ingredients(context.Context) ([]string, error) {
	return []string{"Chicken"}, nil
}

func (f *fakeCatalog) Areas(context.Context) ([]string, error) {
	return []string{"Thai"}, nil
}

func (f *fakeCatalog) Filter(_ context.Context, attr mealdb.Attribute, term string) ([]mealdb.Meal, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		peak := f.maxInFlight.Load()
		if n <= peak || f.maxInFlight.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)

	f.mu.Lock()
	f.filtered = append(f.filtered, string(attr)+"="+term)
	f.mu.Unlock()
	if err := f.filterErr[term]; err != nil {
		return nil, err
	}
	return f.byCategory[term], nil
}

func (f *fakeCatalog) Search(context.Context, string) ([]mealdb.Meal, error) { return nil, nil }

func (f *fakeCatalog) Lookup(context.Context, string) (mealdb.Meal, error) {
	return mealdb.Meal{}, mealdb.ErrMealNotFound
}

func meals(ids ...string) []mealdb.Meal {
	out := make([]mealdb.Meal, 0, len(ids))
	for _, id := range ids {
		out = append(out, mealdb.Meal{ID: id})
	}
	return out
}

func ids(ms []mealdb.Meal) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func newSampleCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: []string{"Beef", "Chicken", "Dessert"},
		byCategory: map[string][]mealdb.Meal{
			"Beef":    meals("b1", "b2", "b3", "b4"),
			"Chicken": meals("c1"),
			"Dessert": meals("d1", "d2", "d3", "d4", "d5"),
		},
	}
}

func TestLoadIndex_AllOrNothing(t *testing.T) {
	defer goleak.VerifyNone(t)

	cat := newSampleCatalog()
	idx, err := LoadIndex(context.Background(), cat)
	if err != nil {
		t.Fatalf("LoadIndex returned error: %v", err)
	}
	if len(idx.Categories) != 3 || idx.Ingredients[0] != "Chicken" || idx.Areas[0] != "Thai" {
		t.Fatalf("index = %+v", idx)
	}

	cat.listErr = errors.New("503")
	idx, err = LoadIndex(context.Background(), cat)
	if err == nil {
		t.Fatalf("LoadIndex error = nil, want error")
	}
	if !idx.Empty() {
		t.Fatalf("index = %+v, want empty on failure", idx)
	}
}

func TestSampleMeals_FirstPerCategoryInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	cat := newSampleCatalog()
	got, err := SampleMeals(context.Background(), cat, cat.categories, 3, 2)
	if err != nil {
		t.Fatalf("SampleMeals returned error: %v", err)
	}
	want := []string{"b1", "b2", "b3", "c1", "d1", "d2", "d3"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Fatalf("sample mismatch (-want +got):\n%s", diff)
	}
	if peak := cat.maxInFlight.Load(); peak > 2 {
		t.Fatalf("max concurrent filters = %d, want <= 2", peak)
	}
	if len(cat.filtered) != 3 {
		t.Fatalf("filter calls = %v, want 3", cat.filtered)
	}
}

func TestSampleMeals_AnyFailureFailsAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	cat := newSampleCatalog()
	cat.filterErr = map[string]error{"Chicken": errors.New("timeout")}
	got, err := SampleMeals(context.Background(), cat, cat.categories, 3, 0)
	if err == nil {
		t.Fatalf("SampleMeals error = nil, want error")
	}
	if got != nil {
		t.Fatalf("SampleMeals meals = %v, want nil", got)
	}
}

func TestLoader_StartFillsStore(t *testing.T) {
	defer goleak.VerifyNone(t)

	cat := newSampleCatalog()
	store := &state.Store{}
	loader := NewLoader(cat, store, nil, 1, 4)

	loader.Start(context.Background())
	loader.Wait()

	snap := store.Snapshot()
	if !snap.HasIndex || len(snap.Index.Categories) != 3 {
		t.Fatalf("index not stored: %+v", snap.Index)
	}
	if diff := cmp.Diff([]string{"b1", "c1", "d1"}, ids(snap.Sample)); diff != "" {
		t.Fatalf("sample mismatch (-want +got):\n%s", diff)
	}
	if snap.SampleLoading {
		t.Fatalf("SampleLoading = true after Wait")
	}
}

func TestLoader_IndexFailureLeavesListsEmpty(t *testing.T) {
	defer goleak.VerifyNone(t)

	cat := newSampleCatalog()
	cat.listErr = errors.New("offline")
	store := &state.Store{}
	loader := NewLoader(cat, store, nil, 3, 4)

	loader.Start(context.Background())
	loader.Wait()

	snap := store.Snapshot()
	if snap.HasIndex || !snap.Index.Empty() {
		t.Fatalf("index = %+v, want empty", snap.Index)
	}
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want base list error")
	}
	if len(cat.filtered) != 0 {
		t.Fatalf("filter calls = %v, want none without categories", cat.filtered)
	}
}

func TestLoader_ResampleKeepsPreviousOnError(t *testing.T) {
	defer goleak.VerifyNone(t)

	cat := newSampleCatalog()
	store := &state.Store{}
	loader := NewLoader(cat, store, nil, 3, 4)
	loader.Start(context.Background())
	loader.Wait()
	before := store.Snapshot()

	cat.filterErr = map[string]error{"Beef": errors.New("boom")}
	loader.Resample(context.Background())
	loader.Wait()

	after := store.Snapshot()
	if diff := cmp.Diff(ids(before.Sample), ids(after.Sample)); diff != "" {
		t.Fatalf("sample changed on error (-before +after):\n%s", diff)
	}
	if after.LastError == nil {
		t.Fatalf("LastError = nil, want sample error")
	}
	if after.SampleVersion != before.SampleVersion {
		t.Fatalf("SampleVersion = %d, want %d", after.SampleVersion, before.SampleVersion)
	}
}
