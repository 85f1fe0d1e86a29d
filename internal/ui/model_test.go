package ui

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/Jithendhar18/recipe-ideas/internal/mealdb"
	"github.com/Jithendhar18/recipe-ideas/internal/prefs"
	"github.com/Jithendhar18/recipe-ideas/internal/search"
	"github.com/Jithendhar18/recipe-ideas/internal/state"
)

// stubGetter answers GetJSON from canned bodies keyed by URL.
type stubGetter struct {
	mu     sync.Mutex
	bodies map[string]string
	errs   map[string]error
	urls   []string
}

func (g *stubGetter) GetJSON(_ context.Context, rawURL string, dest any) error {
	g.mu.Lock()
	g.urls = append(g.urls, rawURL)
	body, ok := g.bodies[rawURL]
	err := g.errs[rawURL]
	g.mu.Unlock()
	if err != nil {
		return err
	}
	if !ok {
		body = `{"meals":null}`
	}
	return json.Unmarshal([]byte(body), dest)
}

type countingLoader struct {
	mu    sync.Mutex
	calls int
}

func (l *countingLoader) Resample(context.Context) {
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()
}

var sampleMeals = []mealdb.Meal{
	{ID: "52772", Name: "Teriyaki Chicken Casserole"},
	{ID: "52959", Name: "Baked salmon with fennel & tomatoes"},
	{ID: "52819", Name: "Cajun spiced fish tacos"},
}

const fullMealJSON = `{"meals":[{
	"idMeal":"52959",
	"strMeal":"Baked salmon with fennel & tomatoes",
	"strCategory":"Seafood",
	"strArea":"British",
	"strInstructions":"Heat oven to 180C.\r\nBake for 20 mins.",
	"strYoutube":"https://www.youtube.com/watch?v=xvPR2Tfw5k0",
	"strIngredient1":"Fennel","strMeasure1":"2 medium",
	"strIngredient2":"Salmon","strMeasure2":"2 fillets",
	"strIngredient3":""
}]}`

type harness struct {
	m      Model
	client *mealdb.Client
	getter *stubGetter
	loader *countingLoader
	prefs  string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	getter := &stubGetter{bodies: map[string]string{}, errs: map[string]error{}}
	client, err := mealdb.NewClient("", mealdb.WithGetter(getter))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	store := &state.Store{}
	store.SetIndex(search.Index{
		Categories:  []string{"Seafood", "Side"},
		Ingredients: []string{"Salmon", "Chicken"},
		Areas:       []string{"Spanish", "Thai"},
	}, nil)
	store.SetSample(sampleMeals, nil)

	h := &harness{
		client: client,
		getter: getter,
		loader: &countingLoader{},
		prefs:  filepath.Join(t.TempDir(), "prefs.toml"),
	}
	h.m = New(Options{
		Client:    client,
		Store:     store,
		Loader:    h.loader,
		PrefsPath: h.prefs,
	})
	h.update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

// press sends one key and returns the resulting command.
func (h *harness) press(k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return h.update(msg)
}

func (h *harness) typeText(text string) {
	for _, r := range text {
		h.press(string(r))
	}
}

// search focuses the box, types term and submits, returning the fetch command.
func (h *harness) search(term string) tea.Cmd {
	h.press("/")
	h.typeText(term)
	return h.press("enter")
}

// run executes cmd, unpacking batches, and feeds every non-nil message back
// into the model.
func (h *harness) run(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("command did not return")
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			h.run(t, c)
		}
		return
	}
	if msg != nil {
		h.update(msg)
	}
}

func mealIDs(ms []mealdb.Meal) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func TestModel_StartsWithSample(t *testing.T) {
	h := newHarness(t)
	if diff := cmp.Diff(mealIDs(sampleMeals), mealIDs(h.m.meals)); diff != "" {
		t.Fatalf("initial meals mismatch (-want +got):\n%s", diff)
	}
	if view := h.m.View(); !strings.Contains(view, "Recipe Ideas") {
		t.Fatalf("list view missing title:\n%s", view)
	}
}

func TestSmartSearch_IngredientReplacesMeals(t *testing.T) {
	h := newHarness(t)
	url := h.client.FilterURL(mealdb.ByIngredient, "salmon")
	h.getter.bodies[url] = `{"meals":[{"idMeal":"1","strMeal":"Salmon Avocado Salad"},{"idMeal":"2","strMeal":"Salmon Prawn Risotto"}]}`

	cmd := h.search("SALMON")
	if h.m.query.Kind != search.KindIngredient {
		t.Fatalf("kind = %v, want ingredient", h.m.query.Kind)
	}
	if got := h.m.searchHook.State().URL; got != url {
		t.Fatalf("hook url = %q, want %q", got, url)
	}
	if !h.m.loading() {
		t.Fatalf("expected loading after submit")
	}
	if h.m.input.Focused() {
		t.Fatalf("input should blur after submit")
	}
	if cmd == nil {
		t.Fatalf("expected fetch command")
	}

	h.update(cmd())
	if diff := cmp.Diff([]string{"1", "2"}, mealIDs(h.m.meals)); diff != "" {
		t.Fatalf("meals mismatch (-want +got):\n%s", diff)
	}
	if h.m.notice != "" || h.m.searchErr != nil {
		t.Fatalf("unexpected notice %q err %v", h.m.notice, h.m.searchErr)
	}
}

func TestSmartSearch_NameSearchEmptyResults(t *testing.T) {
	h := newHarness(t)
	cmd := h.search("zzz")
	if h.m.query.Kind != search.KindName {
		t.Fatalf("kind = %v, want name search", h.m.query.Kind)
	}
	h.update(cmd())

	if len(h.m.meals) != 0 {
		t.Fatalf("meals = %v, want none", mealIDs(h.m.meals))
	}
	if want := `No meals found for "zzz"`; h.m.notice != want {
		t.Fatalf("notice = %q, want %q", h.m.notice, want)
	}
	if view := h.m.View(); !strings.Contains(view, "No meals found") {
		t.Fatalf("view missing notice:\n%s", view)
	}
}

func TestSmartSearch_ErrorClearsList(t *testing.T) {
	h := newHarness(t)
	h.getter.errs[h.client.SearchURL("broken")] = errors.New("HTTP error! status: 500")

	cmd := h.search("broken")
	h.update(cmd())

	if len(h.m.meals) != 0 {
		t.Fatalf("meals = %v, want none after error", mealIDs(h.m.meals))
	}
	if h.m.searchErr == nil {
		t.Fatalf("expected search error")
	}
	if h.m.loading() {
		t.Fatalf("loading should clear after error")
	}
}

func TestSmartSearch_StaleResultIgnored(t *testing.T) {
	h := newHarness(t)
	h.getter.bodies[h.client.SearchURL("first")] = `{"meals":[{"idMeal":"old"}]}`
	h.getter.bodies[h.client.SearchURL("second")] = `{"meals":[{"idMeal":"new"}]}`

	first := h.search("first")
	h.press("/")
	for range "first" {
		h.press("backspace")
	}
	h.typeText("second")
	second := h.press("enter")

	h.update(second())
	h.update(first())
	if diff := cmp.Diff([]string{"new"}, mealIDs(h.m.meals)); diff != "" {
		t.Fatalf("meals mismatch (-want +got):\n%s", diff)
	}
}

func TestSuggestions_WrapAndSubmit(t *testing.T) {
	h := newHarness(t)
	h.press("/")
	h.typeText("s")

	want := []search.Suggestion{
		{Name: "Seafood", Kind: search.KindCategory},
		{Name: "Side", Kind: search.KindCategory},
		{Name: "Salmon", Kind: search.KindIngredient},
		{Name: "Spanish", Kind: search.KindArea},
	}
	if diff := cmp.Diff(want, h.m.suggestions); diff != "" {
		t.Fatalf("suggestions mismatch (-want +got):\n%s", diff)
	}

	h.press("up")
	if h.m.suggestIdx != 3 {
		t.Fatalf("up from none = %d, want 3", h.m.suggestIdx)
	}
	h.press("down")
	if h.m.suggestIdx != 0 {
		t.Fatalf("down wraps to %d, want 0", h.m.suggestIdx)
	}
	if view := h.m.View(); !strings.Contains(view, "Seafood") {
		t.Fatalf("dropdown not rendered:\n%s", view)
	}

	h.press("enter")
	if h.m.query.Term != "Seafood" || h.m.query.Kind != search.KindCategory {
		t.Fatalf("query = %+v, want Seafood category", h.m.query)
	}
	if got := h.m.input.Value(); got != "Seafood" {
		t.Fatalf("input = %q, want Seafood", got)
	}
}

func TestClearInput_RestoresSample(t *testing.T) {
	h := newHarness(t)
	cmd := h.search("fish")
	h.update(cmd())

	h.m.input.Cursor.SetMode(cursor.CursorStatic)
	h.press("/")
	var last tea.Cmd
	for range "fish" {
		last = h.press("backspace")
	}
	if h.loader.calls != 0 {
		t.Fatalf("Resample calls before running commands = %d, want 0", h.loader.calls)
	}

	if !h.m.query.Blank() {
		t.Fatalf("query = %+v, want blank", h.m.query)
	}
	if got := h.m.searchHook.State().URL; got != "" {
		t.Fatalf("hook url = %q, want reset", got)
	}
	if diff := cmp.Diff(mealIDs(sampleMeals), mealIDs(h.m.meals)); diff != "" {
		t.Fatalf("meals mismatch (-want +got):\n%s", diff)
	}

	if last == nil {
		t.Fatalf("expected resample command from the last backspace")
	}
	h.run(t, last)
	if h.loader.calls != 1 {
		t.Fatalf("Resample calls = %d, want 1", h.loader.calls)
	}
}

func TestDetail_BackIgnoresLateLookup(t *testing.T) {
	h := newHarness(t)
	h.getter.bodies[h.client.LookupURL("52772")] = fullMealJSON

	lookup := h.press("enter")
	if h.m.view != ViewDetail {
		t.Fatalf("view = %v, want detail", h.m.view)
	}
	if lookup == nil {
		t.Fatalf("expected lookup command")
	}

	h.press("esc")
	if h.m.view != ViewList || h.m.selected != nil {
		t.Fatalf("back did not return to list")
	}

	h.update(lookup())
	if h.m.view != ViewList {
		t.Fatalf("late lookup reopened detail")
	}
	if _, ok := h.m.detailMeal(); ok {
		t.Fatalf("late lookup was applied")
	}
	if diff := cmp.Diff(mealIDs(sampleMeals), mealIDs(h.m.meals)); diff != "" {
		t.Fatalf("meals changed (-want +got):\n%s", diff)
	}
}

func TestDetail_BackKeepsSearchResults(t *testing.T) {
	h := newHarness(t)
	url := h.client.FilterURL(mealdb.ByIngredient, "salmon")
	h.getter.bodies[url] = `{"meals":[{"idMeal":"52959","strMeal":"Baked salmon with fennel & tomatoes"},{"idMeal":"2","strMeal":"Salmon Prawn Risotto"}]}`
	h.getter.bodies[h.client.LookupURL("2")] = fullMealJSON

	h.update(h.search("salmon")())
	want := search.Intent{Term: "salmon", Kind: search.KindIngredient}
	if h.m.query != want {
		t.Fatalf("query = %+v, want %+v", h.m.query, want)
	}

	h.press("j")
	lookup := h.press("enter")
	if h.m.view != ViewDetail || lookup == nil {
		t.Fatalf("enter did not open the second result")
	}
	h.update(lookup())
	h.press("esc")

	if h.m.view != ViewList {
		t.Fatalf("view = %v, want list", h.m.view)
	}
	if h.m.query != want {
		t.Fatalf("query after back = %+v, want %+v", h.m.query, want)
	}
	if diff := cmp.Diff([]string{"52959", "2"}, mealIDs(h.m.meals)); diff != "" {
		t.Fatalf("meals after back mismatch (-want +got):\n%s", diff)
	}
	if h.m.selectedRow != 1 {
		t.Fatalf("selectedRow = %d, want 1", h.m.selectedRow)
	}
	if got := h.m.searchHook.State().URL; got != url {
		t.Fatalf("search hook url = %q, want %q", got, url)
	}
}

func TestSuggestions_TypingClearsHighlight(t *testing.T) {
	h := newHarness(t)
	h.press("/")
	h.typeText("s")
	h.press("down")
	if h.m.suggestIdx != 0 {
		t.Fatalf("suggestIdx = %d, want 0", h.m.suggestIdx)
	}
	h.typeText("p")
	if h.m.suggestIdx != -1 {
		t.Fatalf("suggestIdx after typing = %d, want -1", h.m.suggestIdx)
	}
	h.press("enter")

	want := search.Intent{Term: "sp", Kind: search.KindName}
	if h.m.query != want {
		t.Fatalf("query = %+v, want %+v", h.m.query, want)
	}
}

func TestDetail_NotFound(t *testing.T) {
	h := newHarness(t)
	lookup := h.press("enter")
	h.update(lookup())

	if !strings.Contains(h.m.detailViewport.View(), "Meal not found.") {
		t.Fatalf("detail view:\n%s", h.m.detailViewport.View())
	}
}

func TestDetail_LookupErrorShowsNotFound(t *testing.T) {
	h := newHarness(t)
	h.getter.errs[h.client.LookupURL("52772")] = errors.New("connection reset")
	lookup := h.press("enter")
	h.update(lookup())

	if st := h.m.detailHook.State(); st.Err == nil {
		t.Fatalf("detail state err = nil, want lookup error")
	}
	if !strings.Contains(h.m.detailViewport.View(), "Meal not found.") {
		t.Fatalf("detail view:\n%s", h.m.detailViewport.View())
	}
}

func openFullMeal(t *testing.T, h *harness) mealdb.Meal {
	t.Helper()
	h.getter.bodies[h.client.LookupURL("52772")] = fullMealJSON
	lookup := h.press("enter")
	h.update(lookup())
	meal, ok := h.m.detailMeal()
	if !ok {
		t.Fatalf("meal not loaded")
	}
	return meal
}

func TestDetail_CopyIngredients(t *testing.T) {
	h := newHarness(t)
	meal := openFullMeal(t, h)
	if len(meal.Ingredients) != 2 {
		t.Fatalf("ingredients = %d, want 2", len(meal.Ingredients))
	}

	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = orig })

	cmd := h.press("y")
	h.update(cmd())

	want := "Baked salmon with fennel & tomatoes\n- Fennel (2 medium)\n- Salmon (2 fillets)\n"
	if copied != want {
		t.Fatalf("copied = %q, want %q", copied, want)
	}
	if h.m.status != "Copied 2 ingredients" || h.m.statusErr {
		t.Fatalf("status = %q (err %v)", h.m.status, h.m.statusErr)
	}
}

func TestDetail_OpenVideo(t *testing.T) {
	h := newHarness(t)
	meal := openFullMeal(t, h)

	var opened string
	orig := openURL
	openURL = func(u string) error {
		opened = u
		return nil
	}
	t.Cleanup(func() { openURL = orig })

	cmd := h.press("o")
	h.update(cmd())
	if opened != meal.Video {
		t.Fatalf("opened %q, want %q", opened, meal.Video)
	}
}

func TestDetail_OpenVideoWithoutLink(t *testing.T) {
	h := newHarness(t)
	lookup := h.press("enter")
	h.update(lookup())

	if cmd := h.press("o"); cmd != nil {
		t.Fatalf("expected no command without a video")
	}
	if !h.m.statusErr {
		t.Fatalf("expected error status")
	}
}

func TestToggleTheme_SavesPreference(t *testing.T) {
	h := newHarness(t)
	if h.m.theme.Name != prefs.ThemeLight {
		t.Fatalf("default theme = %q, want light", h.m.theme.Name)
	}

	h.press("T")
	if h.m.theme.Name != prefs.ThemeDark {
		t.Fatalf("theme = %q, want dark", h.m.theme.Name)
	}
	if got := prefs.Load(h.prefs).Theme; got != prefs.ThemeDark {
		t.Fatalf("saved theme = %q, want dark", got)
	}

	h.press("T")
	if got := prefs.Load(h.prefs).Theme; got != prefs.ThemeLight {
		t.Fatalf("saved theme = %q, want light", got)
	}
}

func TestOverlays(t *testing.T) {
	h := newHarness(t)

	h.press("?")
	if view := h.m.View(); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Fatalf("help overlay missing:\n%s", view)
	}
	h.press("x")
	if h.m.overlay != overlayNone {
		t.Fatalf("any key should close the overlay")
	}

	h.press("a")
	if view := h.m.View(); !strings.Contains(view, "TheMealDB") {
		t.Fatalf("about overlay missing credit:\n%s", view)
	}
	h.press("esc")

	h.press("L")
	if view := h.m.View(); !strings.Contains(view, "Logging to stderr") {
		t.Fatalf("log overlay without a file:\n%s", view)
	}
}

func TestListNavigation(t *testing.T) {
	h := newHarness(t)
	h.press("j")
	h.press("j")
	h.press("j")
	if h.m.selectedRow != 2 {
		t.Fatalf("selectedRow = %d, want 2 (clamped)", h.m.selectedRow)
	}
	h.press("g")
	if h.m.selectedRow != 0 {
		t.Fatalf("selectedRow = %d, want 0", h.m.selectedRow)
	}
	h.press("G")
	if h.m.selectedRow != 2 {
		t.Fatalf("selectedRow = %d, want 2", h.m.selectedRow)
	}
}
