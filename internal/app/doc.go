// Package app is the composition root of recipe-ideas.
//
// New loads the config and preferences, builds the zap logger (a file for the
// TUI, stderr for one-shot commands), the rate-limited TheMealDB client and the
// shared state.Store. Browse hands them to the Bubble Tea UI; Search, Meal,
// Suggest and Sample back the CLI subcommands.
//
// The Loader fills the store in the background. LoadIndex fetches the three
// base name lists concurrently and treats them as a unit: one failure leaves
// all of them empty and the UI falls back to plain name search. SampleMeals
// then runs one category filter per category through a bounded errgroup and
// keeps the first few meals of each, in category order, as the initial
// browsing set. Resample repeats that step whenever the search box is
// cleared.
package app
