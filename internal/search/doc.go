// Package search turns what the user typed into an API request.
//
// Index keeps the category, ingredient and area names loaded at startup.
// Classify decides whether a term names one of those (exact match, case
// insensitive, ingredients winning over categories over areas) or should go
// to the free-text meal search, and Intent.Endpoint turns the decision into a
// URL. Suggest produces the typeahead list shown under the search input.
package search
