// Package mealdb is a small client for the public TheMealDB JSON API.
//
// The client is read-only and covers the endpoints the app needs:
//
//   - list.php?c=list, i=list, a=list: category, ingredient and area names
//   - filter.php?c=, i=, a=: partial meals (id, name, thumbnail) matching one attribute
//   - search.php?s=: full meals whose name contains the term
//   - lookup.php?i=: one full meal by id
//
// Every call waits on an optional token-bucket limiter before it reaches the
// network, so the per-category fan-out at startup stays polite. There is no
// caching and no retry; callers decide what a failure means.
//
// Responses use a {"meals": [...]} envelope where "meals" may be null. Meal
// records carry twenty positional strIngredientN/strMeasureN pairs; Meal
// flattens them into Ingredients, keeping only the non-blank slots in order.
//
// Client also implements fetch.Getter, so fetch hooks built on it share the
// same pacing and request logging as the typed calls.
package mealdb
