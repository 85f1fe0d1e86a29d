// Package ui provides the terminal interface for recipe-ideas.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds all view state and is updated
// only from Update; network work runs in tea.Cmd goroutines and comes back as
// messages. Two fetch hooks own the remote resources the screen shows: the
// current search results and the meal on the detail screen. A result whose
// generation is no longer current is dropped when it arrives, so a slow
// response can never overwrite a newer query or reopen a closed recipe.
//
// The catalog (category, ingredient and area names) and the initial sample
// of meals are loaded by app.Loader into a state.Store; the model re-reads
// the store on every tick.
//
// # Package Structure
//
//   - app.go: Model, messages, commands and Run
//   - handlers.go: key handling for the list, the search box and the detail view
//   - searchbar.go: typeahead suggestions and smart search
//   - view.go, header.go: list, detail and status bar rendering
//   - help.go, logs.go: help, about and diagnostics overlays
//   - actions.go: clipboard and browser side effects
//   - theme.go, style_helpers.go: light and dark themes
//
// # Views
//
//   - List: search box, suggestion dropdown and the meal list
//   - Detail: the full recipe rendered as Markdown with glamour
//
// # Key Bindings
//
//   - / or s: Focus the search box
//   - enter: Search, or open the highlighted meal
//   - up/down, tab: Move through suggestions while typing
//   - j/k, g/G, ctrl+d/u: Navigate
//   - esc or b: Back to the list
//   - o: Open the recipe video
//   - y: Copy the ingredient list
//   - T: Toggle light/dark theme
//   - a: About
//   - L: Diagnostics log
//   - ?: Help
//   - q or Ctrl+C: Quit
package ui
