// Package config loads recipe-ideas settings from a TOML file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/recipe-ideas/config.toml
//  3. If the file doesn't exist, fall back to built-in defaults
//  4. Blank or zero fields in an existing file keep their defaults
//  5. RECIPE_IDEAS_* environment variables override the result
//
// # TOML Format
//
//	api_base = "https://www.themealdb.com/api/json/v1/1/"
//	request_timeout = "10s"
//	per_category = 3
//	max_concurrency = 8
//	requests_per_second = 10
//	burst = 5
//	log_file = "~/.local/share/recipe-ideas/recipe-ideas.log"
//	log_level = "info"
//
// Every field is optional. Tilde expansion is applied to log_file.
//
// # Environment
//
//   - RECIPE_IDEAS_API_BASE: alternate API base URL (handy for a local mock)
//   - RECIPE_IDEAS_LOG_LEVEL: debug, info, warn, error
//   - RECIPE_IDEAS_PER_CATEGORY: meals sampled per category on start
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, and an unparseable
// request_timeout. A missing file is not an error.
package config
