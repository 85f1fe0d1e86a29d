package search

import (
	"strings"

	"github.com/Jithendhar18/recipe-ideas/internal/mealdb"
)

// Kind is what a search term resolved to.
type Kind int

const (
	KindNone Kind = iota
	KindName
	KindIngredient
	KindCategory
	KindArea
)

// String returns the kind as shown in the header and CLI output.
func (k Kind) String() string {
	switch k {
	case KindName:
		return "search"
	case KindIngredient:
		return "ingredient"
	case KindCategory:
		return "category"
	case KindArea:
		return "area"
	default:
		return ""
	}
}

// Icon returns the glyph shown next to a suggestion of this kind.
func (k Kind) Icon() string {
	switch k {
	case KindIngredient:
		return "🥕"
	case KindCategory:
		return "🍽️"
	case KindArea:
		return "🌍"
	default:
		return "🔎"
	}
}

// Attribute maps filter kinds to the API attribute. KindName and KindNone
// report false.
func (k Kind) Attribute() (mealdb.Attribute, bool) {
	switch k {
	case KindIngredient:
		return mealdb.ByIngredient, true
	case KindCategory:
		return mealdb.ByCategory, true
	case KindArea:
		return mealdb.ByArea, true
	default:
		return "", false
	}
}

// Index holds the three base name lists.
type Index struct {
	Categories  []string
	Ingredients []string
	Areas       []string
}

// Clone returns a deep copy.
func (x Index) Clone() Index {
	return Index{
		Categories:  append([]string(nil), x.Categories...),
		Ingredients: append([]string(nil), x.Ingredients...),
		Areas:       append([]string(nil), x.Areas...),
	}
}

// Empty reports whether every list is empty.
func (x Index) Empty() bool {
	return len(x.Categories) == 0 && len(x.Ingredients) == 0 && len(x.Areas) == 0
}

// Intent is a classified search term.
type Intent struct {
	Term string
	Kind Kind
}

// Blank reports whether there is nothing to search for.
func (i Intent) Blank() bool {
	return i.Term == ""
}

// Classify resolves term against the index. Exact case-insensitive matches
// are tried against ingredients, then categories, then areas; anything else
// is a free-text name search.
func (x Index) Classify(term string) Intent {
	term = strings.TrimSpace(term)
	if term == "" {
		return Intent{}
	}
	switch {
	case containsFold(x.Ingredients, term):
		return Intent{Term: term, Kind: KindIngredient}
	case containsFold(x.Categories, term):
		return Intent{Term: term, Kind: KindCategory}
	case containsFold(x.Areas, term):
		return Intent{Term: term, Kind: KindArea}
	default:
		return Intent{Term: term, Kind: KindName}
	}
}

// URLBuilder is implemented by *mealdb.Client.
type URLBuilder interface {
	FilterURL(attr mealdb.Attribute, term string) string
	SearchURL(term string) string
}

// Endpoint returns the URL that loads results for i, or "" for a blank intent.
// The term is sent lower-cased.
func (i Intent) Endpoint(b URLBuilder) string {
	if i.Blank() || b == nil {
		return ""
	}
	term := strings.ToLower(i.Term)
	if attr, ok := i.Kind.Attribute(); ok {
		return b.FilterURL(attr, term)
	}
	return b.SearchURL(term)
}

// Suggestion is one typeahead candidate.
type Suggestion struct {
	Name string
	Kind Kind
}

// SuggestionsPerKind caps how many matches each list contributes.
const SuggestionsPerKind = 3

// Suggest returns up to SuggestionsPerKind substring matches from each list,
// categories first, then ingredients, then areas. A name present in several
// lists appears once per list.
func (x Index) Suggest(input string) []Suggestion {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return nil
	}
	var out []Suggestion
	out = appendMatches(out, x.Categories, needle, KindCategory)
	out = appendMatches(out, x.Ingredients, needle, KindIngredient)
	out = appendMatches(out, x.Areas, needle, KindArea)
	return out
}

func appendMatches(out []Suggestion, names []string, needle string, kind Kind) []Suggestion {
	n := 0
	for _, name := range names {
		if n == SuggestionsPerKind {
			break
		}
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, Suggestion{Name: name, Kind: kind})
			n++
		}
	}
	return out
}

func containsFold(names []string, term string) bool {
	for _, name := range names {
		if strings.EqualFold(name, term) {
			return true
		}
	}
	return false
}
