package mealdb

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// MaxIngredientSlots is the number of positional ingredient/measure pairs a
// meal record carries.
const MaxIngredientSlots = 20

// Meal mirrors a TheMealDB meal record. Filter endpoints only populate ID,
// Name and Thumbnail.
type Meal struct {
	ID           string
	Name         string
	Thumbnail    string
	Category     string
	Area         string
	Tags         string
	Instructions string
	Video        string
	Source       string
	Ingredients  []Ingredient
}

// Ingredient is one non-empty ingredient slot of a meal.
type Ingredient struct {
	Slot    int
	Name    string
	Measure string
}

// TagList splits the comma separated tag string.
func (m Meal) TagList() []string {
	if strings.TrimSpace(m.Tags) == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(m.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Meta returns "Area | Category" with empty parts dropped.
func (m Meal) Meta() string {
	var parts []string
	for _, p := range []string{m.Area, m.Category} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

// MealList is the {"meals": [...]} envelope used by filter, search and lookup.
// A null or missing list decodes as empty.
type MealList struct {
	Meals []Meal
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *MealList) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid meal list payload")
	}
	l.Meals = nil
	gjson.GetBytes(data, "meals").ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			l.Meals = append(l.Meals, mealFromResult(value))
		}
		return true
	})
	return nil
}

func mealFromResult(r gjson.Result) Meal {
	field := func(name string) string {
		return strings.TrimSpace(r.Get(name).String())
	}
	return Meal{
		ID:           field("idMeal"),
		Name:         field("strMeal"),
		Thumbnail:    field("strMealThumb"),
		Category:     field("strCategory"),
		Area:         field("strArea"),
		Tags:         field("strTags"),
		Instructions: strings.TrimSpace(r.Get("strInstructions").String()),
		Video:        field("strYoutube"),
		Source:       field("strSource"),
		Ingredients:  ingredientsFromResult(r),
	}
}

// ingredientsFromResult walks slots 1..20 in order and keeps every slot whose
// ingredient is non-blank. Null, missing and whitespace-only slots are
// skipped, so sparse records keep their relative order.
func ingredientsFromResult(r gjson.Result) []Ingredient {
	var out []Ingredient
	for slot := 1; slot <= MaxIngredientSlots; slot++ {
		name := strings.TrimSpace(r.Get(fmt.Sprintf("strIngredient%d", slot)).String())
		if name == "" {
			continue
		}
		out = append(out, Ingredient{
			Slot:    slot,
			Name:    name,
			Measure: strings.TrimSpace(r.Get(fmt.Sprintf("strMeasure%d", slot)).String()),
		})
	}
	return out
}

func decodeNames(data []byte, field string) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid %s list payload", field)
	}
	var names []string
	for _, v := range gjson.GetBytes(data, "meals.#."+field).Array() {
		if name := strings.TrimSpace(v.String()); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
