package mealdb

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// decodeMeal decodes a single meal object through the list envelope.
func decodeMeal(t *testing.T, obj []byte) Meal {
	t.Helper()
	var list MealList
	if err := json.Unmarshal([]byte(`{"meals":[`+string(obj)+`]}`), &list); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if len(list.Meals) != 1 {
		t.Fatalf("len(Meals) = %d, want 1", len(list.Meals))
	}
	return list.Meals[0]
}

func TestMealList_SparseIngredientSlots(t *testing.T) {
	data := []byte(`{
		"idMeal": "52772",
		"strMeal": "Teriyaki Chicken Casserole",
		"strIngredient1": "soy sauce",
		"strMeasure1": "3/4 cup",
		"strIngredient2": " water ",
		"strMeasure2": "1/2 cup ",
		"strIngredient3": "",
		"strMeasure3": "",
		"strIngredient4": "   ",
		"strMeasure4": "1 tbs",
		"strIngredient5": "brown sugar",
		"strMeasure5": null,
		"strIngredient6": null,
		"strMeasure6": null
	}`)

	meal := decodeMeal(t, data)
	want := []Ingredient{
		{Slot: 1, Name: "soy sauce", Measure: "3/4 cup"},
		{Slot: 2, Name: "water", Measure: "1/2 cup"},
		{Slot: 5, Name: "brown sugar", Measure: ""},
	}
	if diff := cmp.Diff(want, meal.Ingredients); diff != "" {
		t.Fatalf("Ingredients mismatch (-want +got):\n%s", diff)
	}
}

func TestMealList_AllTwentySlots(t *testing.T) {
	fields := map[string]string{"idMeal": "1"}
	for i := 1; i <= 21; i++ {
		fields["strIngredient"+strconv.Itoa(i)] = "item" + strconv.Itoa(i)
	}
	data, _ := json.Marshal(fields)

	meal := decodeMeal(t, data)
	if len(meal.Ingredients) != MaxIngredientSlots {
		t.Fatalf("len(Ingredients) = %d, want %d", len(meal.Ingredients), MaxIngredientSlots)
	}
	if last := meal.Ingredients[len(meal.Ingredients)-1]; last.Slot != 20 || last.Name != "item20" {
		t.Fatalf("last ingredient = %+v, want slot 20", last)
	}
}

func TestMealList_SkipsNonObjects(t *testing.T) {
	var list MealList
	if err := json.Unmarshal([]byte(`{"meals":[[],"meal",{"idMeal":"7"}]}`), &list); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if diff := cmp.Diff([]Meal{{ID: "7"}}, list.Meals); diff != "" {
		t.Fatalf("Meals mismatch (-want +got):\n%s", diff)
	}
	if err := list.UnmarshalJSON([]byte(`{bad`)); err == nil {
		t.Fatal("UnmarshalJSON({bad) error = nil, want error")
	}
}

func TestMealList_NullAndMissing(t *testing.T) {
	for _, raw := range []string{`{"meals":null}`, `{}`, `{"meals":[]}`} {
		var list MealList
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", raw, err)
		}
		if len(list.Meals) != 0 {
			t.Fatalf("Unmarshal(%s) meals = %+v, want empty", raw, list.Meals)
		}
	}
}

func TestMealList_PartialFilterRecords(t *testing.T) {
	raw := `{"meals":[{"strMeal":"Beef Brisket Pot Roast","strMealThumb":"https://img/1.jpg","idMeal":"52812"}]}`
	var list MealList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	want := []Meal{{ID: "52812", Name: "Beef Brisket Pot Roast", Thumbnail: "https://img/1.jpg"}}
	if diff := cmp.Diff(want, list.Meals); diff != "" {
		t.Fatalf("Meals mismatch (-want +got):\n%s", diff)
	}
}

func TestMealHelpers(t *testing.T) {
	m := Meal{Tags: "Meat, Casserole,,  Spicy ", Area: "Japanese", Category: "Chicken"}
	if diff := cmp.Diff([]string{"Meat", "Casserole", "Spicy"}, m.TagList()); diff != "" {
		t.Fatalf("TagList mismatch (-want +got):\n%s", diff)
	}
	if got := m.Meta(); got != "Japanese | Chicken" {
		t.Fatalf("Meta = %q, want %q", got, "Japanese | Chicken")
	}
	if got := (Meal{Category: "Dessert"}).Meta(); got != "Dessert" {
		t.Fatalf("Meta = %q, want Dessert", got)
	}
	if tags := (Meal{Tags: "  "}).TagList(); tags != nil {
		t.Fatalf("TagList = %v, want nil", tags)
	}
}

func TestDecodeNames(t *testing.T) {
	names, err := decodeNames([]byte(`{"meals":[{"strArea":"American"},{"strArea":" "},{"strArea":"British"}]}`), "strArea")
	if err != nil {
		t.Fatalf("decodeNames returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"American", "British"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	names, err = decodeNames([]byte(`{"meals":null}`), "strArea")
	if err != nil || len(names) != 0 {
		t.Fatalf("decodeNames(null) = %v, %v; want empty", names, err)
	}
}
