// Package recipe renders meal records for the terminal.
package recipe

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Jithendhar18/recipe-ideas/internal/mealdb"
)

// Glamour standard style names accepted by Render.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

const minWrap = 20

// Markdown lays out a full meal record as markdown.
func Markdown(m mealdb.Meal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", strings.TrimSpace(m.Name))
	if meta := metaLine(m); meta != "" {
		fmt.Fprintf(&b, "%s\n\n", meta)
	}
	if tags := m.TagList(); len(tags) > 0 {
		parts := make([]string, len(tags))
		for i, tag := range tags {
			parts[i] = "`#" + tag + "`"
		}
		fmt.Fprintf(&b, "%s\n\n", strings.Join(parts, " "))
	}

	b.WriteString("## 🧂 Ingredients\n\n")
	if len(m.Ingredients) == 0 {
		b.WriteString("_No ingredients listed._\n\n")
	}
	for _, ing := range m.Ingredients {
		if ing.Measure != "" {
			fmt.Fprintf(&b, "- **%s** _%s_\n", ing.Name, ing.Measure)
		} else {
			fmt.Fprintf(&b, "- **%s**\n", ing.Name)
		}
	}
	if len(m.Ingredients) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("## 👩‍🍳 Instructions\n\n")
	if paras := paragraphs(m.Instructions); len(paras) > 0 {
		b.WriteString(strings.Join(paras, "\n\n"))
		b.WriteString("\n\n")
	} else {
		b.WriteString("_No instructions provided._\n\n")
	}

	if m.Video != "" {
		fmt.Fprintf(&b, "🎥 [Watch Recipe Video](%s)\n\n", m.Video)
	}
	if m.Source != "" {
		fmt.Fprintf(&b, "Source: <%s>\n\n", m.Source)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Render turns the meal's markdown into styled terminal output wrapped at
// width.
func Render(m mealdb.Meal, style string, width int) (string, error) {
	if width < minWrap {
		width = minWrap
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(normalizeStyle(style)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := renderer.Render(Markdown(m))
	if err != nil {
		return "", fmt.Errorf("render meal %s: %w", m.ID, err)
	}
	return out, nil
}

// IngredientText is the plain-text shopping list copied to the clipboard.
func IngredientText(m mealdb.Meal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", strings.TrimSpace(m.Name))
	for _, ing := range m.Ingredients {
		if ing.Measure != "" {
			fmt.Fprintf(&b, "- %s (%s)\n", ing.Name, ing.Measure)
		} else {
			fmt.Fprintf(&b, "- %s\n", ing.Name)
		}
	}
	return b.String()
}

func metaLine(m mealdb.Meal) string {
	var parts []string
	if c := strings.TrimSpace(m.Category); c != "" {
		parts = append(parts, c)
	}
	if a := strings.TrimSpace(m.Area); a != "" {
		parts = append(parts, a)
	}
	return strings.Join(parts, " • ")
}

func paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func normalizeStyle(style string) string {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleLight:
		return StyleLight
	case StyleNoTTY:
		return StyleNoTTY
	default:
		return StyleDark
	}
}
