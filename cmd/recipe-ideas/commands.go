package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Jithendhar18/recipe-ideas/internal/app"
	"github.com/Jithendhar18/recipe-ideas/internal/mealdb"
	"github.com/Jithendhar18/recipe-ideas/internal/prefs"
	"github.com/Jithendhar18/recipe-ideas/internal/recipe"
)

const defaultWidth = 80

func newSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM",
		Short: "Search meals by name, ingredient, category or area",
		Example: `  recipe-ideas search chicken
  recipe-ideas search "fish pie"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			return withApp(opts, func(a *app.App) error {
				intent, meals, err := a.Search(cmd.Context(), term)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s: %s\n", intent.Kind.Icon(), intent.Kind, intent.Term)
				if len(meals) == 0 {
					fmt.Fprintf(out, "No meals found for %q\n", intent.Term)
					return nil
				}
				printMeals(out, meals)
				return nil
			})
		},
	}
}

func newMealCmd(opts *rootOptions) *cobra.Command {
	var markdown bool
	cmd := &cobra.Command{
		Use:   "meal ID",
		Short: "Show the full recipe for a meal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app.App) error {
				meal, err := a.Meal(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if markdown {
					_, err = io.WriteString(out, recipe.Markdown(meal))
					return err
				}
				rendered, err := recipe.Render(meal, glamourStyle(out, a.Prefs.Theme), outputWidth(out))
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, rendered)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "print raw markdown")
	return cmd
}

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest TEXT",
		Short: "List matching categories, ingredients and areas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app.App) error {
				suggestions, err := a.Suggest(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, s := range suggestions {
					fmt.Fprintf(out, "%s %s (%s)\n", s.Kind.Icon(), s.Name, s.Kind)
				}
				return nil
			})
		},
	}
}

func newSampleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "List the first meals of every category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app.App) error {
				meals, err := a.Sample(cmd.Context())
				if err != nil {
					return err
				}
				printMeals(cmd.OutOrStdout(), meals)
				return nil
			})
		},
	}
}

// printMeals writes meals as a table. Filter results have no category or
// area, so those columns are dropped when every row leaves them blank.
func printMeals(out io.Writer, meals []mealdb.Meal) {
	detailed := false
	for _, m := range meals {
		if m.Category != "" || m.Area != "" {
			detailed = true
			break
		}
	}

	headers := []string{"ID", "Name"}
	if detailed {
		headers = append(headers, "Category", "Area")
	}
	rows := make([][]string, 0, len(meals))
	for _, m := range meals {
		row := []string{m.ID, m.Name}
		if detailed {
			row = append(row, m.Category, m.Area)
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(out, t.String())
	fmt.Fprintf(out, "%d meals\n", len(meals))
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// glamourStyle picks the recipe style: plain text when out is not a
// terminal, otherwise the saved theme.
func glamourStyle(out io.Writer, theme string) string {
	if !isTerminal(out) {
		return recipe.StyleNoTTY
	}
	if prefs.NormalizeTheme(theme) == prefs.ThemeDark {
		return recipe.StyleDark
	}
	return recipe.StyleLight
}

func outputWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return min(w, 120)
}
