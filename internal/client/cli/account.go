package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
)

const profileDateLayout = "2006-01-02"

func (a *App) Profile(ctx context.Context) error {
	p, err := a.sessions.Profile(ctx)
	if err != nil {
		return a.fail(ctx, "profile", err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", p.ID)
	fmt.Fprintf(tw, "Email:\t%s\n", p.Email)
	fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Language:\t%s\n", p.Language)
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(tw, "Member since:\t%s\n", p.CreatedAt.Format(profileDateLayout))
	}
	return tw.Flush()
}

// Lang prints the language preference, or stores args[0] as the new one.
func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		lang, err := a.sessions.Language(ctx)
		if err != nil {
			return a.fail(ctx, "language", err)
		}
		fmt.Fprintln(a.out, "Language:", lang)
		return nil
	}

	lang := strings.ToLower(strings.TrimSpace(args[0]))
	if err := a.sessions.SetLanguage(ctx, lang); err != nil {
		return a.fail(ctx, "set language", err)
	}
	fmt.Fprintln(a.out, "Language set to", lang)
	return nil
}

// Foods lists the catalog: foods [category] [reaction]. "-" skips a filter.
func (a *App) Foods(ctx context.Context, args []string) error {
	var category, reaction string
	if len(args) > 0 && args[0] != "-" {
		category = args[0]
	}
	if len(args) > 1 && args[1] != "-" {
		reaction = args[1]
	}

	items, err := a.catalog.FoodItems(ctx, category, reaction)
	if err != nil {
		return a.fail(ctx, "food items", err)
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No food items found")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tNAME\tCATEGORY\tREACTION")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", it.Emoji, it.Name, it.Category, it.ReactionType)
	}
	return tw.Flush()
}
