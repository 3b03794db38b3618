package dispatcher

import (
	"context"
	"errors"
	"strings"

	"learning-activity-agent/internal/activity"
	"learning-activity-agent/pkg/fuzzy"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameVariations lists the spellings tried before fuzzy matching: as given,
// lower, upper, title, collapsed whitespace and without spaces.
func nameVariations(name string) []string {
	trimmed := strings.TrimSpace(name)
	collapsed := strings.Join(strings.Fields(trimmed), " ")
	candidates := []string{
		trimmed,
		strings.ToLower(trimmed),
		strings.ToUpper(trimmed),
		cases.Title(language.Und).String(strings.ToLower(collapsed)),
		collapsed,
		strings.ReplaceAll(collapsed, " ", ""),
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// upsertCategory finds a category by exact variation, then by fuzzy name,
// and creates it otherwise.
func (d *Dispatcher) upsertCategory(ctx context.Context, name string) (activity.Category, error) {
	for _, v := range nameVariations(name) {
		c, err := d.deps.Categories.FindCategory(ctx, v)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, activity.ErrCategoryNotFound) {
			return activity.Category{}, err
		}
	}

	existing, err := d.deps.Categories.ListCategories(ctx)
	if err != nil {
		return activity.Category{}, err
	}
	best, bestScore := -1, -1
	for i, c := range existing {
		if s := fuzzy.TokenSetRatio(name, c.Name); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best >= 0 && bestScore >= d.deps.Resolver.Threshold() {
		d.l.Infof(ctx, "%s: %q matched existing category %q (score %d)", LogPrefixUpsertCategory, name, existing[best].Name, bestScore)
		return existing[best], nil
	}

	return d.deps.Categories.CreateCategory(ctx, strings.Join(strings.Fields(name), " "))
}

func (d *Dispatcher) upsertSubcategory(ctx context.Context, categoryID, name string) (activity.Subcategory, error) {
	for _, v := range nameVariations(name) {
		sc, err := d.deps.Categories.FindSubcategory(ctx, categoryID, v)
		if err == nil {
			return sc, nil
		}
		if !errors.Is(err, activity.ErrSubcategoryNotFound) {
			return activity.Subcategory{}, err
		}
	}

	existing, err := d.deps.Categories.ListSubcategories(ctx, categoryID)
	if err != nil {
		return activity.Subcategory{}, err
	}
	best, bestScore := -1, -1
	for i, sc := range existing {
		if s := fuzzy.TokenSetRatio(name, sc.Name); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best >= 0 && bestScore >= d.deps.Resolver.Threshold() {
		return existing[best], nil
	}

	return d.deps.Categories.CreateSubcategory(ctx, categoryID, strings.Join(strings.Fields(name), " "))
}
