package resolver

import (
	"fmt"
	"sort"
	"strings"

	"learning-activity-agent/internal/activity"
	"learning-activity-agent/pkg/fuzzy"
)

// Resolve runs name match, description match, then the category fallback.
// The catalog is not modified.
func (r *Resolver) Resolve(q Query, catalog []activity.CatalogEntry) Result {
	entries := sortedCopy(catalog)

	category := strings.TrimSpace(q.CategoryName)
	subcategory := strings.TrimSpace(q.SubcategoryName)
	inferred := ""
	if category == "" && subcategory != "" {
		inferred = inferCategory(subcategory, entries)
		category = inferred
	}

	var byName, byDesc []Candidate
	if name := strings.TrimSpace(q.ActivityName); name != "" {
		byName = score(entries, func(e activity.CatalogEntry) int {
			return fuzzy.TokenSetRatio(name, e.Name)
		})
		if r.confident(byName) {
			return resolved(byName, MatchedByName, inferred)
		}

		byDesc = score(entries, func(e activity.CatalogEntry) int {
			return fuzzy.TokenSetRatio(q.Utterance, e.FinalDescription)
		})
		if r.confident(byDesc) {
			return resolved(byDesc, MatchedByDescription, inferred)
		}
	}

	if category == "" && subcategory == "" {
		category, subcategory = hintFromText(q, entries)
	}
	if names := filterByCategory(entries, category, subcategory); len(names) > 0 {
		return Result{
			Status:           StatusNeedsClarification,
			Suggestions:      names,
			Message:          fmt.Sprintf(MsgNeedsClarification, strings.Join(names, ", ")),
			InferredCategory: inferred,
		}
	}

	weak := weakSuggestions(byName, byDesc)
	msg := MsgNotFound
	if len(weak) > 0 {
		msg = fmt.Sprintf(MsgNotFoundSuggest, strings.Join(weak, ", "))
	}
	return Result{
		Status:           StatusNotFound,
		Suggestions:      weak,
		Message:          msg,
		InferredCategory: inferred,
	}
}

func (r *Resolver) confident(ranked []Candidate) bool {
	return len(ranked) > 0 && ranked[0].Score >= r.threshold
}

func resolved(ranked []Candidate, by, inferred string) Result {
	top := ranked
	if len(top) > MaxCandidates {
		top = top[:MaxCandidates]
	}
	return Result{
		Status:           StatusResolved,
		Entry:            ranked[0].Entry,
		Candidates:       append([]Candidate(nil), top...),
		InferredCategory: inferred,
		MatchedBy:        by,
	}
}

// sortedCopy orders the catalog by (name, id) so ties resolve deterministically.
func sortedCopy(catalog []activity.CatalogEntry) []activity.CatalogEntry {
	out := append([]activity.CatalogEntry(nil), catalog...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// score ranks entries descending; equal scores keep catalog order.
func score(entries []activity.CatalogEntry, fn func(activity.CatalogEntry) int) []Candidate {
	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		out = append(out, Candidate{Entry: e, Name: e.Name, Score: fn(e)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func inferCategory(subcategory string, entries []activity.CatalogEntry) string {
	for _, e := range entries {
		if e.SubcategoryName != "" && strings.EqualFold(e.SubcategoryName, subcategory) {
			return e.CategoryName
		}
	}
	return ""
}

func filterByCategory(entries []activity.CatalogEntry, category, subcategory string) []string {
	var names []string
	for _, e := range entries {
		catHit := category != "" && e.CategoryName != "" && strings.EqualFold(e.CategoryName, category)
		subHit := subcategory != "" && e.SubcategoryName != "" && strings.EqualFold(e.SubcategoryName, subcategory)
		if catHit || subHit {
			names = append(names, e.Name)
			if len(names) == MaxCandidates {
				break
			}
		}
	}
	return names
}

// hintFromText finds a category or subcategory named verbatim in the
// activity name or utterance when none was extracted.
func hintFromText(q Query, entries []activity.CatalogEntry) (category, subcategory string) {
	tokens := map[string]struct{}{}
	for _, s := range []string{q.ActivityName, q.Utterance} {
		for _, tok := range strings.Fields(fuzzy.Normalize(s)) {
			tokens[tok] = struct{}{}
		}
	}
	if len(tokens) == 0 {
		return "", ""
	}
	has := func(name string) bool {
		n := fuzzy.Normalize(name)
		if n == "" {
			return false
		}
		for _, tok := range strings.Fields(n) {
			if _, ok := tokens[tok]; !ok {
				return false
			}
		}
		return true
	}
	for _, e := range entries {
		if has(e.CategoryName) {
			return e.CategoryName, ""
		}
	}
	for _, e := range entries {
		if has(e.SubcategoryName) {
			return "", e.SubcategoryName
		}
	}
	return "", ""
}

// weakSuggestions merges name and description candidates with a positive
// score, best first, without duplicates.
func weakSuggestions(lists ...[]Candidate) []string {
	var all []Candidate
	for _, l := range lists {
		all = append(all, l...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Score > all[j].Score })

	seen := map[string]struct{}{}
	var out []string
	for _, c := range all {
		if c.Score <= 0 {
			break
		}
		if _, ok := seen[c.Entry.ID+"\x00"+c.Name]; ok {
			continue
		}
		seen[c.Entry.ID+"\x00"+c.Name] = struct{}{}
		out = append(out, c.Name)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
