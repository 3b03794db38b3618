package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"learning-activity-agent/internal/activity"
	"learning-activity-agent/internal/evaluation"
	"learning-activity-agent/internal/extractor"
	"learning-activity-agent/internal/resolver"
)

func (d *Dispatcher) handleGreetings(ctx context.Context, t *turn) map[string]any {
	return map[string]any{KeyMessage: MsgGreeting}
}

func (d *Dispatcher) handleCapabilities(ctx context.Context, t *turn) map[string]any {
	return map[string]any{
		KeyMessage:     MsgCapabilities,
		"capabilities": append([]string(nil), Capabilities...),
	}
}

func (d *Dispatcher) handleUnknown(ctx context.Context, t *turn) map[string]any {
	return map[string]any{KeyError: MsgUnknownIntent}
}

// handleStart resolves the activity and simulates starting it. A resolved
// activity's description is fed back through the pipeline once.
func (d *Dispatcher) handleStart(ctx context.Context, t *turn) map[string]any {
	slots := d.deps.Extractor.ExtractStart(ctx, t.prompt)

	catalog, err := d.deps.Catalog.ListCatalog(ctx, activity.CatalogFilter{})
	if err != nil {
		d.l.Errorf(ctx, "%s: load catalog: %v", LogPrefixStart, err)
		return errorResult("Failed to load activities: %v", err)
	}

	res := d.deps.Resolver.Resolve(resolver.Query{
		ActivityName:    slots.ActivityName,
		CategoryName:    slots.CategoryName,
		SubcategoryName: slots.SubcategoryName,
		Utterance:       t.prompt,
	}, catalog)
	if !res.Resolved() {
		d.l.Infof(ctx, "%s: %s for %q", LogPrefixStart, res.Status, slots.ActivityName)
		return map[string]any{
			KeyStatus:      string(res.Status),
			KeyMessage:     res.Message,
			KeySuggestions: nonNil(res.Suggestions),
		}
	}

	out := simulate(res.Entry, slots)
	out["candidates"] = res.Candidates
	if res.InferredCategory != "" {
		out["inferred_category"] = res.InferredCategory
	}

	if desc := strings.TrimSpace(res.Entry.FinalDescription); desc != "" {
		if follow, ok := d.followUp(ctx, t, desc); ok {
			out[KeyFollowUp] = follow
		}
	}
	return out
}

// simulate starts a quiz (capped by num_questions) or a plain activity.
func simulate(e activity.CatalogEntry, slots extractor.StartSlots) map[string]any {
	out := map[string]any{
		KeyStatus:       StatusStarted,
		"activity_id":   e.ID,
		"activity_name": e.Name,
		"type":          e.Kind(),
	}
	if e.IsQuiz() {
		questions := e.Questions
		if n, ok := slots.NumQuestions(); ok && n < len(questions) {
			questions = questions[:n]
		}
		out[KeyMessage] = fmt.Sprintf("Starting quiz: %s...", e.Name)
		out["questions"] = append([]activity.Question(nil), questions...)
		return out
	}
	out[KeyMessage] = fmt.Sprintf("Starting activity: %s...", e.Name)
	out["description"] = e.FinalDescription
	return out
}

// handleCreate serves both create-activity and generate-activity.
func (d *Dispatcher) handleCreate(ctx context.Context, t *turn) map[string]any {
	slots := d.deps.Extractor.ExtractCreate(ctx, t.prompt)

	categoryName := firstNonEmpty(detailString(t.req.Details, "category_name"), slots.CategoryName, DefaultCategoryName)
	subcategoryName := firstNonEmpty(detailString(t.req.Details, "subcategory_name"), slots.SubcategoryName, DefaultSubcategoryName)

	category, err := d.upsertCategory(ctx, categoryName)
	if err != nil {
		d.l.Errorf(ctx, "%s: category %q: %v", LogPrefixCreate, categoryName, err)
		return errorResult("Failed to create activity: category %q: %v", categoryName, err)
	}
	subcategory, err := d.upsertSubcategory(ctx, category.ID, subcategoryName)
	if err != nil {
		d.l.Errorf(ctx, "%s: subcategory %q: %v", LogPrefixCreate, subcategoryName, err)
		return errorResult("Failed to create activity: subcategory %q: %v", subcategoryName, err)
	}

	payload := activity.Payload{
		"name":             slots.Name,
		"description":      slots.Description,
		"category_id":      category.ID,
		"sub_category_id":  subcategory.ID,
		"difficulty_level": slots.DifficultyLevel,
		"access_type":      activity.AccessPrivate,
		"created_by":       t.req.UserID,
	}
	for k, v := range withoutKeys(t.req.Details, "token", "category_name", "subcategory_name") {
		payload[k] = v
	}

	created, err := d.deps.CRUD.Create(ctx, t.token(), payload)
	if err != nil {
		d.l.Errorf(ctx, "%s: %v", LogPrefixCreate, err)
		return errorResult("Failed to create activity: %v", err)
	}
	d.mirrorCreated(ctx, created, payload, category.Name, subcategory.Name)
	return map[string]any{
		KeyMessage:    fmt.Sprintf("Activity %q created in %s / %s.", payload["name"], category.Name, subcategory.Name),
		"activity":    created,
		"category":    category.Name,
		"subcategory": subcategory.Name,
	}
}

func (d *Dispatcher) handleEdit(ctx context.Context, t *turn) map[string]any {
	id := activityID(t.req.Details)
	if id == "" {
		return errorResult(MsgMissingActivityID, "edit")
	}
	payload := activity.Payload(withoutKeys(t.req.Details, "token"))
	updated, err := d.deps.CRUD.Edit(ctx, t.token(), id, payload)
	if err != nil {
		d.l.Errorf(ctx, "%s: edit %s: %v", LogPrefixCRUD, id, err)
		return errorResult("Activity routing failed: %v", err)
	}
	d.mirrorEdited(ctx, id, updated, payload)
	return map[string]any{KeyMessage: fmt.Sprintf("Activity %s updated.", id), "activity": updated}
}

func (d *Dispatcher) handleDelete(ctx context.Context, t *turn) map[string]any {
	id := activityID(t.req.Details)
	if id == "" {
		return errorResult(MsgMissingActivityID, "delete")
	}
	res, err := d.deps.CRUD.Delete(ctx, t.token(), id)
	if err != nil {
		d.l.Errorf(ctx, "%s: delete %s: %v", LogPrefixCRUD, id, err)
		return errorResult("Activity routing failed: %v", err)
	}
	d.mirrorDeleted(ctx, id)
	out := map[string]any{KeyMessage: fmt.Sprintf("Activity %s deleted.", id), "id": id}
	if res != nil {
		out["result"] = res
	}
	return out
}

// handleList merges extracted filters with caller details; details win.
func (d *Dispatcher) handleList(ctx context.Context, t *turn) map[string]any {
	query := activity.ListQuery(d.deps.Extractor.ExtractListFilters(ctx, t.prompt).Map())
	for k, v := range withoutKeys(t.req.Details, "token") {
		query[k] = v
	}

	items, err := d.deps.CRUD.List(ctx, t.token(), query)
	if err != nil {
		d.l.Errorf(ctx, "%s: list: %v", LogPrefixCRUD, err)
		return errorResult("Activity routing failed: %v", err)
	}
	return map[string]any{
		KeyMessage:   "Here are the matching activities.",
		"activities": items,
		"filters":    map[string]any(query),
	}
}

func (d *Dispatcher) handleEvaluate(ctx context.Context, t *turn) map[string]any {
	activityID := detailString(t.req.Details, "activity_id")
	activityName := detailString(t.req.Details, "activity_name")

	if activityID == "" {
		slots := d.deps.Extractor.ExtractStart(ctx, t.prompt)
		if slots.ActivityName != "" || slots.CategoryName != "" || slots.SubcategoryName != "" {
			catalog, err := d.deps.Catalog.ListCatalog(ctx, activity.CatalogFilter{})
			if err != nil {
				d.l.Errorf(ctx, "%s: load catalog: %v", LogPrefixEvaluate, err)
				return errorResult("Failed to load activities: %v", err)
			}
			res := d.deps.Resolver.Resolve(resolver.Query{
				ActivityName:    slots.ActivityName,
				CategoryName:    slots.CategoryName,
				SubcategoryName: slots.SubcategoryName,
				Utterance:       t.prompt,
			}, catalog)
			if res.Resolved() {
				activityID, activityName = res.Entry.ID, res.Entry.Name
			}
		}
	}

	history, err := d.deps.Store.GetHistory(ctx, t.session.ID)
	if err != nil {
		return errorResult("Failed to load conversation: %v", err)
	}

	report, err := d.deps.Evaluator.Evaluate(ctx, evaluation.Input{
		UserID:       t.req.UserID,
		SessionID:    t.session.ID,
		ActivityID:   activityID,
		ActivityName: activityName,
		History:      history,
	})
	if errors.Is(err, evaluation.ErrNoHistory) {
		return map[string]any{KeyMessage: MsgNoHistory}
	}
	if err != nil {
		d.l.Errorf(ctx, "%s: %v", LogPrefixEvaluate, err)
		return errorResult("Evaluation failed: %v", err)
	}

	out := map[string]any{
		KeyMessage:   formatReport(report),
		"evaluation": report,
	}
	if activityID != "" {
		out["activity_id"] = activityID
	}
	return out
}

func formatReport(r evaluation.Output) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Your performance: %d%%", r.OverallScore)
	if len(r.Strengths) > 0 {
		fmt.Fprintf(&sb, "\nStrengths: %s", strings.Join(r.Strengths, "; "))
	}
	if len(r.Recommendations) > 0 {
		fmt.Fprintf(&sb, "\nRecommendations: %s", strings.Join(r.Recommendations, "; "))
	}
	if r.Summary != "" {
		fmt.Fprintf(&sb, "\nSummary: %s", r.Summary)
	}
	return sb.String()
}
