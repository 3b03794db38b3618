package dispatcher

import (
	"context"
	"errors"

	"learning-activity-agent/internal/activity"
	"learning-activity-agent/internal/gateway"
)

// mirrorCreated saves a newly created activity into the local catalog so it
// can be started by name right away. Only results carrying an id are saved.
func (d *Dispatcher) mirrorCreated(ctx context.Context, created any, payload activity.Payload, category, subcategory string) {
	if d.deps.CatalogWriter == nil {
		return
	}
	obj, ok := created.(map[string]any)
	if !ok {
		return
	}
	id := gateway.AsString(obj["id"])
	if id == "" {
		return
	}

	entry := activity.CatalogEntry{
		ID:               id,
		Name:             firstNonEmpty(gateway.AsString(obj["name"]), gateway.AsString(payload["name"])),
		CategoryName:     category,
		SubcategoryName:  subcategory,
		FinalDescription: firstNonEmpty(gateway.AsString(obj["final_description"]), gateway.AsString(payload["description"])),
	}
	if entry.Name == "" {
		return
	}
	if _, err := d.deps.CatalogWriter.SaveEntry(ctx, entry); err != nil {
		d.l.Warnf(ctx, "%s: mirror created %s: %v", LogPrefixCatalogSync, id, err)
	}
}

// mirrorDeleted hides a deleted activity from the local catalog.
func (d *Dispatcher) mirrorDeleted(ctx context.Context, id string) {
	if d.deps.CatalogWriter == nil {
		return
	}
	if err := d.deps.CatalogWriter.Deactivate(ctx, id); err != nil && !errors.Is(err, activity.ErrMissingID) {
		d.l.Warnf(ctx, "%s: mirror deleted %s: %v", LogPrefixCatalogSync, id, err)
	}
}

// mirrorEdited applies an edit to the local catalog. Fields come from the
// service reply, then the edit payload; anything neither carries keeps the
// value already in the catalog.
func (d *Dispatcher) mirrorEdited(ctx context.Context, id string, updated any, payload activity.Payload) {
	if d.deps.CatalogWriter == nil {
		return
	}
	obj, _ := updated.(map[string]any)
	field := func(keys ...string) string {
		for _, k := range keys {
			if v := firstNonEmpty(gateway.AsString(obj[k]), gateway.AsString(payload[k])); v != "" {
				return v
			}
		}
		return ""
	}

	entry := d.catalogEntry(ctx, id)
	entry.ID = id
	if v := field("name"); v != "" {
		entry.Name = v
	}
	if v := field("final_description", "description"); v != "" {
		entry.FinalDescription = v
	}
	if v := field("category_name"); v != "" {
		entry.CategoryName = v
	}
	if v := field("subcategory_name"); v != "" {
		entry.SubcategoryName = v
	}
	if entry.Name == "" {
		return
	}
	if _, err := d.deps.CatalogWriter.SaveEntry(ctx, entry); err != nil {
		d.l.Warnf(ctx, "%s: mirror edited %s: %v", LogPrefixCatalogSync, id, err)
	}
}

// catalogEntry returns the active catalog entry with id, or a zero entry.
func (d *Dispatcher) catalogEntry(ctx context.Context, id string) activity.CatalogEntry {
	entries, err := d.deps.Catalog.ListCatalog(ctx, activity.CatalogFilter{})
	if err != nil {
		d.l.Warnf(ctx, "%s: load catalog for %s: %v", LogPrefixCatalogSync, id, err)
		return activity.CatalogEntry{}
	}
	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}
	return activity.CatalogEntry{}
}
