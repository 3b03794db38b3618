package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"learning-activity-agent/internal/activity"

	"github.com/google/uuid"
)

// ListCatalog returns active activities ordered by (name, id). Filters match
// case-insensitively.
func (s *Store) ListCatalog(ctx context.Context, filter activity.CatalogFilter) ([]activity.CatalogEntry, error) {
	query := `
		SELECT a.id, a.name, COALESCE(c.name, ''), COALESCE(sc.name, ''), a.final_description
		FROM activities a
		LEFT JOIN categories c ON c.id = a.category_id
		LEFT JOIN subcategories sc ON sc.id = a.subcategory_id
		WHERE a.is_active = 1`
	var args []any
	if filter.CategoryName != "" {
		query += ` AND LOWER(c.name) = LOWER(?)`
		args = append(args, filter.CategoryName)
	}
	if filter.SubcategoryName != "" {
		query += ` AND LOWER(sc.name) = LOWER(?)`
		args = append(args, filter.SubcategoryName)
	}
	query += ` ORDER BY a.name, a.id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	var entries []activity.CatalogEntry
	index := map[string]int{}
	for rows.Next() {
		var e activity.CatalogEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.CategoryName, &e.SubcategoryName, &e.FinalDescription); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		index[e.ID] = len(entries)
		entries = append(entries, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}
	if len(entries) == 0 {
		return entries, nil
	}

	qrows, err := s.db.QueryContext(ctx, `
		SELECT q.activity_id, q.question_text, q.answer_text
		FROM activity_questions q
		JOIN activities a ON a.id = q.activity_id
		WHERE a.is_active = 1
		ORDER BY q.activity_id, q.position`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer qrows.Close()
	for qrows.Next() {
		var id string
		var q activity.Question
		if err := qrows.Scan(&id, &q.Q, &q.A); err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		if i, ok := index[id]; ok {
			entries[i].Questions = append(entries[i].Questions, q)
		}
	}
	return entries, qrows.Err()
}

// SaveEntry inserts or replaces a catalog entry, creating its category and
// subcategory by exact name when missing. An empty ID gets a new UUID.
func (s *Store) SaveEntry(ctx context.Context, e activity.CatalogEntry) (activity.CatalogEntry, error) {
	if strings.TrimSpace(e.Name) == "" {
		return activity.CatalogEntry{}, activity.ErrEmptyName
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	var categoryID, subcategoryID any
	if e.CategoryName != "" {
		c, err := s.findOrCreateCategory(ctx, e.CategoryName)
		if err != nil {
			return activity.CatalogEntry{}, err
		}
		categoryID = c.ID
		if e.SubcategoryName != "" {
			sc, err := s.findOrCreateSubcategory(ctx, c.ID, e.SubcategoryName)
			if err != nil {
				return activity.CatalogEntry{}, err
			}
			subcategoryID = sc.ID
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return activity.CatalogEntry{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO activities (id, name, category_id, subcategory_id, final_description, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, 1, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category_id = excluded.category_id,
			subcategory_id = excluded.subcategory_id,
			final_description = excluded.final_description,
			is_active = 1`,
		e.ID, e.Name, categoryID, subcategoryID, e.FinalDescription, s.now().Unix(),
	); err != nil {
		return activity.CatalogEntry{}, fmt.Errorf("upsert activity: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM activity_questions WHERE activity_id = ?`, e.ID); err != nil {
		return activity.CatalogEntry{}, fmt.Errorf("clear questions: %w", err)
	}
	for i, q := range e.Questions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO activity_questions (activity_id, position, question_text, answer_text) VALUES (?, ?, ?, ?)`,
			e.ID, i, q.Q, q.A,
		); err != nil {
			return activity.CatalogEntry{}, fmt.Errorf("insert question: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return activity.CatalogEntry{}, fmt.Errorf("commit: %w", err)
	}
	return e, nil
}

// Deactivate hides an activity from the catalog.
func (s *Store) Deactivate(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE activities SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deactivate activity: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return activity.ErrMissingID
	}
	return nil
}

// Import reads a JSON array of catalog entries and saves each of them.
func (s *Store) Import(ctx context.Context, r io.Reader) (int, error) {
	var entries []activity.CatalogEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode catalog seed: %w", err)
	}
	for i, e := range entries {
		if _, err := s.SaveEntry(ctx, e); err != nil {
			return i, fmt.Errorf("seed entry %d (%s): %w", i, e.Name, err)
		}
	}
	return len(entries), nil
}

func (s *Store) findOrCreateCategory(ctx context.Context, name string) (activity.Category, error) {
	c, err := s.FindCategory(ctx, name)
	if errors.Is(err, activity.ErrCategoryNotFound) {
		return s.CreateCategory(ctx, name)
	}
	return c, err
}

func (s *Store) findOrCreateSubcategory(ctx context.Context, categoryID, name string) (activity.Subcategory, error) {
	sc, err := s.FindSubcategory(ctx, categoryID, name)
	if errors.Is(err, activity.ErrSubcategoryNotFound) {
		return s.CreateSubcategory(ctx, categoryID, name)
	}
	return sc, err
}
