package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"learning-activity-agent/internal/activity"

	"github.com/google/uuid"
)

func (s *Store) ListCategories(ctx context.Context) ([]activity.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []activity.Category
	for rows.Next() {
		var c activity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// FindCategory matches the name exactly.
func (s *Store) FindCategory(ctx context.Context, name string) (activity.Category, error) {
	var c activity.Category
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM categories WHERE name = ?`, name).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return activity.Category{}, activity.ErrCategoryNotFound
	}
	if err != nil {
		return activity.Category{}, fmt.Errorf("scan category row: %w", err)
	}
	return c, nil
}

func (s *Store) CreateCategory(ctx context.Context, name string) (activity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return activity.Category{}, activity.ErrEmptyName
	}
	c := activity.Category{ID: uuid.NewString(), Name: name}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`,
		c.ID, c.Name, s.now().Unix(),
	); err != nil {
		return activity.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (s *Store) ListSubcategories(ctx context.Context, categoryID string) ([]activity.Subcategory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category_id, name FROM subcategories WHERE category_id = ? ORDER BY name, id`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("query subcategories: %w", err)
	}
	defer rows.Close()

	var out []activity.Subcategory
	for rows.Next() {
		var sc activity.Subcategory
		if err := rows.Scan(&sc.ID, &sc.CategoryID, &sc.Name); err != nil {
			return nil, fmt.Errorf("scan subcategory row: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func (s *Store) FindSubcategory(ctx context.Context, categoryID, name string) (activity.Subcategory, error) {
	var sc activity.Subcategory
	err := s.db.QueryRowContext(ctx,
		`SELECT id, category_id, name FROM subcategories WHERE category_id = ? AND name = ?`, categoryID, name,
	).Scan(&sc.ID, &sc.CategoryID, &sc.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return activity.Subcategory{}, activity.ErrSubcategoryNotFound
	}
	if err != nil {
		return activity.Subcategory{}, fmt.Errorf("scan subcategory row: %w", err)
	}
	return sc, nil
}

func (s *Store) CreateSubcategory(ctx context.Context, categoryID, name string) (activity.Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return activity.Subcategory{}, activity.ErrEmptyName
	}
	sc := activity.Subcategory{ID: uuid.NewString(), CategoryID: categoryID, Name: name}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO subcategories (id, category_id, name, created_at) VALUES (?, ?, ?, ?)`,
		sc.ID, sc.CategoryID, sc.Name, s.now().Unix(),
	); err != nil {
		return activity.Subcategory{}, fmt.Errorf("insert subcategory: %w", err)
	}
	return sc, nil
}
