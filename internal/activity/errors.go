package activity

import "errors"

var (
	ErrMissingID           = errors.New("activity id is required")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrEmptyName           = errors.New("name is required")
)
