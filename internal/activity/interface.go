package activity

import "context"

// CRUD is the remote Activity service. Payloads and results are opaque JSON.
// The token is forwarded as a bearer token and may be empty.
type CRUD interface {
	Create(ctx context.Context, token string, payload Payload) (any, error)
	List(ctx context.Context, token string, query ListQuery) (any, error)
	Edit(ctx context.Context, token, id string, payload Payload) (any, error)
	Delete(ctx context.Context, token, id string) (any, error)
}

// CatalogReader loads the active activities used for fuzzy matching.
type CatalogReader interface {
	ListCatalog(ctx context.Context, filter CatalogFilter) ([]CatalogEntry, error)
}

// CategoryStore looks up and creates categories and subcategories. Find
// methods match names exactly and return ErrCategoryNotFound or
// ErrSubcategoryNotFound.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]Category, error)
	FindCategory(ctx context.Context, name string) (Category, error)
	CreateCategory(ctx context.Context, name string) (Category, error)

	ListSubcategories(ctx context.Context, categoryID string) ([]Subcategory, error)
	FindSubcategory(ctx context.Context, categoryID, name string) (Subcategory, error)
	CreateSubcategory(ctx context.Context, categoryID, name string) (Subcategory, error)
}

// CatalogWriter keeps the local catalog in step with the Activity service.
type CatalogWriter interface {
	SaveEntry(ctx context.Context, e CatalogEntry) (CatalogEntry, error)
	Deactivate(ctx context.Context, id string) error
}
