package activity

// Question is one quiz question of a catalog entry.
type Question struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// CatalogEntry is a read-only snapshot of an active activity used for matching.
type CatalogEntry struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	CategoryName     string     `json:"category_name"`
	SubcategoryName  string     `json:"subcategory_name"`
	FinalDescription string     `json:"final_description"`
	Questions        []Question `json:"questions"`
}

// IsQuiz reports whether the entry carries questions.
func (e CatalogEntry) IsQuiz() bool {
	return len(e.Questions) > 0
}

// Kind is "quiz" for entries with questions, otherwise "activity".
func (e CatalogEntry) Kind() string {
	if e.IsQuiz() {
		return KindQuiz
	}
	return KindActivity
}

// CatalogFilter narrows ListCatalog. Empty fields match everything.
type CatalogFilter struct {
	CategoryName    string
	SubcategoryName string
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Subcategory struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// Payload is an opaque CRUD request body forwarded to the Activity service.
type Payload map[string]any

// ListQuery holds list query parameters. Only ListQueryKeys are forwarded.
type ListQuery map[string]any
