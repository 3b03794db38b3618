package extractor

// StartSlots are the details of a start-activity request. Empty strings mean
// the slot was not mentioned.
type StartSlots struct {
	ActivityName      string         `json:"activity_name"`
	CategoryName      string         `json:"category_name"`
	SubcategoryName   string         `json:"subcategory_name"`
	AdditionalDetails map[string]any `json:"additional_details"`
}

// NumQuestions reads additional_details.num_questions; ok is false when absent or invalid.
func (s StartSlots) NumQuestions() (int, bool) {
	switch v := s.AdditionalDetails["num_questions"].(type) {
	case float64:
		if v > 0 {
			return int(v), true
		}
	case int:
		if v > 0 {
			return v, true
		}
	}
	return 0, false
}

// CreateSlots describe a new activity.
type CreateSlots struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	CategoryName    string `json:"category_name"`
	SubcategoryName string `json:"subcategory_name"`
	DifficultyLevel string `json:"difficulty_level"`
}

// ListFilters narrow a list-activities request.
type ListFilters struct {
	ActivityName    string `json:"activity_name,omitempty"`
	CategoryName    string `json:"category_name,omitempty"`
	SubcategoryName string `json:"subcategory_name,omitempty"`
}

// Map returns the non-empty filters keyed by their query parameter names.
func (f ListFilters) Map() map[string]any {
	out := map[string]any{}
	if f.ActivityName != "" {
		out["activity_name"] = f.ActivityName
	}
	if f.CategoryName != "" {
		out["category_name"] = f.CategoryName
	}
	if f.SubcategoryName != "" {
		out["subcategory_name"] = f.SubcategoryName
	}
	return out
}
