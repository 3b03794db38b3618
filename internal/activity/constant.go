package activity

const (
	KindQuiz     = "quiz"
	KindActivity = "activity"

	AccessPrivate = "PRIVATE"
)

// ListQueryKeys are the query parameters the Activity service accepts on list.
var ListQueryKeys = []string{"category_name", "subcategory_name", "activity_name", "skip", "limit"}
