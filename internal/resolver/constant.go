package resolver

const (
	DefaultThreshold = 85

	MaxCandidates  = 3
	MaxSuggestions = 5

	MatchedByName        = "name"
	MatchedByDescription = "description"

	MsgNeedsClarification = "Could not determine the activity name. Based on your input, do you mean one of these: %s? Please specify the activity name."
	MsgNotFound           = "No matching activity found."
	MsgNotFoundSuggest    = "No matching activity found. Top suggestions: %s"
)
