package dispatcher

// Log prefixes
const (
	LogPrefixRunAgent       = "internal.agent.dispatcher.RunAgent"
	LogPrefixStart          = "internal.agent.dispatcher.handleStart"
	LogPrefixCreate         = "internal.agent.dispatcher.handleCreate"
	LogPrefixCRUD           = "internal.agent.dispatcher.handleCRUD"
	LogPrefixEvaluate       = "internal.agent.dispatcher.handleEvaluate"
	LogPrefixUpsertCategory = "internal.agent.dispatcher.upsertCategory"
	LogPrefixCatalogSync    = "internal.agent.dispatcher.catalogSync"
)

// Result keys
const (
	KeyMessage     = "message"
	KeyError       = "error"
	KeyStatus      = "status"
	KeySuggestions = "suggestions"
	KeyFollowUp    = "follow_up"
)

// Fixed responses
const (
	MsgGreeting = "Hello! I'm your learning assistant. I can help you find, start, create and manage learning activities."

	MsgCapabilities = "Here is what I can do:\n" +
		"- Start an activity or quiz by name, category or description\n" +
		"- Create or generate a new activity\n" +
		"- List, edit and delete activities\n" +
		"- Evaluate your performance based on our conversation"

	MsgUnknownIntent = "Could not determine user intent. Please rephrase your request."

	MsgMissingActivityID = "An activity id is required in details to %s an activity."
	MsgHandlerFailed     = "Something went wrong while handling your request. Please try again."
	MsgFollowUpRefused   = "A follow-up cannot %s an activity."
	MsgNoHistory         = "There is no conversation history to evaluate yet."
	MsgEvaluateNotFound  = "I couldn't tell which activity to evaluate. Please name it or pass activity_id in details."
)

const (
	StatusStarted = "started"

	DefaultCategoryName    = "General"
	DefaultSubcategoryName = "General"

	DefaultMaxFollowUpDepth = 1
	DefaultHistoryWindow    = 6
)

// Capabilities is the machine-readable list returned with MsgCapabilities.
var Capabilities = []string{
	"start-activity",
	"create-activity",
	"generate-activity",
	"list-activities",
	"edit-activity",
	"delete-activity",
	"evaluate-performance",
}
