package router

// Log prefixes
const (
	LogPrefixClassify   = "internal.router.Classify"
	LogPrefixSpellCheck = "internal.router.spellCheck"
)

// Router prompts
const (
	PromptRouterSystem = `Classify the user's intent into exactly one of these categories:
- create-activity: the user wants to create a new activity
- edit-activity: the user wants to modify an existing activity
- delete-activity: the user wants to remove an activity
- list-activities: the user wants to view or browse activities
- start-activity: the user wants to start, take or play an activity or quiz
- generate-activity: the user wants an activity generated for them
- greetings: the user says hello or another greeting
- capabilities: the user asks what the assistant can do
- evaluate-performance: the user wants feedback on how they performed
- unknown: none of the above

Return JSON with exactly these keys:
- intent: one of the category names above
- confidence: a number between 0.0 and 1.0
- reasoning: a short explanation

User input: %q`

	PromptHistoryPrefix = "Recent conversation:\n"

	PromptSpellCheck = `Check the following user message for spelling mistakes. Ignore capitalization.
Return JSON with exactly these keys:
- has_errors: true or false
- corrected_text: the message with spelling fixed (the original message when there are no errors)
- corrections: a list of "wrong -> right" strings

Message: %q`
)

// Router configuration
const (
	RouterTemperature        = 0.1
	RouterMaxTokens          = 256
	RouterFallbackIntent     = IntentUnknown
	RouterFallbackConfidence = 0.5
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "Non-JSON classifier output, falling back to keywords"
)

// Fallback reasons
const (
	ReasonKeywordFallback = "Fallback due to non-JSON response - keyword heuristic"
)
