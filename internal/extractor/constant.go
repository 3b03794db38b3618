package extractor

const (
	LogPrefixExtractStart  = "internal.extractor.ExtractStart"
	LogPrefixExtractCreate = "internal.extractor.ExtractCreate"
	LogPrefixExtractList   = "internal.extractor.ExtractListFilters"
)

const (
	ExtractTemperature = 0.1
	ExtractMaxTokens   = 512

	DefaultDifficulty = "Beginner"
)

const (
	PromptStart = `You are an expert assistant for an educational learning platform.
Extract the following details from the user's message:
- activity_name: the name or title of the activity the user wants to start
- category_name: the main category of the activity, if mentioned
- subcategory_name: the subcategory of the activity, if mentioned
- additional_details: an object with any extra details, such as num_questions for a quiz
Return a JSON object with exactly these keys. Use null for missing values and {} for additional_details when there are none.

User input: %q`

	PromptCreate = `You are an expert assistant for an educational learning platform.
The user wants to create a learning activity. Extract:
- name: a short title for the activity
- description: what the activity is about
- category_name: the main category (for example Math or Science)
- subcategory_name: the subcategory (for example Algebra)
- difficulty_level: one of Beginner, Intermediate, Advanced
Return a JSON object with exactly these keys. Use null for missing values.

User input: %q`

	PromptListFilters = `The user wants to list learning activities. Extract optional filters:
- activity_name
- category_name
- subcategory_name
Return a JSON object with exactly these keys. Use null for filters that are not mentioned.

User input: %q`
)
