package usecase

const (
	LogPrefixEvaluate = "internal.evaluation.usecase.Evaluate"

	EvaluateTemperature = 0.3
	EvaluateMaxTokens   = 800

	PromptEvaluateSystem = `You are an expert tutor. Based on the conversation below, evaluate the learner.
%s
Respond with a JSON object:
{
  "overall_score": integer 0-100,
  "scores": {"<metric>": integer 0-100},
  "strengths": [string],
  "recommendations": [string],
  "summary": string
}`

	metricQuiz    = "- Quizzes/tests: accuracy, approach, completeness, common mistakes"
	metricReading = "- Readings: completion percentage, retention insights"
	metricGeneral = "- General: engagement and understanding"

	promptActivityFocus = "Focus on the activity %q."
)
