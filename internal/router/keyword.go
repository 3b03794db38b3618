package router

import (
	"strings"
	"unicode"
)

type keywordRule struct {
	intent  Intent
	phrases []string // matched as substrings of the normalized text
	words   []string // matched as whole tokens
}

// Order matters: the first matching rule wins.
var keywordRules = []keywordRule{
	{intent: IntentCapabilities, phrases: []string{"what can you do", "what do you do", "how can you help"}, words: []string{"capabilities", "features"}},
	{intent: IntentEvaluatePerformance, phrases: []string{"how did i do", "my performance"}, words: []string{"evaluate", "evaluation", "performance", "feedback"}},
	{intent: IntentGenerateActivity, words: []string{"generate"}},
	{intent: IntentCreateActivity, words: []string{"create", "add", "new"}},
	{intent: IntentEditActivity, words: []string{"edit", "update", "modify", "change", "rename"}},
	{intent: IntentDeleteActivity, words: []string{"delete", "remove"}},
	{intent: IntentStartActivity, words: []string{"start", "begin", "take", "play", "launch"}},
	{intent: IntentListActivities, words: []string{"list", "show", "view", "browse"}},
	{intent: IntentGreetings, phrases: []string{"good morning", "good afternoon", "good evening"}, words: []string{"hello", "hi", "hey", "greetings", "howdy"}},
}

// keywordIntent guesses the intent of the user's own text when the model did
// not return JSON.
func keywordIntent(text string) Intent {
	norm := strings.ToLower(text)
	tokens := make(map[string]struct{})
	for _, tok := range strings.FieldsFunc(norm, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		tokens[tok] = struct{}{}
	}

	for _, rule := range keywordRules {
		for _, p := range rule.phrases {
			if strings.Contains(norm, p) {
				return rule.intent
			}
		}
		for _, w := range rule.words {
			if _, ok := tokens[w]; ok {
				return rule.intent
			}
		}
	}
	return IntentUnknown
}
