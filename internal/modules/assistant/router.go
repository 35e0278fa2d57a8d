package assistant

import "strings"

type Intent string

const (
	IntentPlanTrip  Intent = "plan_trip"
	IntentFindEvent Intent = "find_event"
	IntentFallback  Intent = "fallback"
)

type RoutedIntent struct {
	Intent     Intent
	Confidence float64
}

// IntentRouter decides which intent a free-text message maps to. The
// default is keyword matching; a model-backed router can replace it
// without touching any call site.
type IntentRouter interface {
	Route(message string) RoutedIntent
}

type keywordRule struct {
	keywords   []string
	intent     Intent
	confidence float64
}

// KeywordRouter matches lower-cased substrings against an ordered rule
// list. First rule with any keyword hit wins.
type KeywordRouter struct {
	rules    []keywordRule
	fallback RoutedIntent
}

func NewKeywordRouter() *KeywordRouter {
	return &KeywordRouter{
		rules: []keywordRule{
			{keywords: []string{"plan", "trip"}, intent: IntentPlanTrip, confidence: 0.95},
			{keywords: []string{"book", "ticket"}, intent: IntentFindEvent, confidence: 0.9},
		},
		fallback: RoutedIntent{Intent: IntentFallback, Confidence: 0.8},
	}
}

func (r *KeywordRouter) Route(message string) RoutedIntent {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return RoutedIntent{Intent: rule.intent, Confidence: rule.confidence}
			}
		}
	}
	return r.fallback
}
