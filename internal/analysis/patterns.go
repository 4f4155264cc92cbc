package analysis

import "regexp"

// Category names a conversational pattern detected in user text.
type Category string

const (
	CategoryGreeting     Category = "greeting"
	CategoryGratitude    Category = "gratitude"
	CategoryFarewell     Category = "farewell"
	CategoryAffirmation  Category = "affirmation"
	CategoryNegation     Category = "negation"
	CategoryQuestion     Category = "question"
	CategoryStress       Category = "stress"
	CategorySleep        Category = "sleep"
	CategoryMood         Category = "mood"
	CategorySelfCritical Category = "self_critical"
)

// responsePriority is the fixed order used to resolve multiple detected
// categories to a single response bank. The first category present in the
// detected set wins; this is a deterministic tie-break, not a ranking.
var responsePriority = []Category{
	CategoryGreeting,
	CategoryFarewell,
	CategoryStress,
	CategorySelfCritical,
	CategoryMood,
	CategorySleep,
	CategoryQuestion,
	CategoryGratitude,
	CategoryAffirmation,
	CategoryNegation,
}

// PatternMatcher wraps a compiled case-insensitive expression for one
// category.
type PatternMatcher struct {
	re *regexp.Regexp
}

// NewPatternMatcher compiles expr with case-insensitive matching.
func NewPatternMatcher(expr string) *PatternMatcher {
	return &PatternMatcher{re: regexp.MustCompile(`(?i)` + expr)}
}

// Match reports whether the pattern occurs anywhere in text.
func (m *PatternMatcher) Match(text string) bool {
	return m.re.MatchString(text)
}

var defaultPatterns = map[Category]*PatternMatcher{
	CategoryGreeting:     NewPatternMatcher(`\b(hi|hello|hey|greetings|good morning|good afternoon|good evening)\b`),
	CategoryGratitude:    NewPatternMatcher(`\b(thanks|thank you|appreciate|grateful|thankful)\b`),
	CategoryFarewell:     NewPatternMatcher(`\b(goodbye|bye|see you|talk to you later|until next time)\b`),
	CategoryAffirmation:  NewPatternMatcher(`\b(yes|yeah|sure|absolutely|definitely|of course)\b`),
	CategoryNegation:     NewPatternMatcher(`\b(no|nope|not really|i don't think so)\b`),
	CategoryQuestion:     NewPatternMatcher(`\b(what|who|when|where|why|how|can you|could you|would you)\b.*\?`),
	CategoryStress:       NewPatternMatcher(`\b(stress|pressure|overwhelm|tension|anxiety|anxious|nervous|worry|worried|panic)\b`),
	CategorySleep:        NewPatternMatcher(`\b(sleep|tired|exhausted|insomnia|rest|awake|dream|nightmar)\b`),
	CategoryMood:         NewPatternMatcher(`\b(feeling|mood|emotion|happy|sad|angry|upset|content|joy|delight|miserable)\b`),
	CategorySelfCritical: NewPatternMatcher(`\b(failure|fail|mistake|blame|fault|should have|regret|disappoint|mess up)\b`),
}

// DetectPatterns returns the set of categories whose pattern matches text.
// Categories are tested independently; the returned order follows the fixed
// priority order so output is deterministic, but only membership matters.
func (a *Analyzer) DetectPatterns(text string) []Category {
	if text == "" {
		return nil
	}
	var matched []Category
	for _, cat := range responsePriority {
		m, ok := a.tables.Patterns[cat]
		if ok && m.Match(text) {
			matched = append(matched, cat)
		}
	}
	// Categories outside the priority list (substituted test tables) are
	// still honored.
	for cat, m := range a.tables.Patterns {
		if !inPriority(cat) && m.Match(text) {
			matched = append(matched, cat)
		}
	}
	return matched
}

func inPriority(cat Category) bool {
	for _, c := range responsePriority {
		if c == cat {
			return true
		}
	}
	return false
}
