package analysis

import (
	"math/rand"
	"sync"
)

// Analyzer scores sentiment, detects conversational patterns, extracts
// topics, and selects responses and journal prompts for raw user text.
// Every operation is a pure function of the input text and the tables the
// analyzer was constructed with; the tables are never mutated after
// construction, so a single Analyzer is safe for concurrent use.
type Analyzer struct {
	tables Tables

	// Random selection goes through a single guarded source so a seeded
	// analyzer stays deterministic even under concurrent callers.
	mu  sync.Mutex
	rng *rand.Rand
}

// Tables is the immutable configuration an Analyzer operates over.
type Tables struct {
	// Lexicon maps lowercase word tokens to signed polarity weights.
	Lexicon map[string]int

	// Negations is the subset of lexicon tokens that invert the polarity of
	// the next sentiment word instead of contributing their own weight.
	Negations map[string]bool

	// Patterns maps category names to case-insensitive matchers tested
	// independently against the whole text.
	Patterns map[Category]*PatternMatcher

	// Responses maps detected categories to their candidate responses.
	Responses map[Category][]string

	// Fallbacks maps sentiment labels to responses used when no pattern
	// matched.
	Fallbacks map[Label][]string

	// CategoryPrompts maps pattern categories to journal prompt candidates.
	CategoryPrompts map[Category][]string

	// LabelPrompts maps sentiment labels to journal prompt candidates.
	// Neutral sentiment contributes no prompts.
	LabelPrompts map[Label][]string

	// DefaultPrompts is returned as the candidate pool when nothing else
	// contributed a prompt.
	DefaultPrompts []string

	// Stopwords are excluded from topic extraction.
	Stopwords map[string]bool
}

// New creates an Analyzer over the given tables, drawing random choices from
// the given source. Passing a fixed-seed source makes every selection
// deterministic for testing.
func New(tables Tables, rng *rand.Rand) *Analyzer {
	return &Analyzer{tables: tables, rng: rng}
}

// NewDefault creates an Analyzer over the built-in tables.
func NewDefault(rng *rand.Rand) *Analyzer {
	return New(DefaultTables(), rng)
}

// DefaultTables returns the built-in lexicon, patterns, and template banks.
func DefaultTables() Tables {
	return Tables{
		Lexicon:         defaultLexicon,
		Negations:       defaultNegations,
		Patterns:        defaultPatterns,
		Responses:       defaultResponses,
		Fallbacks:       defaultFallbacks,
		CategoryPrompts: defaultCategoryPrompts,
		LabelPrompts:    defaultLabelPrompts,
		DefaultPrompts:  defaultPrompts,
		Stopwords:       defaultStopwords,
	}
}

// pick returns a uniformly random element of candidates.
func (a *Analyzer) pick(candidates []string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return candidates[a.rng.Intn(len(candidates))]
}
