package analysis

// defaultLexicon maps lowercase word tokens to polarity weights in -2..+2.
// Negation triggers carry weight -1 here but are never scored directly; see
// defaultNegations.
var defaultLexicon = map[string]int{
	// Positive
	"good":       1,
	"great":      2,
	"excellent":  2,
	"wonderful":  2,
	"happy":      1,
	"glad":       1,
	"positive":   1,
	"awesome":    2,
	"fantastic":  2,
	"terrific":   2,
	"enjoy":      1,
	"enjoyable":  1,
	"pleased":    1,
	"grateful":   1,
	"thankful":   1,
	"appreciate": 1,
	"love":       2,
	"lovely":     1,
	"amazing":    2,
	"better":     1,
	"best":       2,
	"excited":    1,
	"joy":        1,
	"peaceful":   1,
	"calm":       1,
	"relaxed":    1,
	"satisfied":  1,
	"proud":      1,
	"confident":  1,
	"hopeful":    1,

	// Negative
	"bad":           -1,
	"terrible":      -2,
	"awful":         -2,
	"horrible":      -2,
	"sad":           -1,
	"unhappy":       -1,
	"negative":      -1,
	"depressed":     -2,
	"depressing":    -2,
	"anxious":       -1,
	"anxiety":       -1,
	"worry":         -1,
	"worried":       -1,
	"upset":         -1,
	"angry":         -2,
	"mad":           -1,
	"frustrated":    -1,
	"disappointing": -1,
	"disappointed":  -1,
	"hate":          -2,
	"dislike":       -1,
	"tired":         -1,
	"exhausted":     -2,
	"stressed":      -1,
	"stress":        -1,
	"afraid":        -1,
	"scared":        -1,
	"fear":          -1,
	"lonely":        -2,
	"alone":         -1,
	"miserable":     -2,
	"pain":          -1,
	"painful":       -1,
	"hurt":          -1,
	"suffering":     -2,
	"suffer":        -1,
	"struggle":      -1,
	"difficult":     -1,
	"hard":          -1,
	"trouble":       -1,

	// Negation triggers (flip the next sentiment word)
	"not":       -1,
	"no":        -1,
	"never":     -1,
	"don't":     -1,
	"doesn't":   -1,
	"didn't":    -1,
	"won't":     -1,
	"wouldn't":  -1,
	"can't":     -1,
	"cannot":    -1,
	"couldn't":  -1,
	"shouldn't": -1,
}

// defaultNegations marks which lexicon tokens act as negation triggers.
// A token is either a trigger or a polarity word in a given pass, never both.
var defaultNegations = map[string]bool{
	"not":       true,
	"no":        true,
	"never":     true,
	"don't":     true,
	"doesn't":   true,
	"didn't":    true,
	"won't":     true,
	"wouldn't":  true,
	"can't":     true,
	"cannot":    true,
	"couldn't":  true,
	"shouldn't": true,
}
