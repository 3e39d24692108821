// Package sentiment classifies review text into polarity buckets.
package sentiment

import "strings"

// Scorer produces a polarity score in [-1.0, 1.0] for a piece of text.
// The default implementation is a small valence lexicon; a heavier model
// can be swapped in behind this interface.
type Scorer interface {
	Score(text string) float64
}

// negations flip the sign of the next scored word.
var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"nothing": true,
	"hardly":  true,
	"barely":  true,
	"isnt":    true,
	"wasnt":   true,
	"didnt":   true,
	"dont":    true,
	"wont":    true,
	"cant":    true,
	"couldnt": true,
}

// intensifiers scale the valence of the next scored word.
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"absolutely": 1.5,
	"totally":    1.4,
	"so":         1.2,
	"super":      1.4,
	"incredibly": 1.5,
	"slightly":   0.6,
	"somewhat":   0.7,
	"kinda":      0.7,
	"fairly":     0.8,
}

// lexicon maps words to valence in [-1.0, 1.0]. Tuned for dealership and
// service reviews.
var lexicon = map[string]float64{
	// positive
	"amazing":       0.9,
	"awesome":       0.9,
	"excellent":     0.9,
	"outstanding":   0.9,
	"fantastic":     0.9,
	"wonderful":     0.9,
	"perfect":       0.9,
	"great":         0.8,
	"love":          0.8,
	"loved":         0.8,
	"best":          0.8,
	"exceptional":   0.8,
	"superb":        0.8,
	"impressed":     0.7,
	"impressive":    0.7,
	"recommend":     0.7,
	"recommended":   0.7,
	"friendly":      0.6,
	"helpful":       0.6,
	"professional":  0.6,
	"courteous":     0.6,
	"knowledgeable": 0.6,
	"honest":        0.6,
	"happy":         0.6,
	"pleased":       0.6,
	"pleasant":      0.5,
	"smooth":        0.5,
	"easy":          0.5,
	"good":          0.5,
	"clean":         0.4,
	"fast":          0.4,
	"quick":         0.4,
	"prompt":        0.4,
	"fair":          0.3,
	"reasonable":    0.3,
	"thanks":        0.3,
	"thank":         0.3,
	"nice":          0.4,
	"fine":          0.2,
	"okay":          0.1,
	"ok":            0.1,
	"decent":        0.2,
	"special":       0.3,
	// negative
	"terrible":       -0.9,
	"horrible":       -0.9,
	"awful":          -0.9,
	"worst":          -0.9,
	"disgusting":     -0.9,
	"scam":           -0.9,
	"dishonest":      -0.8,
	"rude":           -0.8,
	"liar":           -0.8,
	"lied":           -0.8,
	"nightmare":      -0.8,
	"unprofessional": -0.7,
	"incompetent":    -0.7,
	"useless":        -0.7,
	"ripoff":         -0.7,
	"avoid":          -0.6,
	"bad":            -0.6,
	"poor":           -0.6,
	"disappointed":   -0.6,
	"disappointing":  -0.6,
	"overpriced":     -0.6,
	"ignored":        -0.5,
	"waiting":        -0.3,
	"wait":           -0.3,
	"slow":           -0.4,
	"late":           -0.4,
	"pushy":          -0.5,
	"shady":          -0.6,
	"broken":         -0.5,
	"problem":        -0.4,
	"problems":       -0.4,
	"issue":          -0.3,
	"issues":         -0.3,
	"damaged":        -0.5,
	"dirty":          -0.4,
	"expensive":      -0.3,
	"hidden":         -0.4,
	"refused":        -0.5,
	"wrong":          -0.4,
}

// LexiconScorer scores text by averaging the valence of matched words,
// flipping on negation and scaling on intensifiers.
type LexiconScorer struct{}

// NewLexiconScorer returns the default lexicon-backed scorer.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

// Score returns the average valence of scored words, clamped to [-1, 1].
// Text with no scored words is 0.0.
func (s *LexiconScorer) Score(text string) float64 {
	words := tokenize(text)

	var sum float64
	var scored int
	negate := false
	boost := 1.0

	for _, w := range words {
		if negations[w] {
			negate = true
			continue
		}
		if mul, ok := intensifiers[w]; ok {
			boost *= mul
			continue
		}

		valence, ok := lexicon[w]
		if !ok {
			// Modifier scope ends at the first non-lexicon word.
			negate = false
			boost = 1.0
			continue
		}

		v := valence * boost
		if negate {
			v = -v
		}
		sum += v
		scored++
		negate = false
		boost = 1.0
	}

	if scored == 0 {
		return 0.0
	}

	avg := sum / float64(scored)
	return clamp(avg, -1.0, 1.0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// tokenize lowercases the text and splits it into words, dropping
// punctuation so "fine," matches "fine" and "isn't" matches "isnt".
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '\t', r == '\n':
			return ' '
		default:
			return -1
		}
	}, lower)
	return strings.Fields(cleaned)
}
