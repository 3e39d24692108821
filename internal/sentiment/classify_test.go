package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/dealer-insights/internal/model"
)

func TestClassify_Buckets(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, Positive, c.Classify("This dealer was absolutely wonderful and fast"))
	assert.Equal(t, Neutral, c.Classify("It was fine, nothing special"))
	assert.Equal(t, Negative, c.Classify("Terrible service, never going back"))
}

func TestClassify_UnknownWordsAreNeutral(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, Neutral, c.Classify("Bought a sedan on Tuesday"))
	assert.Equal(t, Neutral, c.Classify(""))
}

// fixedScorer returns a constant polarity regardless of input.
type fixedScorer struct{ polarity float64 }

func (f fixedScorer) Score(string) float64 { return f.polarity }

func TestClassify_BoundariesAreNeutral(t *testing.T) {
	assert.Equal(t, Neutral, NewClassifier(fixedScorer{0.2}).Classify("x"))
	assert.Equal(t, Neutral, NewClassifier(fixedScorer{-0.2}).Classify("x"))
	assert.Equal(t, Positive, NewClassifier(fixedScorer{0.21}).Classify("x"))
	assert.Equal(t, Negative, NewClassifier(fixedScorer{-0.21}).Classify("x"))
}

func TestScore_NegationFlips(t *testing.T) {
	s := NewLexiconScorer()

	assert.Greater(t, s.Score("the staff were helpful"), 0.0)
	assert.Less(t, s.Score("the staff were not helpful"), 0.0)
}

func TestScore_Range(t *testing.T) {
	s := NewLexiconScorer()

	for _, text := range []string{
		"absolutely amazing wonderful fantastic excellent perfect",
		"terrible horrible awful worst scam nightmare",
		"neutral text with no opinion words",
	} {
		score := s.Score(text)
		assert.GreaterOrEqual(t, score, -1.0, "text: %s", text)
		assert.LessOrEqual(t, score, 1.0, "text: %s", text)
	}
}

func TestTally(t *testing.T) {
	c := NewClassifier(nil)

	tally := c.Tally([]string{
		"This dealer was absolutely wonderful and fast",
		"It was fine, nothing special",
		"Terrible service, never going back",
		"Great people, very helpful",
	})

	assert.Equal(t, model.SentimentTally{Positive: 2, Neutral: 1, Negative: 1}, tally)
	assert.Equal(t, 4, tally.Total())
}

func TestTally_Empty(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, model.SentimentTally{}, c.Tally(nil))
	assert.Equal(t, model.SentimentTally{}, c.Tally([]string{}))
}
