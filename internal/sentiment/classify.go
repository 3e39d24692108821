package sentiment

import "github.com/sells-group/dealer-insights/internal/model"

// Label is a three-way polarity bucket.
type Label string

const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

// positiveThreshold and negativeThreshold bound the neutral band. The
// comparisons are strict, so a polarity of exactly ±0.2 is Neutral.
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// Classifier buckets review texts by polarity score.
type Classifier struct {
	scorer Scorer
}

// NewClassifier creates a Classifier. A nil scorer uses the built-in lexicon.
func NewClassifier(scorer Scorer) *Classifier {
	if scorer == nil {
		scorer = NewLexiconScorer()
	}
	return &Classifier{scorer: scorer}
}

// Classify maps a single text to its polarity bucket.
func (c *Classifier) Classify(text string) Label {
	polarity := c.scorer.Score(text)
	switch {
	case polarity > positiveThreshold:
		return Positive
	case polarity < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Tally classifies each text independently and accumulates counts.
// Empty input yields an all-zero tally.
func (c *Classifier) Tally(texts []string) model.SentimentTally {
	var tally model.SentimentTally
	for _, text := range texts {
		switch c.Classify(text) {
		case Positive:
			tally.Positive++
		case Negative:
			tally.Negative++
		default:
			tally.Neutral++
		}
	}
	return tally
}
