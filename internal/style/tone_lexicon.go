package style

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/style-keeper/models"
)

type toneLabel int

const (
	toneNeutral toneLabel = iota
	tonePositive
	toneAggressive
	toneIronic
)

var (
	positiveWords = wordSet(
		"love", "loved", "great", "awesome", "amazing", "nice", "thanks", "thank",
		"cool", "beautiful", "best", "glad", "happy", "fantastic", "wonderful",
		"excellent", "brilliant", "lol", "haha", "congrats", "enjoy", "enjoyed",
		"genial", "gracias", "guapo", "bonito", "encanta", "mejor",
	)

	aggressiveWords = wordSet(
		"hate", "stupid", "idiot", "idiots", "dumb", "trash", "garbage", "shut",
		"worst", "pathetic", "loser", "losers", "moron", "terrible", "awful",
		"disgusting", "kill", "sucks", "wtf", "stfu",
		"odio", "idiota", "estupido", "basura", "asco", "peor",
	)

	ironyPhrases = []string{
		"yeah right", "sure, ", "oh great", "oh wow", "what a surprise",
		"as if", "totally not", "thanks a lot", "ya claro", "sí, claro",
	}

	ironyEmoji = []string{"🙄", "🙃", "😏"}
)

// LexiconClassifier is a heuristic ToneClassifier: each comment is labelled
// ironic, aggressive, positive or neutral from small word lists and irony
// markers, and the distribution is the share of each label.
type LexiconClassifier struct{}

// NewLexiconClassifier returns the default lexicon classifier.
func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{}
}

// Classify implements ToneClassifier. Shares are rounded to two decimals and
// the largest share absorbs the rounding remainder, so the result sums to 1
// and a register with no comments stays at 0.
func (c *LexiconClassifier) Classify(ctx context.Context, comments []string) (models.ToneDistribution, error) {
	if len(comments) == 0 {
		return models.ToneDistribution{}, nil
	}

	var counts [4]int
	for _, text := range comments {
		if err := ctx.Err(); err != nil {
			return models.ToneDistribution{}, err
		}
		counts[c.label(text)]++
	}

	n := float64(len(comments))
	var shares [4]float64
	var total float64
	largest := toneNeutral
	for label, count := range counts {
		shares[label] = round(float64(count)/n, 2)
		total += shares[label]
		if count > counts[largest] {
			largest = toneLabel(label)
		}
	}
	shares[largest] = round(shares[largest]+1-total, 2)

	return models.ToneDistribution{
		Positive:   shares[tonePositive],
		Neutral:    shares[toneNeutral],
		Aggressive: shares[toneAggressive],
		Ironic:     shares[toneIronic],
	}, nil
}

func (c *LexiconClassifier) label(text string) toneLabel {
	lower := strings.ToLower(text)

	if isIronic(text, lower) {
		return toneIronic
	}

	var positive, aggressive int
	for _, w := range words(lower) {
		if _, ok := positiveWords[w]; ok {
			positive++
		}
		if _, ok := aggressiveWords[w]; ok {
			aggressive++
		}
	}

	switch {
	case aggressive > 0 && aggressive >= positive:
		return toneAggressive
	case positive > 0:
		return tonePositive
	default:
		return toneNeutral
	}
}

func isIronic(text, lower string) bool {
	trimmed := strings.TrimSpace(lower)
	if strings.HasSuffix(trimmed, " /s") || trimmed == "/s" || strings.Contains(lower, " /s ") {
		return true
	}
	for _, p := range ironyPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	for _, e := range ironyEmoji {
		if strings.Contains(text, e) {
			return true
		}
	}
	return quotedPraise(lower)
}

// quotedPraise matches scare-quoted praise such as `"great" job`.
func quotedPraise(lower string) bool {
	parts := strings.Split(lower, `"`)
	for i := 1; i < len(parts)-1; i += 2 {
		if _, ok := positiveWords[strings.TrimSpace(parts[i])]; ok {
			return true
		}
	}
	return false
}

func words(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func wordSet(ws ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		set[w] = struct{}{}
	}
	return set
}
