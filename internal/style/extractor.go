// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package style

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf16"

	"github.com/MKhiriev/style-keeper/models"
)

// capsMinLength is the length a comment must exceed to count as caps lock;
// shorter all-caps strings are mostly acronyms.
const capsMinLength = 10

type extractor struct {
	tone ToneClassifier
	now  func() time.Time
}

// NewExtractor returns an Extractor that delegates tone to classifier.
func NewExtractor(classifier ToneClassifier) Extractor {
	return newExtractor(classifier, time.Now)
}

func newExtractor(classifier ToneClassifier, now func() time.Time) *extractor {
	return &extractor{tone: classifier, now: now}
}

// Extract computes the descriptor for comments.
//
// An empty input yields the zero descriptor with GeneratedAt set and the
// classifier is not consulted.
func (e *extractor) Extract(ctx context.Context, comments []string) (models.StyleDescriptor, error) {
	descriptor := models.StyleDescriptor{GeneratedAt: e.now().UTC()}

	n := len(comments)
	if n == 0 {
		return descriptor, nil
	}

	var (
		totalLength   int
		totalEmoji    int
		withEmoji     int
		withQuestion  int
		withExclaim   int
		capsLockCount int
	)

	for _, text := range comments {
		length := utf16Length(text)
		totalLength += length

		if emoji := countEmoji(text); emoji > 0 {
			totalEmoji += emoji
			withEmoji++
		}
		if strings.ContainsRune(text, '?') {
			withQuestion++
		}
		if strings.ContainsRune(text, '!') {
			withExclaim++
		}
		if length > capsMinLength && isAllCaps(text) {
			capsLockCount++
		}
	}

	tone, err := e.tone.Classify(ctx, comments)
	if err != nil {
		return models.StyleDescriptor{}, fmt.Errorf("classify tone: %w", err)
	}

	count := float64(n)
	descriptor.AvgLength = int(math.Round(float64(totalLength) / count))
	descriptor.Tone = tone
	descriptor.EmojiUsage = models.EmojiUsage{
		AveragePerComment:    round(float64(totalEmoji)/count, 2),
		PercentageWithEmojis: round(float64(withEmoji)/count*100, 1),
	}
	descriptor.Structures = models.Structures{
		QuestionRate:    round(float64(withQuestion)/count, 2),
		ExclamationRate: round(float64(withExclaim)/count, 2),
		CapsLockRate:    round(float64(capsLockCount)/count, 2),
	}

	return descriptor, nil
}

// utf16Length returns the length of text in UTF-16 code units.
func utf16Length(text string) int {
	n := 0
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// isAllCaps reports whether text is unchanged by upper-casing and carries at
// least one cased letter.
func isAllCaps(text string) bool {
	if strings.ToUpper(text) != text {
		return false
	}
	return strings.IndexFunc(text, unicode.IsUpper) >= 0
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
