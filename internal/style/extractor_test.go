// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package style

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/style-keeper/internal/mock"
	"github.com/MKhiriev/style-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestExtractor(classifier ToneClassifier) *extractor {
	return newExtractor(classifier, func() time.Time { return fixedNow })
}

func TestExtract_ReferenceScenario(t *testing.T) {
	e := newTestExtractor(InertClassifier{})

	d, err := e.Extract(context.Background(), []string{
		"Hi?",
		"Wow!",
		"HELLO THERE FRIEND",
		"plain",
		"😀😀 fun",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.2, d.Structures.QuestionRate)
	assert.Equal(t, 0.2, d.Structures.ExclamationRate)
	assert.Equal(t, 0.2, d.Structures.CapsLockRate)
	assert.Equal(t, 20.0, d.EmojiUsage.PercentageWithEmojis)
	assert.Equal(t, 0.4, d.EmojiUsage.AveragePerComment)
	// 3 + 4 + 18 + 5 + 8 UTF-16 units over 5 comments
	assert.Equal(t, 8, d.AvgLength)
	assert.Equal(t, models.ToneDistribution{Neutral: 1}, d.Tone)
	assert.Equal(t, fixedNow, d.GeneratedAt)
}

func TestExtract_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	classifier := mock.NewMockToneClassifier(ctrl)
	classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Times(0)

	d, err := newTestExtractor(classifier).Extract(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, models.StyleDescriptor{GeneratedAt: fixedNow}, d)
}

func TestExtract_CapsLock(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "long all caps", text: "THIS IS LOUD", want: 1},
		{name: "exactly ten characters", text: "ABCDEFGHIJ", want: 0},
		{name: "eleven characters", text: "ABCDEFGHIJK", want: 1},
		{name: "acronym", text: "NASA", want: 0},
		{name: "mixed case", text: "This Is Not Loud", want: 0},
		{name: "no letters", text: "!!!!!!!!!!!!!!!", want: 0},
		{name: "caps with digits", text: "GOAL IN 90 MINUTES", want: 1},
		{name: "non latin caps", text: "ПРИВЕТ ВСЕМ ДРУЗЬЯ", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := newTestExtractor(InertClassifier{}).Extract(context.Background(), []string{tt.text})
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Structures.CapsLockRate)
		})
	}
}

func TestExtract_EmojiCounting(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "none", text: "hello", want: 0},
		{name: "emoticon", text: "ok 😀", want: 1},
		{name: "pictograph", text: "🌍", want: 1},
		{name: "transport", text: "🚀🚀🚀", want: 3},
		{name: "flag is two regional indicators", text: "🇪🇸", want: 2},
		{name: "misc symbol", text: "☀ day", want: 1},
		{name: "dingbat", text: "✅", want: 1},
		{name: "outside counted blocks", text: "🤖", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countEmoji(tt.text))
		})
	}
}

func TestExtract_Rounding(t *testing.T) {
	comments := []string{"a?", "b", "c"}

	d, err := newTestExtractor(InertClassifier{}).Extract(context.Background(), comments)
	require.NoError(t, err)

	assert.Equal(t, 0.33, d.Structures.QuestionRate)
	assert.Equal(t, 0.0, d.EmojiUsage.PercentageWithEmojis)
}

func TestExtract_PercentageRoundedToOneDecimal(t *testing.T) {
	comments := []string{"😀", "a", "b"}

	d, err := newTestExtractor(InertClassifier{}).Extract(context.Background(), comments)
	require.NoError(t, err)

	assert.Equal(t, 33.3, d.EmojiUsage.PercentageWithEmojis)
	assert.Equal(t, 0.33, d.EmojiUsage.AveragePerComment)
}

func TestExtract_RatesWithinBounds(t *testing.T) {
	comments := make([]string, 0, 120)
	for i := 0; i < 120; i++ {
		comments = append(comments, strings.Repeat("WHAT?! 😀 ", i%4+1))
	}

	d, err := newTestExtractor(NewLexiconClassifier()).Extract(context.Background(), comments)
	require.NoError(t, err)

	for _, v := range []float64{
		d.Structures.QuestionRate, d.Structures.ExclamationRate, d.Structures.CapsLockRate,
		d.Tone.Positive, d.Tone.Neutral, d.Tone.Aggressive, d.Tone.Ironic,
	} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.GreaterOrEqual(t, d.EmojiUsage.PercentageWithEmojis, 0.0)
	assert.LessOrEqual(t, d.EmojiUsage.PercentageWithEmojis, 100.0)
}

func TestExtract_DeterministicApartFromTone(t *testing.T) {
	comments := []string{"first!", "second?", "😀"}
	e := newTestExtractor(InertClassifier{})

	a, err := e.Extract(context.Background(), comments)
	require.NoError(t, err)
	b, err := e.Extract(context.Background(), comments)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestExtract_ClassifierFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	classifier := mock.NewMockToneClassifier(ctrl)

	wantErr := errors.New("classifier unavailable")
	classifier.EXPECT().
		Classify(gomock.Any(), []string{"hello"}).
		Return(models.ToneDistribution{}, wantErr)

	_, err := newTestExtractor(classifier).Extract(context.Background(), []string{"hello"})
	assert.ErrorIs(t, err, wantErr)
}

func TestExtract_UsesClassifierResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	classifier := mock.NewMockToneClassifier(ctrl)

	tone := models.ToneDistribution{Positive: 0.5, Neutral: 0.5}
	classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(tone, nil)

	d, err := newTestExtractor(classifier).Extract(context.Background(), []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, tone, d.Tone)
}

func TestUTF16Length(t *testing.T) {
	assert.Equal(t, 0, utf16Length(""))
	assert.Equal(t, 5, utf16Length("hello"))
	assert.Equal(t, 2, utf16Length("😀"))
	assert.Equal(t, 4, utf16Length("año!"))
}
