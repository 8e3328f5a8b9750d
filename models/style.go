// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StyleDescriptor is the behavioral writing-style summary derived from a
// user's recent comments on one platform.
//
// A descriptor is produced fresh on every extraction and only ever leaves
// memory in encrypted form (see [EncryptedProfileRecord]).
type StyleDescriptor struct {
	// AvgLength is the rounded mean comment length in UTF-16 code units.
	AvgLength int `json:"avgLength"`

	// Tone is the distribution of tonal registers across the comments.
	Tone ToneDistribution `json:"tone"`

	// EmojiUsage summarises how often emoji appear in the comments.
	EmojiUsage EmojiUsage `json:"emojiUsage"`

	// Structures holds the rates of structural markers (questions,
	// exclamations, all-caps shouting).
	Structures Structures `json:"structures"`

	// GeneratedAt is the moment the descriptor was computed.
	GeneratedAt time.Time `json:"generatedAt"`
}

// ToneDistribution holds the share of each tonal register. Every value is in
// the [0, 1] range.
type ToneDistribution struct {
	Positive   float64 `json:"positive"`
	Neutral    float64 `json:"neutral"`
	Aggressive float64 `json:"aggressive"`
	Ironic     float64 `json:"ironic"`
}

// EmojiUsage describes emoji frequency.
type EmojiUsage struct {
	// AveragePerComment is the total number of emoji divided by the number
	// of comments.
	AveragePerComment float64 `json:"averagePerComment"`

	// PercentageWithEmojis is the share of comments with at least one emoji,
	// in the [0, 100] range.
	PercentageWithEmojis float64 `json:"percentageWithEmojis"`
}

// Structures holds per-comment structural marker rates in the [0, 1] range.
type Structures struct {
	QuestionRate    float64 `json:"questionRate"`
	ExclamationRate float64 `json:"exclamationRate"`
	CapsLockRate    float64 `json:"capsLockRate"`
}
