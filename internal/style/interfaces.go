// Package style derives a compact writing-style descriptor from a sequence
// of comment texts. Everything except the tone distribution is a pure
// function of the input; tone is delegated to a ToneClassifier.
package style

//go:generate mockgen -source=interfaces.go -destination=../mock/style_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/style-keeper/models"
)

// ToneClassifier assigns a tone distribution to a set of comments.
// The returned shares are in [0,1] and sum to 1 for a non-empty input.
type ToneClassifier interface {
	Classify(ctx context.Context, comments []string) (models.ToneDistribution, error)
}

// Extractor turns comment texts into a StyleDescriptor.
type Extractor interface {
	Extract(ctx context.Context, comments []string) (models.StyleDescriptor, error)
}
