package style

import (
	"context"

	"github.com/MKhiriev/style-keeper/models"
)

// InertClassifier reports every input as neutral. It is used when tone
// analysis is disabled.
type InertClassifier struct{}

func (InertClassifier) Classify(_ context.Context, comments []string) (models.ToneDistribution, error) {
	if len(comments) == 0 {
		return models.ToneDistribution{}, nil
	}
	return models.ToneDistribution{Neutral: 1}, nil
}
