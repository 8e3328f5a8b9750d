package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/style-keeper/models"
)

var (
	// ErrValidation is returned when required identifiers are missing or
	// malformed. Nothing is fetched, decrypted or written.
	ErrValidation = errors.New("invalid style profile request")

	// ErrPlanRestricted is matched by *PlanRestrictionError.
	ErrPlanRestricted = errors.New("style profiles are not available on the current plan")

	// ErrInsufficientData is matched by *InsufficientDataError.
	ErrInsufficientData = errors.New("not enough comments to build a style profile")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)

// PlanRestrictionError reports a user whose plan does not include style
// profiles.
type PlanRestrictionError struct {
	Plan models.Plan
}

func (e *PlanRestrictionError) Error() string {
	return fmt.Sprintf("style profiles require a pro or plus plan, current plan is %q", e.Plan)
}

func (e *PlanRestrictionError) Is(target error) bool {
	return target == ErrPlanRestricted
}

// InsufficientDataError reports how many comments were available against the
// minimum sample size.
type InsufficientDataError struct {
	Actual   int
	Required int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("not enough comments to build a style profile: got %d, need at least %d", e.Actual, e.Required)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}
