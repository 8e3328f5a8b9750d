package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/style-keeper/internal/config"
	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/MKhiriev/style-keeper/internal/utils"
	"github.com/MKhiriev/style-keeper/models"
)

const (
	userPlanPath       = "/internal/users/{userID}/plan"
	recentCommentsPath = "/internal/platforms/{platform}/accounts/{accountRef}/comments"

	// recentCommentsLimit is the number of comments requested per fetch.
	recentCommentsLimit = 100
)

type planResponse struct {
	Plan models.Plan `json:"plan"`
}

type commentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

// httpPlanProvider is the HTTP/REST implementation of [PlanProvider].
type httpPlanProvider struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPPlanProvider constructs a [PlanProvider] for the billing service at
// cfg.PlansAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPPlanProvider(cfg config.Adapter, logger *logger.Logger) (PlanProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.PlansAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid plans address: %w", err)
	}

	return &httpPlanProvider{
		client: utils.NewServiceHTTPClient(baseURL, cfg.RequestTimeout, cfg.ServiceToken),
		logger: logger,
	}, nil
}

// GetUserPlan implements [PlanProvider].
func (p *httpPlanProvider) GetUserPlan(ctx context.Context, userID string) (models.Plan, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("userID", userID).
		Get(userPlanPath)
	if err != nil {
		return "", fmt.Errorf("%w: plan request: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var pr planResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return "", fmt.Errorf("%w: decode plan response: %w", ErrUpstream, err)
	}

	switch pr.Plan {
	case models.PlanFree, models.PlanStarter, models.PlanPro, models.PlanPlus:
		return pr.Plan, nil
	default:
		return "", fmt.Errorf("%w: %w: %q", ErrUpstream, ErrUnknownPlan, pr.Plan)
	}
}

// httpCommentFetcher is the HTTP/REST implementation of [CommentFetcher].
type httpCommentFetcher struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCommentFetcher constructs a [CommentFetcher] for the integrations
// service at cfg.CommentsAddress.
func NewHTTPCommentFetcher(cfg config.Adapter, logger *logger.Logger) (CommentFetcher, error) {
	baseURL, err := normalizeBaseURL(cfg.CommentsAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid comments address: %w", err)
	}

	return &httpCommentFetcher{
		client: utils.NewServiceHTTPClient(baseURL, cfg.RequestTimeout, cfg.ServiceToken),
		logger: logger,
	}, nil
}

// FetchRecentComments implements [CommentFetcher]. Self-generated content is
// excluded upstream via the exclude_self_generated query parameter.
func (f *httpCommentFetcher) FetchRecentComments(ctx context.Context, platform, accountRef string) ([]models.Comment, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"platform":   platform,
			"accountRef": accountRef,
		}).
		SetQueryParams(map[string]string{
			"limit":                  strconv.Itoa(recentCommentsLimit),
			"exclude_self_generated": "true",
		}).
		Get(recentCommentsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: comments request: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cr commentsResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return nil, fmt.Errorf("%w: decode comments response: %w", ErrUpstream, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*httpCommentFetcher.FetchRecentComments").
		Str("platform", platform).
		Int("count", len(cr.Comments)).
		Msg("comments fetched")

	return cr.Comments, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
