package provider

import (
	"context"
	"fmt"
	"strings"

	derr "github.com/ozzus/tours-gateway/internal/domain/errors"
	"github.com/ozzus/tours-gateway/internal/domain/models"
	"github.com/ozzus/tours-gateway/internal/infrastructures/provider/dto"
	"github.com/ozzus/tours-gateway/internal/infrastructures/provider/mappers"
	"go.uber.org/zap"
)

type activityClient interface {
	Search(ctx context.Context, search dto.SearchRequest) (dto.SearchResponse, error)
	GetActivity(ctx context.Context, id string) (dto.RawActivity, error)
}

type Source struct {
	log      *zap.Logger
	client   activityClient
	vendorID string
}

// NewSource builds the gateway. vendorID is injected into every search when
// non-empty.
func NewSource(log *zap.Logger, client activityClient, vendorID string) *Source {
	if log == nil {
		log = zap.NewNop()
	}

	return &Source{
		log:      log,
		client:   client,
		vendorID: strings.TrimSpace(vendorID),
	}
}

func (s *Source) ListTours(ctx context.Context, req models.SearchRequest) (models.ListResult, error) {
	const op = "provider.ListTours"

	req = req.Normalize()
	resp, err := s.client.Search(ctx, s.buildSearch(req))
	if err != nil {
		return models.ListResult{}, fmt.Errorf("%s: search activities: %w", op, err)
	}

	items := make([]models.Tour, 0, len(resp.Results))
	skipped := 0
	for _, raw := range resp.Results {
		tour := mappers.ToTour(raw)
		if tour.ID.IsZero() {
			skipped++
			continue
		}
		items = append(items, tour)
	}
	if skipped > 0 {
		s.log.Debug("skipped activities without identity",
			zap.String("op", op),
			zap.Int("skipped", skipped),
			zap.Int("received", len(resp.Results)),
		)
	}

	total := int64(len(items))
	if resp.Total.Valid {
		total = resp.Total.Int64()
	}

	return models.ListResult{
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
		Items:    items,
	}, nil
}

func (s *Source) GetTour(ctx context.Context, id string) (models.TourDetail, error) {
	const op = "provider.GetTour"

	id = strings.TrimSpace(id)
	if id == "" {
		return models.TourDetail{}, fmt.Errorf("%s: empty id: %w", op, derr.ErrInvalidRequest)
	}

	raw, err := s.client.GetActivity(ctx, id)
	if err != nil {
		return models.TourDetail{}, fmt.Errorf("%s: get activity %q: %w", op, id, err)
	}

	return models.TourDetail{
		Tour: mappers.ToTour(raw),
		Raw:  raw.Raw,
	}, nil
}

func (s *Source) buildSearch(req models.SearchRequest) dto.SearchRequest {
	return dto.SearchRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Query:    req.Query,
		VendorID: dto.VendorID(s.vendorID),
	}
}
