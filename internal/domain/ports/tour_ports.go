package ports

import (
	"context"

	"github.com/ozzus/tours-gateway/internal/domain/models"
)

// TourSource is the upstream gateway: one provider call per method.
type TourSource interface {
	ListTours(ctx context.Context, req models.SearchRequest) (models.ListResult, error)
	GetTour(ctx context.Context, id string) (models.TourDetail, error)
}
