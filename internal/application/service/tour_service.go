package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	derr "github.com/ozzus/tours-gateway/internal/domain/errors"
	"github.com/ozzus/tours-gateway/internal/domain/models"
	"github.com/ozzus/tours-gateway/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type TourService struct {
	log      *zap.Logger
	source   ports.TourSource
	validate *validator.Validate
}

func NewTourService(log *zap.Logger, source ports.TourSource) *TourService {
	if log == nil {
		log = zap.NewNop()
	}

	return &TourService{
		log:      log,
		source:   source,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *TourService) ListTours(ctx context.Context, req models.SearchRequest) (models.ListResult, error) {
	const op = "service.ListTours"
	ctx, span := otel.Tracer("tours-gateway/service").Start(ctx, op)
	defer span.End()

	req = req.Normalize()
	span.SetAttributes(
		attribute.Int("tours.page", req.Page),
		attribute.Int("tours.page_size", req.PageSize),
		attribute.Bool("tours.has_query", req.Query != ""),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.Int("page", req.Page),
		zap.Int("page_size", req.PageSize),
	)

	if err := s.validate.Struct(req); err != nil {
		logger.Warn("invalid search request", zap.Error(err))
		span.SetStatus(otelcodes.Error, "invalid search request")
		return models.ListResult{}, fmt.Errorf("%s: %w: %v", op, derr.ErrInvalidRequest, err)
	}

	result, err := s.source.ListTours(ctx, req)
	if err != nil {
		logger.Warn("list tours failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "list tours failed")
		return models.ListResult{}, fmt.Errorf("%s: %w", op, err)
	}

	span.SetAttributes(
		attribute.Int("tours.items", len(result.Items)),
		attribute.Int64("tours.total", result.Total),
	)
	logger.Debug("tours listed", zap.Int("items", len(result.Items)), zap.Int64("total", result.Total))
	return result, nil
}

func (s *TourService) GetTour(ctx context.Context, id string) (models.TourDetail, error) {
	const op = "service.GetTour"
	ctx, span := otel.Tracer("tours-gateway/service").Start(ctx, op)
	defer span.End()

	id = strings.TrimSpace(id)
	span.SetAttributes(attribute.String("tours.id", id))

	logger := s.log.With(
		zap.String("op", op),
		zap.String("tour_id", id),
	)

	if id == "" {
		span.SetStatus(otelcodes.Error, "empty id")
		return models.TourDetail{}, fmt.Errorf("%s: empty id: %w", op, derr.ErrInvalidRequest)
	}

	detail, err := s.source.GetTour(ctx, id)
	if err != nil {
		logger.Warn("get tour failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "get tour failed")
		return models.TourDetail{}, fmt.Errorf("%s: %w", op, err)
	}

	return detail, nil
}
