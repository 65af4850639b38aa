package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/boddenberg/desking-go/internal/infra/observability"
	"github.com/boddenberg/desking-go/internal/pricing"
	"github.com/boddenberg/desking-go/internal/quote"
)

var tracer = otel.Tracer("service/desking")

// DeskRequest is everything one desk run needs: the deal, the grid shape
// and whether it is priced as a purchase or a lease.
type DeskRequest struct {
	Deal         domain.DealRecord
	Type         domain.DealType
	Rows         []domain.QuoteRow
	DownPayments []decimal.Decimal
}

// QuoteService prices deals and builds payment matrices.
type QuoteService struct {
	engine  *pricing.Engine
	builder *quote.Builder
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewQuoteService creates the quote service with all dependencies injected.
func NewQuoteService(
	engine *pricing.Engine,
	builder *quote.Builder,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		engine:  engine,
		builder: builder,
		metrics: metrics,
		logger:  logger,
	}
}

// Desk prices the deal and computes the full payment grid. An unknown tax
// jurisdiction degrades to an untaxed quote with a warning rather than
// failing the desk.
func (s *QuoteService) Desk(ctx context.Context, req *DeskRequest) (*domain.DeskResult, error) {
	_, span := tracer.Start(ctx, "QuoteService.Desk")
	defer span.End()
	span.SetAttributes(attribute.String("deal.type", string(req.Type)))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("desk", time.Since(start))
	}()

	switch req.Type {
	case domain.DealFinance, domain.DealLease:
	default:
		s.metrics.IncrQuote("error")
		return nil, &domain.ErrValidation{Field: "type", Message: "deal type must be finance or lease"}
	}

	priced := s.engine.Price(&req.Deal)

	var warnings []string
	if !priced.JurisdictionKnown {
		warnings = append(warnings, "no tax rule for jurisdiction "+req.Deal.State+"; sales tax not applied")
		s.logger.Warn("unknown tax jurisdiction, quoting without sales tax",
			zap.String("state", req.Deal.State),
		)
	}

	matrix, err := s.builder.Build(&req.Deal, req.Type, priced, req.Rows, req.DownPayments)
	if err != nil {
		s.metrics.IncrQuote("error")
		return nil, err
	}

	res := &domain.DeskResult{
		QuoteID:  uuid.NewString(),
		Pricing:  priced,
		Matrix:   matrix,
		LTV:      quote.LTV(priced.Balance, req.DownPayments, req.Deal.BookValue),
		Warnings: warnings,
	}

	s.metrics.IncrQuote("success")
	s.logger.Info("deal desked",
		zap.String("quote_id", res.QuoteID),
		zap.String("type", string(req.Type)),
		zap.String("balance", priced.Balance.StringFixed(2)),
		zap.Int("rows", len(matrix.Rows)),
		zap.Int("down_payments", len(matrix.DownPayments)),
	)
	return res, nil
}
