package handler

import (
	"encoding/json"
	"net/http"

	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/boddenberg/desking-go/internal/service"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

// ============================================================
// 1. Quotes — POST /v1/quotes
// ============================================================

// quoteRowBody is one row of the requested payment grid. Rates and residuals
// arrive as percentages the way a desk manager writes them (14.0, 55.0) and
// are converted to fractions before pricing.
type quoteRowBody struct {
	TermMonths      int             `json:"term_months"`
	APRPercent      decimal.Decimal `json:"apr_percent"`
	ResidualPercent decimal.Decimal `json:"residual_percent,omitempty"`
	MoneyFactor     decimal.Decimal `json:"money_factor,omitempty"`
}

type deskRequestBody struct {
	Deal         domain.DealRecord `json:"deal"`
	Type         string            `json:"type"`
	Rows         []quoteRowBody    `json:"rows"`
	DownPayments []decimal.Decimal `json:"down_payments"`
}

// toServiceRequest converts wire percentages into the fractional rates the
// calculators expect. Lease rows carry a money factor instead of an APR; when
// both are present the money factor wins.
func (b *deskRequestBody) toServiceRequest() *service.DeskRequest {
	rows := make([]domain.QuoteRow, len(b.Rows))
	for i, r := range b.Rows {
		rate := r.APRPercent.Div(hundred)
		if !r.MoneyFactor.IsZero() {
			rate = r.MoneyFactor
		}
		rows[i] = domain.QuoteRow{
			TermMonths: r.TermMonths,
			Rate:       rate,
			Residual:   r.ResidualPercent.Div(hundred),
		}
	}
	return &service.DeskRequest{
		Deal:         b.Deal,
		Type:         domain.DealType(b.Type),
		Rows:         rows,
		DownPayments: b.DownPayments,
	}
}

func deskHandler(svc *service.QuoteService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/quotes")
		defer span.End()

		var body deskRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if body.Type == "" {
			body.Type = string(domain.DealFinance)
		}
		span.SetAttributes(
			attribute.String("deal.type", body.Type),
			attribute.String("deal.dealer", body.Deal.Dealer),
		)

		result, err := svc.Desk(ctx, body.toServiceRequest())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
