package service

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/boddenberg/desking-go/internal/compose"
	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/boddenberg/desking-go/internal/infra/observability"
	"github.com/boddenberg/desking-go/internal/infra/resilience"
	"github.com/boddenberg/desking-go/internal/port"
)

// DocumentService desks a deal and renders the requested paperwork.
type DocumentService struct {
	quotes    *QuoteService
	composer  *compose.Composer
	templates port.TemplateStore
	filler    port.FormFiller
	sheet     port.QuoteSheetRenderer
	bulkhead  *resilience.Bulkhead
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewDocumentService creates the document service with all dependencies injected.
func NewDocumentService(
	quotes *QuoteService,
	composer *compose.Composer,
	templates port.TemplateStore,
	filler port.FormFiller,
	sheet port.QuoteSheetRenderer,
	bulkhead *resilience.Bulkhead,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		quotes:    quotes,
		composer:  composer,
		templates: templates,
		filler:    filler,
		sheet:     sheet,
		bulkhead:  bulkhead,
		metrics:   metrics,
		logger:    logger,
	}
}

// Generate desks the deal, composes the field values for the requested
// document kind and renders the PDF. Rendering is bulkhead-bounded; the
// desk and composition run unbounded since they are cheap.
func (s *DocumentService) Generate(ctx context.Context, kind domain.DocumentKind, req *DeskRequest) (*domain.Document, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Generate")
	defer span.End()
	span.SetAttributes(attribute.String("document.kind", string(kind)))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("document_"+string(kind), time.Since(start))
	}()

	res, err := s.quotes.Desk(ctx, req)
	if err != nil {
		s.metrics.IncrDocument(string(kind), "error")
		return nil, err
	}

	raw, err := s.renderKind(ctx, kind, &req.Deal, res)
	if err != nil {
		s.metrics.IncrDocument(string(kind), "error")
		s.logger.Error("document generation failed",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return nil, &domain.ErrDocumentGeneration{Kind: kind, Err: err}
	}

	doc := &domain.Document{
		Kind:     kind,
		Filename: Filename(kind, req.Deal.Customer),
		Bytes:    raw,
	}
	s.metrics.IncrDocument(string(kind), "success")
	s.logger.Info("document generated",
		zap.String("kind", string(kind)),
		zap.String("filename", doc.Filename),
		zap.Int("bytes", len(raw)),
	)
	return doc, nil
}

func (s *DocumentService) renderKind(ctx context.Context, kind domain.DocumentKind, deal *domain.DealRecord, res *domain.DeskResult) ([]byte, error) {
	switch kind {
	case domain.DocQuoteSheet:
		fields, err := s.composer.Compose(kind, deal, res)
		if err != nil {
			return nil, err
		}
		if err := s.bulkhead.Acquire(ctx); err != nil {
			return nil, err
		}
		defer s.bulkhead.Release()
		return s.sheet.Render(fields, res)

	case domain.DocFIPackage:
		return s.renderPackage(ctx, deal, res)

	default:
		fields, err := s.composer.Compose(kind, deal, res)
		if err != nil {
			return nil, err
		}
		if err := s.bulkhead.Acquire(ctx); err != nil {
			return nil, err
		}
		defer s.bulkhead.Release()
		return s.filler.Fill(ctx, string(kind), fields)
	}
}

// renderPackage builds the multi-form F&I packet. Templates are prefetched
// concurrently so a missing layout fails before a render slot is taken.
func (s *DocumentService) renderPackage(ctx context.Context, deal *domain.DealRecord, res *domain.DeskResult) ([]byte, error) {
	parts, err := s.composer.Package(deal, res)
	if err != nil {
		return nil, err
	}

	g, _ := errgroup.WithContext(ctx)
	for _, part := range parts {
		id := part.TemplateID
		g.Go(func() error {
			_, err := s.templates.Get(id)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]string, len(parts))
	fields := make([]domain.FieldMap, len(parts))
	for i, part := range parts {
		ids[i] = part.TemplateID
		fields[i] = part.Fields
	}

	if err := s.bulkhead.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.bulkhead.Release()
	return s.filler.FillPackage(ctx, ids, fields)
}

// filenameSuffix maps each kind to its download suffix.
var filenameSuffix = map[domain.DocumentKind]string{
	domain.DocBillOfSale:       "BOS",
	domain.DocTitleApplication: "Title",
	domain.DocOdometer:         "Odometer",
	domain.DocPrivacyNotice:    "Privacy",
	domain.DocFIPackage:        "FIDocs",
}

// Filename derives the download name from the customer. The quote sheet
// keeps the customer's full name; form downloads condense the first two
// words of it, lowercased.
func Filename(kind domain.DocumentKind, customer string) string {
	customer = strings.TrimSpace(customer)
	if kind == domain.DocQuoteSheet {
		if customer == "" {
			return "quote.pdf"
		}
		return customer + ".pdf"
	}

	prefix := condenseName(customer)
	if prefix == "" {
		prefix = "deal"
	}
	return prefix + filenameSuffix[kind] + ".pdf"
}

func condenseName(customer string) string {
	words := strings.Fields(customer)
	if len(words) >= 2 {
		return strings.ToLower(words[0] + words[1])
	}
	return strings.ToLower(strings.ReplaceAll(customer, " ", ""))
}
