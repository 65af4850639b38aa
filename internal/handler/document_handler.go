package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/boddenberg/desking-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// 2. Documents — POST /v1/documents/{kind}
// ============================================================

func documentHandler(svc *service.DocumentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/documents/{kind}")
		defer span.End()

		kind, err := domain.ParseDocumentKind(chi.URLParam(r, "kind"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		span.SetAttributes(attribute.String("document.kind", string(kind)))

		var body deskRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if body.Type == "" {
			body.Type = string(domain.DealFinance)
		}

		doc, err := svc.Generate(ctx, kind, body.toServiceRequest())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(doc.Bytes)))
		w.WriteHeader(http.StatusOK)
		w.Write(doc.Bytes)
	}
}

// documentKindsHandler lists the document kinds the service can render.
func documentKindsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"kinds": domain.DocumentKinds()})
	}
}
