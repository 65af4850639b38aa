// Package render turns composed field values into PDF bytes: positioned
// form fills for the state and store forms, and a drawn layout for the
// quote sheet.
package render

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/boddenberg/desking-go/internal/infra/observability"
	"github.com/boddenberg/desking-go/internal/infra/resilience"
	"github.com/boddenberg/desking-go/internal/port"
)

// TemplateStore loads form templates from a directory of JSON layout
// files, one file per template ID. Loads go through a TTL cache so the
// per-document disk read disappears under load. Disk reads are retried
// with backoff since the template directory is a mounted volume in
// deployment.
type TemplateStore struct {
	dir     string
	cache   port.Cache[domain.FormTemplate]
	cfg     resilience.Config
	metrics *observability.Metrics
}

func NewTemplateStore(dir string, cache port.Cache[domain.FormTemplate], cfg resilience.Config, metrics *observability.Metrics) *TemplateStore {
	return &TemplateStore{dir: dir, cache: cache, cfg: cfg, metrics: metrics}
}

// Get returns the template for id, from cache when fresh.
func (s *TemplateStore) Get(id string) (domain.FormTemplate, error) {
	if id == "" || strings.ContainsAny(id, `/\.`) {
		return domain.FormTemplate{}, &domain.ErrValidation{Field: "template_id", Message: "invalid template id"}
	}

	if tpl, ok := s.cache.Get(id); ok {
		s.metrics.IncrCacheHit("template")
		return tpl, nil
	}
	s.metrics.IncrCacheMiss("template")

	path := filepath.Join(s.dir, id+".json")
	var raw []byte
	err := resilience.RetryWithBackoff(context.Background(), s.cfg, func() error {
		var readErr error
		raw, readErr = os.ReadFile(path)
		if os.IsNotExist(readErr) {
			// a missing file will not appear on retry
			return nil
		}
		return readErr
	})
	if err != nil {
		return domain.FormTemplate{}, fmt.Errorf("read template %s: %w", id, err)
	}
	if raw == nil {
		return domain.FormTemplate{}, &domain.ErrTemplateNotFound{TemplateID: id}
	}

	var tpl domain.FormTemplate
	if err := json.Unmarshal(raw, &tpl); err != nil {
		return domain.FormTemplate{}, fmt.Errorf("parse template %s: %w", id, err)
	}
	if tpl.ID == "" {
		tpl.ID = id
	}
	if tpl.Pages <= 0 {
		tpl.Pages = 1
	}

	s.cache.Set(id, tpl)
	return tpl, nil
}
