package domain

// DeskMetrics is the operational snapshot served by GET /v1/metrics/desk.
type DeskMetrics struct {
	TotalQuotes          int64   `json:"total_quotes"`
	QuoteErrorRate       float64 `json:"quote_error_rate"`
	TotalDocuments       int64   `json:"total_documents"`
	DocumentErrorRate    float64 `json:"document_error_rate"`
	TemplateCacheHitRate float64 `json:"template_cache_hit_rate"`
	Period               string  `json:"period"`
}
