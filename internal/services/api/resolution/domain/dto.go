// Package domain holds DTOs for the resolution http contract
package domain

// ResolveInput is a single resolution request
type ResolveInput struct {
	Text         string `json:"text" validate:"required,max=10000" example:"Hello"`
	SourceLang   string `json:"source_lang,omitempty" validate:"omitempty,lang_code" example:"en"`
	TargetLang   string `json:"target_lang" validate:"required,lang_code" example:"fr"`
	Context      string `json:"context,omitempty" validate:"omitempty,max=500" example:"casual greeting"`
	ForceRefresh bool   `json:"force_refresh,omitempty"`
}

// BatchInput resolves many texts sharing the same languages and options
type BatchInput struct {
	Texts        []string `json:"texts" validate:"required,min=1,max=100,dive,max=10000"`
	SourceLang   string   `json:"source_lang,omitempty" validate:"omitempty,lang_code" example:"en"`
	TargetLang   string   `json:"target_lang" validate:"required,lang_code" example:"fr"`
	Context      string   `json:"context,omitempty" validate:"omitempty,max=500"`
	ForceRefresh bool     `json:"force_refresh,omitempty"`
}

// Resolution is one resolved result
type Resolution struct {
	Input      string  `json:"input"`
	Output     string  `json:"output"`
	SourceLang string  `json:"source_lang,omitempty"`
	TargetLang string  `json:"target_lang"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
	Cached     bool    `json:"cached"`
	ElapsedMS  int64   `json:"elapsed_ms"`
}

// StatsOut is the maintenance snapshot
type StatsOut struct {
	StaticEntries  int64   `json:"static_entries"`
	CacheEntries   int64   `json:"cache_entries"`
	TotalUsage     int64   `json:"total_usage"`
	MeanConfidence float64 `json:"mean_confidence"`
}

// SweepOut reports a sweep run
type SweepOut struct {
	Deleted int64 `json:"deleted"`
}
