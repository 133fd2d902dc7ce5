// Package domain holds the resolution types shared by tiers, service, and transport
package domain

import "time"

// Source names the tier that produced a result
type Source string

// resolution sources in tier order, fallback means every tier declined
const (
	SourceStatic     Source = "static"
	SourceCache      Source = "cache"
	SourceGenerative Source = "generative"
	SourceFallback   Source = "fallback"
)

// Request is a single resolution request
// SourceLang may be empty, the service detects it from the text
type Request struct {
	Text         string
	SourceLang   string
	TargetLang   string
	Context      string
	ForceRefresh bool
}

// BatchRequest resolves many texts that share languages and options
type BatchRequest struct {
	Texts        []string
	SourceLang   string
	TargetLang   string
	Context      string
	ForceRefresh bool
}

// Result is what every resolve call returns, errors never surface past the service
type Result struct {
	Input      string
	Output     string
	SourceLang string
	TargetLang string
	Source     Source
	Confidence float64
	Cached     bool
	ElapsedMS  int64
}

// StaticEntry is one admin-managed lookup row
// Key holds the normalized source text the matcher scores against
type StaticEntry struct {
	ID         string
	Key        string
	Output     string
	TargetLang string
	Category   string
	Priority   int
}

// CacheEntry is one persisted resolution row
type CacheEntry struct {
	SourceText string
	SourceLang string
	TargetLang string
	TargetText string
	Confidence float64
	UsageCount int64
	Provider   string
	Model      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ExpiresAt  time.Time
}

// Stats is the read-only maintenance snapshot
type Stats struct {
	StaticEntries  int64
	CacheEntries   int64
	TotalUsage     int64
	MeanConfidence float64
}
