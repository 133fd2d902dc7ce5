package domain

import "context"

// ResolverPort is the resolution contract other modules consume
// ResolveTexts is the convenience form returning only the outputs, index aligned
type ResolverPort interface {
	Resolve(ctx context.Context, req Request) Result
	ResolveBatch(ctx context.Context, req BatchRequest) []Result
	ResolveTexts(ctx context.Context, req BatchRequest) []string
}

// MaintenancePort covers the sweep and stats operations
type MaintenancePort interface {
	Stats(ctx context.Context) (Stats, error)
	SweepExpired(ctx context.Context) (int64, error)
}

// Completer produces a completion for a system prompt and user text
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// Detector guesses a source language when the request omits one
type Detector interface {
	Detect(text string) string
}

// Recorder receives resolution provenance events, implementations must not block
type Recorder interface {
	Record(ctx context.Context, res Result)
}
