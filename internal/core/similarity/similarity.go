// Package similarity scores candidate entries against an input phrase
// pure and deterministic, no I/O
package similarity

import (
	"strings"

	"lingo/internal/core/normalize"
)

// DefaultThreshold is the combined score a candidate must exceed to match
const DefaultThreshold = 0.7

// Candidate is one scorable entry
// Key should already be in normalized form, Priority is a small admin-assigned
// integer that nudges preferred entries ahead of near-ties
type Candidate struct {
	Key      string
	Priority int
}

// Matcher scores candidates with Jaccard token overlap plus a priority bonus
type Matcher struct {
	threshold float64
	norm      *normalize.Normalizer
}

// Option tweaks a Matcher
type Option func(*Matcher)

// WithThreshold overrides the match threshold
func WithThreshold(th float64) Option {
	return func(m *Matcher) {
		if th > 0 {
			m.threshold = th
		}
	}
}

// New constructs a Matcher
func New(opts ...Option) *Matcher {
	m := &Matcher{threshold: DefaultThreshold, norm: normalize.New()}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Threshold reports the configured match threshold
func (m *Matcher) Threshold() float64 { return m.threshold }

// Match returns the index and combined score of the best candidate whose
// score clears the threshold, ok=false when nothing does
// combined score = jaccard(input, key) + priority/10
func (m *Matcher) Match(input string, candidates []Candidate) (best int, score float64, ok bool) {
	in := tokens(m.norm.Normalize(input))
	if len(in) == 0 || len(candidates) == 0 {
		return -1, 0, false
	}

	best = -1
	for i, c := range candidates {
		s := Jaccard(in, tokens(c.Key))
		if s == 0 {
			continue
		}
		s += float64(c.Priority) / 10
		if s > score {
			best, score = i, s
		}
	}
	if best < 0 || score <= m.threshold {
		return -1, 0, false
	}
	return best, score, true
}

// Jaccard computes intersection over union for two token sets
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	inter := 0
	for tok := range small {
		if _, ok := large[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func tokens(s string) map[string]struct{} {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
