package similarity

import (
	"math"
	"testing"
)

func setOf(toks ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(toks))
	for _, t := range toks {
		s[t] = struct{}{}
	}
	return s
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]struct{}
		want float64
	}{
		{"identical", setOf("hello", "world"), setOf("hello", "world"), 1},
		{"disjoint", setOf("hello"), setOf("bonjour"), 0},
		{"half overlap", setOf("good", "morning"), setOf("good", "evening"), 1.0 / 3.0},
		{"empty a", nil, setOf("x"), 0},
		{"empty b", setOf("x"), nil, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Jaccard(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Jaccard = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatch_ExactHit(t *testing.T) {
	m := New()
	cands := []Candidate{
		{Key: "hello", Priority: 0},
		{Key: "good morning", Priority: 0},
	}
	best, score, ok := m.Match("Hello", cands)
	if !ok {
		t.Fatal("expected a match")
	}
	if best != 0 {
		t.Fatalf("best = %d, want 0", best)
	}
	if math.Abs(score-1.0) > 1e-9 {
		t.Fatalf("score = %v, want 1.0", score)
	}
}

func TestMatch_BelowThresholdMisses(t *testing.T) {
	m := New()
	cands := []Candidate{{Key: "good morning everyone today"}}
	if _, _, ok := m.Match("good night", cands); ok {
		t.Fatal("expected miss below threshold")
	}
}

func TestMatch_PriorityBreaksTies(t *testing.T) {
	m := New()
	cands := []Candidate{
		{Key: "hello", Priority: 0},
		{Key: "hello", Priority: 2},
	}
	best, score, ok := m.Match("hello", cands)
	if !ok || best != 1 {
		t.Fatalf("best = %d ok=%v, want priority winner 1", best, ok)
	}
	if math.Abs(score-1.2) > 1e-9 {
		t.Fatalf("score = %v, want 1.2", score)
	}
}

func TestMatch_PriorityCannotRescueNoOverlap(t *testing.T) {
	m := New()
	cands := []Candidate{{Key: "bonjour", Priority: 9}}
	if _, _, ok := m.Match("hello", cands); ok {
		t.Fatal("zero overlap must never match regardless of priority")
	}
}

func TestMatch_EmptyInputs(t *testing.T) {
	m := New()
	if _, _, ok := m.Match("", []Candidate{{Key: "hello"}}); ok {
		t.Fatal("empty input must miss")
	}
	if _, _, ok := m.Match("hello", nil); ok {
		t.Fatal("no candidates must miss")
	}
}

func TestMatch_NormalizesInput(t *testing.T) {
	m := New()
	cands := []Candidate{{Key: "thank you"}}
	if _, _, ok := m.Match("  THANK\tYOU ", cands); !ok {
		t.Fatal("expected match after normalization")
	}
}

func TestWithThreshold(t *testing.T) {
	m := New(WithThreshold(0.2))
	if m.Threshold() != 0.2 {
		t.Fatalf("threshold = %v", m.Threshold())
	}
	cands := []Candidate{{Key: "good morning everyone"}}
	if _, _, ok := m.Match("good night", cands); !ok {
		t.Fatal("expected match with lowered threshold")
	}
	// threshold is exclusive: a score equal to it misses
	me := New(WithThreshold(1.0))
	if _, _, ok := me.Match("hello", []Candidate{{Key: "hello"}}); ok {
		t.Fatal("score equal to threshold must miss")
	}
}
