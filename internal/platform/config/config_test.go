package config

import (
	"testing"
	"time"

	"lingo/internal/platform/testkit"
)

func TestPrefix_Composes(t *testing.T) {
	t.Setenv("A_B_KEY", "v")
	c := New().Prefix("A_").Prefix("B_")
	if got := c.MayString("KEY", ""); got != "v" {
		t.Fatalf("prefixed lookup = %q, want %q", got, "v")
	}
}

func TestMustString(t *testing.T) {
	t.Setenv("CFG_NAME", "lingo")
	c := New().Prefix("CFG_")
	if got := c.MustString("NAME"); got != "lingo" {
		t.Fatalf("MustString = %q, want %q", got, "lingo")
	}
	testkit.MustPanic(t, func() { c.MustString("ABSENT") })
}

func TestMustPort(t *testing.T) {
	t.Setenv("CFG_PORT", "4000")
	c := New().Prefix("CFG_")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q, want %q", got, ":4000")
	}

	t.Setenv("CFG_PORT", "70000")
	testkit.MustPanic(t, func() { c.MustPort("PORT") })
}

func TestMayGetters_Defaults(t *testing.T) {
	c := New().Prefix("CFG_ABSENT_")

	if got := c.MayString("S", "d"); got != "d" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("I", 9); got != 9 {
		t.Fatalf("MayInt default = %d", got)
	}
	if got := c.MayFloat64("F", 0.7); got != 0.7 {
		t.Fatalf("MayFloat64 default = %v", got)
	}
	if got := c.MayBool("B", true); got != true {
		t.Fatalf("MayBool default = %v", got)
	}
	if got := c.MayDuration("D", time.Second); got != time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
}

func TestMayGetters_ParseAndInvalid(t *testing.T) {
	t.Setenv("CFG_I", "12")
	t.Setenv("CFG_F", "0.85")
	t.Setenv("CFG_B", "true")
	t.Setenv("CFG_D", "250ms")
	t.Setenv("CFG_BAD", "zzz")

	c := New().Prefix("CFG_")
	if got := c.MayInt("I", 0); got != 12 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayFloat64("F", 0); got != 0.85 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	if got := c.MayBool("B", false); !got {
		t.Fatalf("MayBool = %v", got)
	}
	if got := c.MayDuration("D", 0); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	// invalid values fall back to defaults rather than panicking
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration invalid = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	t.Setenv("CFG_LANGS", " fr , es ,, de ")
	c := New().Prefix("CFG_")
	got := c.MayCSV("LANGS", nil)
	want := []string{"fr", "es", "de"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := c.MayCSV("ABSENT", []string{"en"}); len(got) != 1 || got[0] != "en" {
		t.Fatalf("MayCSV default = %v", got)
	}
}
