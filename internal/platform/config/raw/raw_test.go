package raw

import "testing"

func TestGet_DefaultAndTrim(t *testing.T) {
	t.Setenv("RAWTEST_NAME", "  bonjour  ")

	c := New().Prefix("RAWTEST_")
	if got := c.Get("NAME", "x"); got != "bonjour" {
		t.Fatalf("Get trimmed = %q, want %q", got, "bonjour")
	}
	if got := c.Get("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("Get default = %q, want %q", got, "fallback")
	}
}

func TestGetBool(t *testing.T) {
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"no", true, false},
		{"0", true, false},
		{"", true, true},
	}
	for _, tc := range cases {
		t.Setenv("RAWTEST_FLAG", tc.val)
		c := New().Prefix("RAWTEST_")
		if got := c.GetBool("FLAG", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, def=%v) = %v, want %v", tc.val, tc.def, got, tc.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	cases := []struct {
		val  string
		want int
	}{
		{"42", 42},
		{"0", 0},
		{"", 7},
		{"-3", 7},
		{"abc", 7},
	}
	for _, tc := range cases {
		t.Setenv("RAWTEST_N", tc.val)
		c := New().Prefix("RAWTEST_")
		if got := c.GetInt("N", 7); got != tc.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tc.val, got, tc.want)
		}
	}
}
