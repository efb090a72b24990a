package version_test

import (
	"testing"

	"github.com/zannabianca1997/ic4/version"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want version.Version
	}{
		{"0.1", version.Version{Major: 0, Minor: 1}},
		{"1.2.3", version.Version{Major: 1, Minor: 2, Patch: 3}},
		{"1.2.3_beta", version.Version{Major: 1, Minor: 2, Patch: 3, Extra: "beta"}},
		{"1.2_beta", version.Version{Major: 1, Minor: 2, Extra: "beta"}},
	}
	for _, c := range cases {
		got, err := version.Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"1", "1.2.3.4", "a.b", ""} {
		if _, err := version.Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestCompare(t *testing.T) {
	a, _ := version.Parse("0.1")
	b, _ := version.Parse("0.2")
	c, _ := version.Parse("0.1.0_other")
	if version.Compare(a, b) >= 0 {
		t.Error("0.1 should be < 0.2")
	}
	if version.Compare(b, a) <= 0 {
		t.Error("0.2 should be > 0.1")
	}
	if !version.Equal(a, c) {
		t.Error("0.1 should equal 0.1.0_other (extra does not order)")
	}
}
