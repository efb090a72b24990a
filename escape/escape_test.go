package escape_test

import (
	"reflect"
	"testing"

	"github.com/zannabianca1997/ic4/escape"
)

func TestDecodeChar(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"a", 'a'},
		{`\n`, 10},
		{`\t`, 9},
		{`\\`, '\\'},
		{`\'`, '\''},
		{`\x41`, 65},
		{`\101`, 65}, // octal 101 == 65 'A'
		{`\0`, 0},
	}
	for _, c := range cases {
		got, err := escape.DecodeChar(c.in)
		if err != nil {
			t.Fatalf("DecodeChar(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("DecodeChar(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestDecodeCharRejectsMultiple(t *testing.T) {
	if _, err := escape.DecodeChar("ab"); err == nil {
		t.Fatal("expected error for multi-character literal")
	}
}

func TestDecodeString(t *testing.T) {
	got, err := escape.DecodeString(`hello, world `, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{104, 101, 108, 108, 111, 44, 32, 119, 111, 114, 108, 100, 32, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeString = %v, want %v", got, want)
	}
}

func TestDecodeStringNoTerminator(t *testing.T) {
	got, err := escape.DecodeString("AB", false)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int64{65, 66}) {
		t.Errorf("DecodeString = %v", got)
	}
}

func TestDecodeStringInvalidEscape(t *testing.T) {
	if _, err := escape.DecodeString(`hello \k world`, false); err == nil {
		t.Fatal("expected error for invalid escape")
	}
}
