package hexdiff

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteEqual(t *testing.T) {
	var out bytes.Buffer
	a := []byte("identical buffers")
	differs, err := Write(&out, a, a, false)
	if err != nil {
		t.Fatal(err)
	}
	if differs {
		t.Errorf("identical buffers reported as differing:\n%s", out.String())
	}
}

func TestWriteChange(t *testing.T) {
	var out bytes.Buffer
	a := []byte{0x00, 0x01, 0x02, 0x03}
	b := []byte{0x00, 0x01, 0xFF, 0x03}
	differs, err := Write(&out, a, b, false)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatalf("change not reported")
	}
	s := out.String()
	if !strings.Contains(s, "ff") {
		t.Errorf("inserted byte not rendered:\n%s", s)
	}
	if !strings.Contains(s, "-") || !strings.Contains(s, "+") {
		t.Errorf("missing delete/insert markers:\n%s", s)
	}
}

func TestGroupHex(t *testing.T) {
	type ghTest struct {
		in, out string
	}
	var ghs = []ghTest{
		{in: "", out: ""},
		{in: "ab", out: "ab"},
		{in: "abcd", out: "ab cd"},
		{in: strings.Repeat("ab", 40), out: strings.TrimSuffix(strings.Repeat("ab ", 32), " ") + " ... +8 bytes"},
	}
	for _, gh := range ghs {
		if got := groupHex(gh.in); got != gh.out {
			t.Errorf("groupHex(%q) got %q want %q", gh.in, got, gh.out)
		}
	}
}
