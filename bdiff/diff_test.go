package bdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// replay rebuilds the target from source and ops, checking the op
// invariants along the way: ascending contiguous offsets and lengths
// summing to the target length.
func replay(t *testing.T, source []byte, ops []Op, targetLen int) []byte {
	t.Helper()
	out := make([]byte, 0, targetLen)
	for i, op := range ops {
		if int(op.Offset) != len(out) {
			t.Fatalf("op %d: offset %d, want %d", i, op.Offset, len(out))
		}
		if op.Len() == 0 {
			t.Fatalf("op %d: zero length", i)
		}
		switch op.Kind {
		case Literal:
			out = append(out, op.Bytes...)
		case Run:
			for j := uint32(0); j < op.Length; j++ {
				out = append(out, op.Value)
			}
		case SourceCopy:
			if int(op.From+op.Length) > len(source) {
				t.Fatalf("op %d: source copy out of range", i)
			}
			out = append(out, source[op.From:op.From+op.Length]...)
		case TargetCopy:
			if int(op.From) >= len(out) {
				t.Fatalf("op %d: target copy ahead of output", i)
			}
			for j := uint32(0); j < op.Length; j++ {
				out = append(out, out[op.From+uint32(j)])
			}
		default:
			t.Fatalf("op %d: bad kind %v", i, op.Kind)
		}
	}
	if len(out) != targetLen {
		t.Fatalf("ops produce %d bytes, want %d", len(out), targetLen)
	}
	return out
}

type diffTest struct {
	name   string
	source []byte
	target []byte
}

func TestDiffReplay(t *testing.T) {
	var dts = []diffTest{
		{name: "both empty"},
		{name: "empty source", target: []byte("hello")},
		{name: "empty target", source: []byte("hello")},
		{name: "identical", source: []byte("the same bytes"), target: []byte("the same bytes")},
		{name: "run target", source: bytes.Repeat([]byte{0}, 8), target: bytes.Repeat([]byte{1}, 8)},
		{name: "tail change", source: []byte("abcdefghijklmnop"), target: []byte("abcdefghijklmnXY")},
		{name: "grow", source: []byte("abc"), target: []byte("abcdefghijklmnopqrstuvwxyz")},
		{name: "shrink", source: []byte("abcdefghijklmnopqrstuvwxyz"), target: []byte("abcdefgh")},
		{name: "shifted", source: []byte("0123456789abcdefghij"), target: []byte("XX0123456789abcdefghij")},
		{name: "self repeat", target: []byte("abcdefghij-abcdefghij-abcdefghij")},
	}
	for _, dt := range dts {
		t.Run(dt.name, func(t *testing.T) {
			ops := Diff(dt.source, dt.target)
			out := replay(t, dt.source, ops, len(dt.target))
			if !bytes.Equal(out, dt.target) {
				t.Errorf("replay got %q want %q", out, dt.target)
			}
		})
	}
}

func TestDiffIdentical(t *testing.T) {
	b := []byte("an unremarkable buffer with enough bytes in it")
	ops := Diff(b, b)
	if len(ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(ops))
	}
	op := ops[0]
	if !op.Aligned() || op.Length != uint32(len(b)) {
		t.Errorf("got %+v, want aligned source copy of %d", op, len(b))
	}
}

func TestDiffEmptySource(t *testing.T) {
	target := append(bytes.Repeat([]byte{0xAB}, 32), []byte("trailer")...)
	ops := Diff(nil, target)
	for i, op := range ops {
		if op.Kind == SourceCopy {
			t.Errorf("op %d: source copy with empty source", i)
		}
	}
	out := replay(t, nil, ops, len(target))
	if !bytes.Equal(out, target) {
		t.Errorf("replay mismatch")
	}
}

func TestDiffChangedWindow(t *testing.T) {
	source := bytes.Repeat([]byte{0}, 100)
	target := bytes.Repeat([]byte{0}, 100)
	for i := 50; i < 60; i++ {
		target[i] = 0xFF
	}
	ops := Diff(source, target)
	want := []Op{
		{Kind: SourceCopy, Offset: 0, From: 0, Length: 50},
		{Kind: Run, Offset: 50, Value: 0xFF, Length: 10},
		{Kind: SourceCopy, Offset: 60, From: 60, Length: 40},
	}
	if d := cmp.Diff(want, ops); d != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", d)
	}
}

func TestDiffDeterministic(t *testing.T) {
	source := []byte("deterministic inputs must give deterministic outputs, always")
	target := []byte("Deterministic inputs MUST give deterministic outputs. Always.")
	a := Diff(source, target)
	b := Diff(source, target)
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("two runs differ:\n%s", d)
	}
}

func TestDiffWindowOption(t *testing.T) {
	// The matching block sits far outside a tiny window, so the differ
	// must fall back to literals and runs yet still replay correctly.
	source := append(bytes.Repeat([]byte{7}, 9000), []byte("needle-block-needle-block")...)
	target := append([]byte("needle-block-needle-block"), bytes.Repeat([]byte{7}, 64)...)
	ops := Diff(source, target, Window(16))
	out := replay(t, source, ops, len(target))
	if !bytes.Equal(out, target) {
		t.Errorf("replay mismatch with small window")
	}
}
