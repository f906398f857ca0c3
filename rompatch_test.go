package rompatch

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rompatch/rompatch/patchfmt"
)

type facadeTest struct {
	name   string
	source []byte
	target []byte
}

func TestCreateApplyBothFormats(t *testing.T) {
	var fts = []facadeTest{
		{name: "empty source", target: []byte("hello")},
		{name: "run", source: bytes.Repeat([]byte{0}, 8), target: bytes.Repeat([]byte{1}, 8)},
		{name: "edit", source: []byte("the original contents"), target: []byte("the modified contents")},
		{name: "shrink", source: []byte("a longer original image"), target: []byte("a longer")},
	}
	for _, f := range []patchfmt.Format{patchfmt.IPS, patchfmt.Delta} {
		for _, ft := range fts {
			t.Run(f.String()+"/"+ft.name, func(t *testing.T) {
				p, err := Create(ft.source, ft.target, f)
				if err != nil {
					t.Fatalf("create: %v", err)
				}
				if got, err := patchfmt.Detect(p); err != nil || got != f {
					t.Fatalf("detect got %v, %v; want %v", got, err, f)
				}
				out, err := Apply(ft.source, p)
				if err != nil {
					t.Fatalf("apply: %v", err)
				}
				if !bytes.Equal(out, ft.target) {
					t.Errorf("apply got %q want %q", out, ft.target)
				}
			})
		}
	}
}

func TestCreateUnknownFormat(t *testing.T) {
	if _, err := Create(nil, []byte("x"), patchfmt.Unknown); !errors.Is(err, patchfmt.ErrFormat) {
		t.Errorf("got %v, want ErrFormat", err)
	}
}

func TestApplyUnknownMagic(t *testing.T) {
	if _, err := Apply(nil, []byte("not a patch at all")); !errors.Is(err, patchfmt.ErrFormat) {
		t.Errorf("got %v, want ErrFormat", err)
	}
}

func TestInspectDispatch(t *testing.T) {
	source := bytes.Repeat([]byte{7}, 64)
	target := bytes.Repeat([]byte{8}, 64)

	ipsPatch, err := Create(source, target, patchfmt.IPS)
	if err != nil {
		t.Fatal(err)
	}
	deltaPatch, err := Create(source, target, patchfmt.Delta)
	if err != nil {
		t.Fatal(err)
	}

	ipsMD, err := Inspect(ipsPatch)
	if err != nil {
		t.Fatal(err)
	}
	deltaMD, err := Inspect(deltaPatch)
	if err != nil {
		t.Fatal(err)
	}

	want := &patchfmt.Metadata{
		Format:     patchfmt.IPS,
		PatchSize:  int64(len(ipsPatch)),
		SourceSize: -1,
		TargetSize: 64,
		Records:    1,
	}
	if d := cmp.Diff(want, ipsMD); d != "" {
		t.Errorf("ips metadata (-want +got):\n%s", d)
	}
	if deltaMD.Format != patchfmt.Delta || deltaMD.SourceSize != 64 || deltaMD.TargetSize != 64 {
		t.Errorf("delta metadata: %+v", deltaMD)
	}
}
