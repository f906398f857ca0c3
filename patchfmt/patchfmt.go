// Package patchfmt defines the patch wire formats the engine speaks and
// the shared error kinds the codecs surface.  Patch files are identified
// by magic-byte sniffing; each format's codec lives in its own package
// (ips, delta) and reports failures with the sentinels defined here.
package patchfmt

import "fmt"

// Format identifies a patch wire format.
type Format int

const (
	Unknown Format = iota
	// IPS is the classic offset/length record format with an ASCII
	// "PATCH" magic and an "EOF" end sentinel.
	IPS
	// Delta is the action-stream format with varint framing and a
	// three-checksum footer.
	Delta
)

const (
	// MagicIPS opens every IPS patch.
	MagicIPS = "PATCH"
	// MagicDelta opens every delta patch: marker plus format version.
	MagicDelta = "BDX1"
)

func (f Format) String() string {
	switch f {
	case IPS:
		return "ips"
	case Delta:
		return "delta"
	}
	return "unknown"
}

// ParseFormat maps a CLI format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "ips", "i":
		return IPS, nil
	case "delta", "d":
		return Delta, nil
	}
	return Unknown, fmt.Errorf("%w: unknown format %q", ErrFormat, s)
}

// Detect sniffs the format of p from its magic bytes.
func Detect(p []byte) (Format, error) {
	if len(p) >= len(MagicIPS) && string(p[:len(MagicIPS)]) == MagicIPS {
		return IPS, nil
	}
	if len(p) >= len(MagicDelta) && string(p[:len(MagicDelta)]) == MagicDelta {
		return Delta, nil
	}
	return Unknown, fmt.Errorf("%w: unrecognized magic", ErrFormat)
}
