// Package rompatch creates, applies, and inspects binary patches.  A
// patch encodes the difference between an original ("source") and a
// modified ("target") binary image so the modification can be shipped
// without the image itself.  Two wire formats are supported: the
// classic IPS offset/length format and a checksummed delta action
// format; see the ips and delta packages for the wire details.  The
// engine treats both buffers as opaque bytes and holds no state
// between calls.
package rompatch

import (
	"fmt"

	"github.com/rompatch/rompatch/bdiff"
	"github.com/rompatch/rompatch/delta"
	"github.com/rompatch/rompatch/ips"
	"github.com/rompatch/rompatch/patchfmt"
)

// Create encodes the difference between source and target as a patch
// in the requested format.
func Create(source, target []byte, f patchfmt.Format, opts ...bdiff.DiffOpt) ([]byte, error) {
	ops := bdiff.Diff(source, target, opts...)
	switch f {
	case patchfmt.IPS:
		p, err := ips.Encode(source, target, ops)
		if err != nil {
			return nil, err
		}
		return p.Bytes(), nil
	case patchfmt.Delta:
		return delta.Encode(source, target, ops)
	}
	return nil, fmt.Errorf("%w: cannot encode format %v", patchfmt.ErrFormat, f)
}

// Apply reconstructs the target from source and a patch in either
// format, chosen by magic sniffing.  The caller owns the returned
// buffer.
func Apply(source, patch []byte) ([]byte, error) {
	f, err := patchfmt.Detect(patch)
	if err != nil {
		return nil, err
	}
	if f == patchfmt.IPS {
		p, err := ips.Decode(patch)
		if err != nil {
			return nil, err
		}
		return ips.Apply(source, p)
	}
	return delta.Apply(source, patch)
}

// Inspect summarizes a patch in either format without applying it.
func Inspect(patch []byte) (*patchfmt.Metadata, error) {
	f, err := patchfmt.Detect(patch)
	if err != nil {
		return nil, err
	}
	if f == patchfmt.IPS {
		return ips.Inspect(patch)
	}
	return delta.Inspect(patch)
}
