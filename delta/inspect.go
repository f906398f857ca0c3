package delta

import (
	"fmt"

	"github.com/rompatch/rompatch/patchfmt"
)

// Inspect summarizes a patch without reconstructing anything: header
// sizes, footer checksums, and the action count from a walk of the
// action stream.  The patch self-checksum is verified so a damaged
// file is reported before anyone commits to applying it.
func Inspect(b []byte) (*patchfmt.Metadata, error) {
	if err := checkPatchCRC(b); err != nil {
		return nil, err
	}
	h, err := parseHeader(b)
	if err != nil {
		return nil, err
	}
	ft := readFooter(b)

	actions := 0
	i := h.body
	end := len(b) - footerLen
	for i < end {
		var v uint64
		v, i, err = uvarint(b[:end], i, "action")
		if err != nil {
			return nil, err
		}
		length := int(v>>2) + 1
		switch v & 3 {
		case actTargetRead:
			if i+length > end {
				return nil, fmt.Errorf("%w: literal data overruns the action stream", patchfmt.ErrFormat)
			}
			i += length
		case actSourceCopy, actTargetCopy:
			if _, i, err = varint(b[:end], i, "copy offset"); err != nil {
				return nil, err
			}
		}
		actions++
	}

	return &patchfmt.Metadata{
		Format:     patchfmt.Delta,
		PatchSize:  int64(len(b)),
		SourceSize: int64(h.sourceSize),
		TargetSize: int64(h.targetSize),
		Records:    actions,
		SourceCRC:  ft.sourceCRC,
		TargetCRC:  ft.targetCRC,
		PatchCRC:   ft.patchCRC,
	}, nil
}
