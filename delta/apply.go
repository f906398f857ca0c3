package delta

import (
	"encoding/binary"
	"fmt"

	"github.com/rompatch/rompatch/crc"
	"github.com/rompatch/rompatch/debug"
	"github.com/rompatch/rompatch/patchfmt"
)

type header struct {
	sourceSize uint64
	targetSize uint64
	metadata   []byte
	body       int // offset of the first action
}

type footer struct {
	sourceCRC uint32
	targetCRC uint32
	patchCRC  uint32
}

// Apply rebuilds the target from source and patch.  The patch's own
// checksum is verified before anything else is parsed, the source
// checksum before any replay, and the output checksum after; a buffer
// failing the last check is discarded, never returned.
func Apply(source, patch []byte) ([]byte, error) {
	if err := checkPatchCRC(patch); err != nil {
		return nil, err
	}
	h, err := parseHeader(patch)
	if err != nil {
		return nil, err
	}
	ft := readFooter(patch)
	if uint64(len(source)) != h.sourceSize {
		return nil, fmt.Errorf("%w: source is %d bytes, patch wants %d",
			patchfmt.ErrSourceMismatch, len(source), h.sourceSize)
	}
	if got := crc.Sum(source); got != ft.sourceCRC {
		return nil, fmt.Errorf("%w: source checksum %08x, patch wants %08x",
			patchfmt.ErrSourceMismatch, got, ft.sourceCRC)
	}

	out := make([]byte, 0, h.targetSize)
	var srcCur, tgtCur int64
	i := h.body
	end := len(patch) - footerLen
	for i < end {
		var v uint64
		v, i, err = uvarint(patch[:end], i, "action")
		if err != nil {
			return nil, err
		}
		length := int64(v>>2) + 1
		if int64(len(out))+length > int64(h.targetSize) {
			return nil, fmt.Errorf("%w: actions overrun the declared target size", patchfmt.ErrFormat)
		}
		switch v & 3 {
		case actSourceRead:
			from := int64(len(out))
			if from+length > int64(len(source)) {
				return nil, fmt.Errorf("%w: source read past end of source", patchfmt.ErrFormat)
			}
			out = append(out, source[from:from+length]...)
		case actTargetRead:
			if i+int(length) > end {
				return nil, fmt.Errorf("%w: literal data overruns the action stream", patchfmt.ErrFormat)
			}
			out = append(out, patch[i:i+int(length)]...)
			i += int(length)
		case actSourceCopy:
			var rel int64
			rel, i, err = varint(patch[:end], i, "source copy offset")
			if err != nil {
				return nil, err
			}
			from := srcCur + rel
			if from < 0 || from+length > int64(len(source)) {
				return nil, fmt.Errorf("%w: source copy out of range", patchfmt.ErrFormat)
			}
			out = append(out, source[from:from+length]...)
			srcCur = from + length
		case actTargetCopy:
			var rel int64
			rel, i, err = varint(patch[:end], i, "target copy offset")
			if err != nil {
				return nil, err
			}
			from := tgtCur + rel
			if from < 0 || from >= int64(len(out)) {
				return nil, fmt.Errorf("%w: target copy ahead of output", patchfmt.ErrFormat)
			}
			// Byte-wise on purpose: a copy may overlap its own output.
			for j := int64(0); j < length; j++ {
				out = append(out, out[from+j])
			}
			tgtCur = from + length
		}
	}
	if uint64(len(out)) != h.targetSize {
		return nil, fmt.Errorf("%w: actions produced %d bytes, declared %d",
			patchfmt.ErrFormat, len(out), h.targetSize)
	}
	if got := crc.Sum(out); got != ft.targetCRC {
		return nil, fmt.Errorf("%w: output checksum %08x, declared %08x",
			patchfmt.ErrCorrupt, got, ft.targetCRC)
	}
	if debug.Apply() {
		debug.Logf("delta: applied %d patch bytes, %d -> %d bytes", len(patch), len(source), len(out))
	}
	return out, nil
}

// checkPatchCRC verifies the trailing self-checksum, which covers
// every preceding byte including the other two footer checksums.
func checkPatchCRC(b []byte) error {
	if len(b) < len(patchfmt.MagicDelta)+3+footerLen {
		return fmt.Errorf("%w: delta patch too short", patchfmt.ErrFormat)
	}
	declared := binary.LittleEndian.Uint32(b[len(b)-4:])
	if got := crc.Sum(b[:len(b)-4]); got != declared {
		return fmt.Errorf("%w: patch checksum %08x, declared %08x", patchfmt.ErrCorrupt, got, declared)
	}
	return nil
}

func parseHeader(b []byte) (*header, error) {
	if string(b[:len(patchfmt.MagicDelta)]) != patchfmt.MagicDelta {
		return nil, fmt.Errorf("%w: bad delta magic", patchfmt.ErrFormat)
	}
	h := &header{}
	body := b[:len(b)-footerLen]
	i := len(patchfmt.MagicDelta)
	var err error
	if h.sourceSize, i, err = uvarint(body, i, "source size"); err != nil {
		return nil, err
	}
	if h.targetSize, i, err = uvarint(body, i, "target size"); err != nil {
		return nil, err
	}
	var metaLen uint64
	if metaLen, i, err = uvarint(body, i, "metadata length"); err != nil {
		return nil, err
	}
	if metaLen > uint64(len(body)-i) {
		return nil, fmt.Errorf("%w: metadata overruns patch", patchfmt.ErrFormat)
	}
	h.metadata = body[i : i+int(metaLen)]
	h.body = i + int(metaLen)
	return h, nil
}

func readFooter(b []byte) footer {
	f := len(b) - footerLen
	return footer{
		sourceCRC: binary.LittleEndian.Uint32(b[f:]),
		targetCRC: binary.LittleEndian.Uint32(b[f+4:]),
		patchCRC:  binary.LittleEndian.Uint32(b[f+8:]),
	}
}

func uvarint(b []byte, i int, what string) (uint64, int, error) {
	v, n := binary.Uvarint(b[i:])
	if n <= 0 {
		return 0, 0, fmt.Errorf("%w: bad %s varint", patchfmt.ErrFormat, what)
	}
	return v, i + n, nil
}

func varint(b []byte, i int, what string) (int64, int, error) {
	v, n := binary.Varint(b[i:])
	if n <= 0 {
		return 0, 0, fmt.Errorf("%w: bad %s varint", patchfmt.ErrFormat, what)
	}
	return v, i + n, nil
}
