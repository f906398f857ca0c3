package delta

import (
	"encoding/binary"

	"github.com/rompatch/rompatch/bdiff"
	"github.com/rompatch/rompatch/crc"
	"github.com/rompatch/rompatch/debug"
	"github.com/rompatch/rompatch/patchfmt"
)

// Encode converts a diff into a delta patch.  Aligned source copies
// become SourceRead, misaligned ones SourceCopy with a relative
// offset, literals TargetRead with inline data.  A run becomes one
// literal byte followed by a forward-overlapping TargetCopy, which
// replays byte-wise into the repeated value.  Relative copy offsets
// are measured from a per-buffer running cursor, so nearby copies stay
// one or two bytes on the wire however large the file is.
func Encode(source, target []byte, ops []bdiff.Op) ([]byte, error) {
	b := make([]byte, 0, 64+len(ops)*4)
	b = append(b, patchfmt.MagicDelta...)
	b = binary.AppendUvarint(b, uint64(len(source)))
	b = binary.AppendUvarint(b, uint64(len(target)))
	b = binary.AppendUvarint(b, 0) // metadata, none

	var (
		srcCur int64
		tgtCur int64
		outPos int64
	)
	for i := range ops {
		op := &ops[i]
		switch op.Kind {
		case bdiff.Literal:
			b = action(b, actTargetRead, int64(len(op.Bytes)))
			b = append(b, op.Bytes...)
		case bdiff.Run:
			b = action(b, actTargetRead, 1)
			b = append(b, op.Value)
			if op.Length > 1 {
				b = action(b, actTargetCopy, int64(op.Length-1))
				b = binary.AppendVarint(b, outPos-tgtCur)
				tgtCur = outPos + int64(op.Length) - 1
			}
		case bdiff.SourceCopy:
			if op.Aligned() {
				b = action(b, actSourceRead, int64(op.Length))
			} else {
				b = action(b, actSourceCopy, int64(op.Length))
				b = binary.AppendVarint(b, int64(op.From)-srcCur)
				srcCur = int64(op.From) + int64(op.Length)
			}
		case bdiff.TargetCopy:
			b = action(b, actTargetCopy, int64(op.Length))
			b = binary.AppendVarint(b, int64(op.From)-tgtCur)
			tgtCur = int64(op.From) + int64(op.Length)
		}
		outPos += int64(op.Len())
	}

	b = le32(b, crc.Sum(source))
	b = le32(b, crc.Sum(target))
	b = le32(b, crc.Sum(b))
	if debug.Delta() {
		debug.Logf("delta: encoded %d ops into %d patch bytes", len(ops), len(b))
	}
	return b, nil
}

func action(b []byte, kind int, length int64) []byte {
	return binary.AppendUvarint(b, uint64(length-1)<<2|uint64(kind))
}

func le32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
