// Package bdiff compares a source and a target binary buffer and
// produces the ordered edit operations the patch codecs encode.  The
// differ knows nothing about what the buffers contain; it sees bytes.
package bdiff

// Kind tags an edit operation.
type Kind int

const (
	// Literal carries target bytes with no useful relation to the
	// source or to earlier target output.
	Literal Kind = iota
	// Run is a maximal run of one repeated byte in the target.
	Run
	// SourceCopy reproduces a region of the source buffer.
	SourceCopy
	// TargetCopy reproduces earlier target output (a back-reference).
	TargetCopy
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Run:
		return "run"
	case SourceCopy:
		return "source-copy"
	case TargetCopy:
		return "target-copy"
	}
	return "invalid"
}

// Op is one edit operation.  A diff's ops are ordered by ascending
// Offset, contiguous and non-overlapping; their lengths sum to the
// target length.
type Op struct {
	Kind   Kind
	Offset uint32 // target position the op's output starts at
	Bytes  []byte // Literal payload
	Value  byte   // Run byte
	From   uint32 // copy kinds: absolute offset into source or earlier target
	Length uint32 // output length for Run and copy kinds
}

// Len returns the number of target bytes the op produces.
func (op *Op) Len() uint32 {
	if op.Kind == Literal {
		return uint32(len(op.Bytes))
	}
	return op.Length
}

// Aligned reports whether a SourceCopy reads the source at the same
// offset it writes the target.  Aligned copies are free to encode in
// both patch formats: IPS leaves the bytes alone and the delta format
// reads the source at the output cursor.
func (op *Op) Aligned() bool {
	return op.Kind == SourceCopy && op.From == op.Offset
}
