package bdiff

import (
	"github.com/rompatch/rompatch/debug"
)

// Diff scans target left to right and produces the edit operations
// that rebuild it from source.  At each position it weighs a repeated
// byte run, the longest source match within the search window, and the
// longest back-reference into earlier target bytes, and takes the
// longest.  An aligned source copy wins any tie because both formats
// encode it for free; after that ties go run, then source copy, then
// target copy, cheapest encoding first.  Positions no candidate can
// cover profitably accumulate into literal ops.
//
// Diff is deterministic: identical inputs produce identical ops.
func Diff(source, target []byte, opts ...DiffOpt) []Op {
	o := defaultOpts()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		ops   []Op
		lit   []byte
		litAt int
	)
	flush := func() {
		if len(lit) == 0 {
			return
		}
		ops = append(ops, Op{Kind: Literal, Offset: uint32(litAt), Bytes: lit})
		lit = nil
	}

	pos := 0
	for pos < len(target) {
		rn := runLen(target, pos)
		srcFrom, srcN := sourceMatch(source, target, pos, o.window)
		tgtFrom, tgtN := targetMatch(target, pos, o.window)

		var op Op
		switch {
		case srcN > 0 && srcFrom == pos && srcN >= rn && srcN >= tgtN:
			op = Op{Kind: SourceCopy, Offset: uint32(pos), From: uint32(srcFrom), Length: uint32(srcN)}
		case rn >= o.minRun && rn >= srcN && rn >= tgtN:
			op = Op{Kind: Run, Offset: uint32(pos), Value: target[pos], Length: uint32(rn)}
		case srcN >= o.minCopy && srcN >= tgtN:
			op = Op{Kind: SourceCopy, Offset: uint32(pos), From: uint32(srcFrom), Length: uint32(srcN)}
		case tgtN >= o.minCopy:
			op = Op{Kind: TargetCopy, Offset: uint32(pos), From: uint32(tgtFrom), Length: uint32(tgtN)}
		default:
			if len(lit) == 0 {
				litAt = pos
			}
			lit = append(lit, target[pos])
			pos++
			continue
		}
		flush()
		ops = append(ops, op)
		pos += int(op.Length)
	}
	flush()

	if debug.Diff() {
		debug.Logf("diff: source=%d target=%d ops=%d", len(source), len(target), len(ops))
	}
	return ops
}

// runLen returns the length of the repeated-byte run at target[pos].
func runLen(target []byte, pos int) int {
	v := target[pos]
	n := 1
	for pos+n < len(target) && target[pos+n] == v {
		n++
	}
	return n
}

// sourceMatch returns the longest region of source matching
// target[pos:], considering starts within the window around pos.  The
// aligned start is evaluated first and kept on ties.
func sourceMatch(source, target []byte, pos, window int) (from, n int) {
	if len(source) == 0 {
		return 0, 0
	}
	lo := pos - window
	if lo < 0 {
		lo = 0
	}
	hi := pos + window
	if hi > len(source) {
		hi = len(source)
	}
	from = pos
	if pos < len(source) {
		n = matchLen(source, pos, target, pos)
	}
	for s := lo; s < hi; s++ {
		if s == pos {
			continue
		}
		if pos+n >= len(target) {
			break
		}
		// A longer match must match where the current best ends.
		if s+n >= len(source) || source[s+n] != target[pos+n] {
			continue
		}
		if m := matchLen(source, s, target, pos); m > n {
			from, n = s, m
		}
	}
	return from, n
}

// targetMatch returns the longest back-reference into target[:pos]
// within the window.  A match may run past pos: the codecs replay
// copies byte-wise, so a forward-overlapping copy is legal and is how
// runs self-compress in the delta format.
func targetMatch(target []byte, pos, window int) (from, n int) {
	lo := pos - window
	if lo < 0 {
		lo = 0
	}
	for s := lo; s < pos; s++ {
		if pos+n >= len(target) {
			break
		}
		if target[s+n] != target[pos+n] {
			continue
		}
		if m := matchLen(target, s, target, pos); m > n {
			from, n = s, m
		}
	}
	return from, n
}

func matchLen(a []byte, ai int, b []byte, bi int) int {
	n := 0
	for ai+n < len(a) && bi+n < len(b) && a[ai+n] == b[bi+n] {
		n++
	}
	return n
}
