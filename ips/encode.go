package ips

import (
	"fmt"

	"github.com/rompatch/rompatch/bdiff"
	"github.com/rompatch/rompatch/debug"
	"github.com/rompatch/rompatch/patchfmt"
)

// Encode converts a diff into an IPS patch.  Aligned source copies are
// dropped, since applying over a copy of the source leaves those bytes
// in place.  Misaligned copies and back-references are materialized as
// literal target bytes; the format knows only absolute writes.  Runs
// long enough to pay for themselves become RLE records.  When the
// target is shorter than the source the patch carries a truncation
// record.
func Encode(source, target []byte, ops []bdiff.Op) (*Patch, error) {
	e := &encoder{target: target}
	for i, op := range ops {
		var err error
		switch {
		case op.Aligned():
			// Writing through a short unchanged gap keeps the
			// neighboring literals in one record, which is smaller
			// than a fresh record header.
			if e.pendLen > 0 && int(op.Length) < gapMerge && i+1 < len(ops) && writesLiteral(&ops[i+1]) {
				err = e.lit(int(op.Offset), int(op.Length))
			}
		case op.Kind == bdiff.Run && op.Length >= minRLE:
			err = e.rle(int(op.Offset), int(op.Length), op.Value)
		default:
			err = e.lit(int(op.Offset), int(op.Len()))
		}
		if err != nil {
			return nil, err
		}
	}
	if err := e.flush(); err != nil {
		return nil, err
	}
	p := &Patch{Records: e.recs, Truncate: -1}
	if len(target) < len(source) {
		if len(target) > maxOffset {
			return nil, fmt.Errorf("%w: truncation length %#x past the 24-bit range",
				patchfmt.ErrCapacity, len(target))
		}
		p.Truncate = int64(len(target))
	}
	if debug.IPS() {
		debug.Logf("ips: encoded %d ops into %d records, truncate=%d", len(ops), len(p.Records), p.Truncate)
	}
	return p, nil
}

// writesLiteral reports whether op will append literal payload, so a
// gap just before it can merge into the same record.
func writesLiteral(op *bdiff.Op) bool {
	switch op.Kind {
	case bdiff.Literal, bdiff.TargetCopy:
		return true
	case bdiff.Run:
		return op.Length < minRLE
	case bdiff.SourceCopy:
		return !op.Aligned()
	}
	return false
}

type encoder struct {
	target []byte
	recs   []Record

	pendAt  int
	pendLen int
}

// lit adds target[off:off+n] to the pending literal range, flushing
// first when the range is not contiguous with it.
func (e *encoder) lit(off, n int) error {
	if n == 0 {
		return nil
	}
	if e.pendLen > 0 && e.pendAt+e.pendLen == off {
		e.pendLen += n
		return nil
	}
	if err := e.flush(); err != nil {
		return err
	}
	e.pendAt, e.pendLen = off, n
	return nil
}

// flush turns the pending literal range into records, splitting at the
// 16-bit length limit.  A record that would start at the EOF sentinel
// offset is started one byte earlier instead, re-writing the preceding
// target byte; the extra write is idempotent.
func (e *encoder) flush() error {
	off, n := e.pendAt, e.pendLen
	e.pendLen = 0
	for n > 0 {
		if off == eofMarker {
			off--
			n++
		}
		if off > maxOffset {
			return fmt.Errorf("%w: record offset %#x past the 24-bit range", patchfmt.ErrCapacity, off)
		}
		c := n
		if c > maxChunk {
			c = maxChunk
		}
		e.recs = append(e.recs, Record{Offset: uint32(off), Data: e.target[off : off+c : off+c]})
		off += c
		n -= c
	}
	return nil
}

// rle emits RLE records for a run, splitting at the 16-bit count
// limit.  A chunk that would start at the EOF sentinel offset is
// emitted as a two-byte literal covering the preceding target byte and
// the first run byte.
func (e *encoder) rle(off, n int, v byte) error {
	if err := e.flush(); err != nil {
		return err
	}
	for n > 0 {
		if off > maxOffset {
			return fmt.Errorf("%w: record offset %#x past the 24-bit range", patchfmt.ErrCapacity, off)
		}
		if off == eofMarker {
			e.recs = append(e.recs, Record{Offset: uint32(off - 1), Data: e.target[off-1 : off+1 : off+1]})
			off++
			n--
			continue
		}
		c := n
		if c > maxChunk {
			c = maxChunk
		}
		e.recs = append(e.recs, Record{Offset: uint32(off), Count: uint16(c), Value: v})
		off += c
		n -= c
	}
	return nil
}

// Bytes serializes the patch in wire order: magic, records, the EOF
// sentinel, and the truncation length when present.
func (p *Patch) Bytes() []byte {
	n := len(patchfmt.MagicIPS) + 3
	for i := range p.Records {
		r := &p.Records[i]
		if r.RLE() {
			n += 8
		} else {
			n += 5 + len(r.Data)
		}
	}
	if p.Truncate >= 0 {
		n += 3
	}
	b := make([]byte, 0, n)
	b = append(b, patchfmt.MagicIPS...)
	for i := range p.Records {
		r := &p.Records[i]
		b = append(b, byte(r.Offset>>16), byte(r.Offset>>8), byte(r.Offset))
		if r.RLE() {
			b = append(b, 0, 0, byte(r.Count>>8), byte(r.Count), r.Value)
		} else {
			l := len(r.Data)
			b = append(b, byte(l>>8), byte(l))
			b = append(b, r.Data...)
		}
	}
	b = append(b, "EOF"...)
	if p.Truncate >= 0 {
		b = append(b, byte(p.Truncate>>16), byte(p.Truncate>>8), byte(p.Truncate))
	}
	return b
}
