// Package ips implements the classic IPS patch format: an ASCII
// "PATCH" magic, records of {3-byte big-endian offset, 2-byte
// big-endian length, payload}, and a 3-byte "EOF" end sentinel.  A
// record whose length field is zero is an RLE record {2-byte repeat
// count, 1-byte value} instead.  An optional 3-byte length after the
// sentinel truncates the result.  Offsets are capped at 0xFFFFFF by
// the field width; encoding anything past that fails rather than
// wrapping.
package ips

const (
	// eofMarker is the "EOF" sentinel read as a 3-byte big-endian
	// offset.  The encoder must never emit a record at this offset.
	eofMarker = 0x454F46

	maxOffset = 0xFFFFFF
	maxChunk  = 0xFFFF

	// minRLE is the shortest run emitted as an RLE record.  An RLE
	// record costs 8 bytes regardless of run length; shorter runs are
	// cheaper as literal payload.
	minRLE = 4

	// gapMerge is the longest stretch of unchanged bytes worth
	// materializing to keep two neighboring literal records as one.
	// A new record costs 5 header bytes, so writing up to 5 unchanged
	// bytes through is the smaller patch.
	gapMerge = 6
)

// Record is one IPS record: a literal write or an RLE fill at Offset.
type Record struct {
	Offset uint32
	Data   []byte // literal payload; nil for RLE records
	Count  uint16 // RLE repeat count
	Value  byte   // RLE fill byte
}

// RLE reports whether the record is a run-length fill.
func (r *Record) RLE() bool {
	return r.Data == nil
}

// Len returns the number of target bytes the record writes.
func (r *Record) Len() int {
	if r.RLE() {
		return int(r.Count)
	}
	return len(r.Data)
}

// Patch is a decoded IPS patch.
type Patch struct {
	Records []Record
	// Truncate is the declared result length, -1 when the patch
	// carries no truncation record.
	Truncate int64
}
