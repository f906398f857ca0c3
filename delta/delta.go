// Package delta implements the action-stream patch format.  The wire
// layout is
//
//	magic "BDX1"
//	uvarint source size
//	uvarint target size
//	uvarint metadata length, metadata bytes
//	actions
//	4-byte LE CRC32 of the source buffer
//	4-byte LE CRC32 of the target buffer
//	4-byte LE CRC32 of every patch byte preceding this field
//
// Each action is one uvarint packing (length-1)<<2 with a 2-bit kind.
// TargetRead is followed by length literal bytes; the copy kinds by a
// zigzag-signed varint giving the offset relative to that buffer's
// running copy cursor.  Varints use the standard continuation-bit
// base-128 framing of encoding/binary.  Replaying the actions against
// the source and the output under construction rebuilds the target
// exactly; both ends are guarded by the footer checksums.
package delta

const (
	// Action kinds.  SourceRead reads the source at the output cursor;
	// TargetRead takes literal bytes from the patch; the copy kinds
	// read at their buffer's copy cursor plus a relative offset.
	actSourceRead = iota
	actTargetRead
	actSourceCopy
	actTargetCopy

	footerLen = 12
)
