package patchfmt

import "errors"

var (
	// ErrFormat reports a structurally invalid patch: bad magic,
	// truncated header, a varint whose continuation bit never clears.
	ErrFormat = errors.New("malformed patch")
	// ErrCapacity reports a patch that cannot be expressed within a
	// format's fixed-width fields.
	ErrCapacity = errors.New("capacity exceeded")
	// ErrSourceMismatch reports a source buffer whose checksum does not
	// match the one the patch was built against.
	ErrSourceMismatch = errors.New("source checksum mismatch")
	// ErrCorrupt reports a patch whose own checksum fails, or a replay
	// whose output checksum does not match the declared target.
	ErrCorrupt = errors.New("corrupt patch")
)
