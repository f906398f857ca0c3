// Package crc computes the 32-bit cyclic redundancy checksum the patch
// formats embed.  The polynomial is the reflected 0xEDB88320 used by
// every other tool implementing these formats, so sums here must match
// theirs bit for bit.
package crc

import "hash/crc32"

// Sum returns the CRC32 of b.  The lookup table behind it is
// process-wide constant data built once by hash/crc32.
func Sum(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}
