package ips

import (
	"fmt"

	"github.com/rompatch/rompatch/patchfmt"
)

type walkInfo struct {
	records  int
	extent   int64
	truncate int64
}

// walk checks structure and visits every record without retaining any.
// Decode and Inspect share it.
func walk(b []byte, emit func(Record)) (*walkInfo, error) {
	if len(b) < len(patchfmt.MagicIPS)+3 || string(b[:len(patchfmt.MagicIPS)]) != patchfmt.MagicIPS {
		return nil, fmt.Errorf("%w: bad IPS magic", patchfmt.ErrFormat)
	}
	i := len(patchfmt.MagicIPS)
	info := &walkInfo{truncate: -1}
	for {
		if i+3 > len(b) {
			return nil, fmt.Errorf("%w: unterminated record stream", patchfmt.ErrFormat)
		}
		off := int(b[i])<<16 | int(b[i+1])<<8 | int(b[i+2])
		i += 3
		if off == eofMarker {
			break
		}
		if i+2 > len(b) {
			return nil, fmt.Errorf("%w: truncated record header at %#x", patchfmt.ErrFormat, off)
		}
		l := int(b[i])<<8 | int(b[i+1])
		i += 2
		var rec Record
		if l == 0 {
			// The reserved length introduces an RLE record.
			if i+3 > len(b) {
				return nil, fmt.Errorf("%w: truncated RLE record at %#x", patchfmt.ErrFormat, off)
			}
			count := int(b[i])<<8 | int(b[i+1])
			if count == 0 {
				return nil, fmt.Errorf("%w: empty RLE record at %#x", patchfmt.ErrFormat, off)
			}
			rec = Record{Offset: uint32(off), Count: uint16(count), Value: b[i+2]}
			i += 3
		} else {
			if i+l > len(b) {
				return nil, fmt.Errorf("%w: truncated record payload at %#x", patchfmt.ErrFormat, off)
			}
			rec = Record{Offset: uint32(off), Data: b[i : i+l : i+l]}
			i += l
		}
		info.records++
		if end := int64(off) + int64(rec.Len()); end > info.extent {
			info.extent = end
		}
		if emit != nil {
			emit(rec)
		}
	}
	switch len(b) - i {
	case 0:
	case 3:
		info.truncate = int64(b[i])<<16 | int64(b[i+1])<<8 | int64(b[i+2])
	default:
		return nil, fmt.Errorf("%w: %d stray bytes after EOF", patchfmt.ErrFormat, len(b)-i)
	}
	return info, nil
}

// Decode parses an IPS patch.  Record payloads alias b.
func Decode(b []byte) (*Patch, error) {
	var recs []Record
	info, err := walk(b, func(r Record) { recs = append(recs, r) })
	if err != nil {
		return nil, err
	}
	return &Patch{Records: recs, Truncate: info.truncate}, nil
}

// Inspect summarizes a patch without materializing records or output.
// IPS declares no source size; TargetSize reports the truncation
// length when present, otherwise the maximal addressed extent.
func Inspect(b []byte) (*patchfmt.Metadata, error) {
	info, err := walk(b, nil)
	if err != nil {
		return nil, err
	}
	md := &patchfmt.Metadata{
		Format:     patchfmt.IPS,
		PatchSize:  int64(len(b)),
		SourceSize: -1,
		TargetSize: info.extent,
		Records:    info.records,
	}
	if info.truncate >= 0 {
		md.Truncated = true
		md.TruncateTo = info.truncate
		md.TargetSize = info.truncate
	}
	return md, nil
}
