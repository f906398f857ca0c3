package ips

import (
	"github.com/rompatch/rompatch/debug"
)

// Apply replays the patch over a copy of source.  The result spans the
// source and every addressed record, zero-extended as needed, then cut
// to the truncation length when the patch declares one.
func Apply(source []byte, p *Patch) ([]byte, error) {
	extent := int64(len(source))
	for i := range p.Records {
		r := &p.Records[i]
		if end := int64(r.Offset) + int64(r.Len()); end > extent {
			extent = end
		}
	}
	out := make([]byte, extent)
	copy(out, source)
	for i := range p.Records {
		r := &p.Records[i]
		if r.RLE() {
			fill := out[r.Offset : int(r.Offset)+int(r.Count)]
			for j := range fill {
				fill[j] = r.Value
			}
		} else {
			copy(out[r.Offset:], r.Data)
		}
	}
	if p.Truncate >= 0 && p.Truncate < int64(len(out)) {
		out = out[:p.Truncate]
	}
	if debug.Apply() {
		debug.Logf("ips: applied %d records, %d -> %d bytes", len(p.Records), len(source), len(out))
	}
	return out, nil
}
