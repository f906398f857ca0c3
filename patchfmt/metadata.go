package patchfmt

// Metadata is the read-only projection a patch inspector produces.  It
// holds header- and footer-derived scalars only; it never retains the
// patch buffer it was parsed from.
type Metadata struct {
	Format    Format `json:"format" yaml:"format"`
	PatchSize int64  `json:"patchSize" yaml:"patchSize"`

	// SourceSize and TargetSize are the header-declared sizes.  IPS
	// declares neither; both are -1 there, except that TargetSize
	// reports the patch's maximal addressed extent when records exist.
	SourceSize int64 `json:"sourceSize" yaml:"sourceSize"`
	TargetSize int64 `json:"targetSize" yaml:"targetSize"`

	// Records counts IPS records or delta actions.
	Records int `json:"records" yaml:"records"`

	// Truncated is set when an IPS patch carries a trailing truncation
	// length; TruncateTo then holds that length.
	Truncated  bool  `json:"truncated" yaml:"truncated"`
	TruncateTo int64 `json:"truncateTo,omitempty" yaml:"truncateTo,omitempty"`

	// Checksums from the delta footer; zero for IPS, which carries none.
	SourceCRC uint32 `json:"sourceCRC" yaml:"sourceCRC"`
	TargetCRC uint32 `json:"targetCRC" yaml:"targetCRC"`
	PatchCRC  uint32 `json:"patchCRC" yaml:"patchCRC"`
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
