package bdiff

type diffOpts struct {
	window  int
	minRun  int
	minCopy int
}

// DiffOpt configures Diff.
type DiffOpt func(*diffOpts)

// Window bounds the lookback/lookahead searched for source matches and
// target back-references.  Larger windows find more matches and cost
// more time; the default (4096) is enough for the aligned and
// near-aligned matches typical of patched images.
func Window(n int) DiffOpt {
	return func(o *diffOpts) { o.window = n }
}

// MinRun sets the shortest repeated-byte run worth emitting as a Run
// op rather than literal bytes.
func MinRun(n int) DiffOpt {
	return func(o *diffOpts) { o.minRun = n }
}

// MinCopy sets the shortest copy worth emitting as a copy op rather
// than literal bytes.  Copies below this cost more to encode than the
// bytes they save.
func MinCopy(n int) DiffOpt {
	return func(o *diffOpts) { o.minCopy = n }
}

func defaultOpts() diffOpts {
	return diffOpts{
		window:  4096,
		minRun:  4,
		minCopy: 8,
	}
}
