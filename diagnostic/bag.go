package diagnostic

// Bag accumulates diagnostics for one compilation unit. It is embedded by
// compiler.Module so a declare-phase result exposes a Diagnostics()/
// HasFatal() surface, mirroring the HasMultiError mixin of the original C++
// compiler (see SPEC_FULL.md §6). The final compile result is a plain
// []Diagnostic, checked with the package-level HasFatal.
type Bag struct {
	diagnostics []Diagnostic
}

// Push appends a diagnostic.
func (b *Bag) Push(d Diagnostic) {
	b.diagnostics = append(b.diagnostics, d)
}

// PushAll appends all of ds.
func (b *Bag) PushAll(ds []Diagnostic) {
	b.diagnostics = append(b.diagnostics, ds...)
}

// Diagnostics returns the accumulated diagnostics in push order.
func (b *Bag) Diagnostics() []Diagnostic {
	return b.diagnostics
}

// HasFatal reports whether any accumulated diagnostic is Fatal.
func (b *Bag) HasFatal() bool {
	return HasFatal(b.diagnostics)
}

// Drain returns the accumulated diagnostics and clears the bag.
func (b *Bag) Drain() []Diagnostic {
	out := b.diagnostics
	b.diagnostics = nil
	return out
}
