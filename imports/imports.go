// Package imports accumulates and resolves `from 'path' import a, b as c`
// and `from 'path' import *` statements. The CST is walked left to right,
// so ImportBuilder only collects names during one import statement; the
// actual module compile + name lookup happens once the statement closes.
package imports

// ImportName is one selectively-imported identifier, with its optional
// alias.
type ImportName struct {
	Original string
	Alias    string // empty if not aliased
}

// LocalName returns the name this import binds in the importing module's
// scope — the alias, if any, otherwise the original.
func (n ImportName) LocalName() string {
	if n.Alias != "" {
		return n.Alias
	}
	return n.Original
}

// ImportBuilder collects one import statement's selective names (or star
// flag) as the CST is walked, for a single source path.
type ImportBuilder struct {
	path  string
	names []ImportName
	star  bool
}

// NewImportBuilder starts collecting an import from path.
func NewImportBuilder(path string) *ImportBuilder {
	return &ImportBuilder{path: path}
}

// AddName records one selectively-imported name.
func (b *ImportBuilder) AddName(original, alias string) {
	b.names = append(b.names, ImportName{Original: original, Alias: alias})
}

// SetStar marks this as a `from 'path' import *` statement.
func (b *ImportBuilder) SetStar() { b.star = true }

// Import is the flushed result of one import statement: either a star
// import of path, or a set of selectively-imported names from it.
type Import struct {
	Path  string
	Names []ImportName
	Star  bool
}

// Flush finalizes the statement collected so far into an Import value.
func (b *ImportBuilder) Flush() Import {
	return Import{Path: b.path, Names: b.names, Star: b.star}
}
