package imports

import (
	"path/filepath"

	"github.com/toolman-lang/toolman/diagnostic"
	"github.com/toolman-lang/toolman/location"
	"github.com/toolman-lang/toolman/scope"
	"github.com/toolman-lang/toolman/tmtype"
)

// CompileModuleFunc resolves and declare-phase-compiles the module at the
// given absolute path, returning its type scope. It is supplied by the
// compiler package — imports never calls back into compiler directly, to
// keep the two packages from importing each other.
type CompileModuleFunc func(absPath string) (*scope.Scope[tmtype.Type], error)

// Resolve runs the algorithm described for import resolution: resolve imp's
// path against baseDir, compile it, then either declare every selectively
// imported name or (for star imports) every name in the imported module's
// type scope into dest. Collisions with names already in dest are silently
// tolerated — imports never shadow a local or earlier-imported declaration.
func Resolve(imp Import, baseDir string, dest *scope.Scope[tmtype.Type], compile CompileModuleFunc, diags *diagnostic.Bag, loc location.Range) {
	absPath := imp.Path
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(baseDir, absPath)
	}
	absPath = filepath.Clean(absPath)

	imported, err := compile(absPath)
	if err != nil {
		diags.Push(diagnostic.NewUnresolvedImport(imp.Path, loc))
		return
	}

	if imp.Star {
		imported.Iterate(func(name string, t tmtype.Type) bool {
			dest.Declare(name, t)
			return true
		})
		return
	}

	for _, n := range imp.Names {
		t, found := imported.Lookup(n.Original)
		if !found {
			diags.Push(diagnostic.NewImportNameNotFound(n.Original, imp.Path, loc))
			continue
		}
		dest.Declare(n.LocalName(), t)
	}
}
