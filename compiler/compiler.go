// Package compiler drives the two-phase walk described by the walker
// package over one root Toolman source file and everything it imports,
// memoising each imported module's declare-phase result so cyclic and
// diamond import graphs are only ever declared once.
package compiler

import (
	"os"
	"path/filepath"

	"github.com/toolman-lang/toolman/cst"
	"github.com/toolman-lang/toolman/diagnostic"
	"github.com/toolman-lang/toolman/document"
	"github.com/toolman-lang/toolman/scope"
	"github.com/toolman-lang/toolman/tmerrors"
	"github.com/toolman-lang/toolman/tmlog"
	"github.com/toolman-lang/toolman/tmoption"
	"github.com/toolman-lang/toolman/tmtype"
	"github.com/toolman-lang/toolman/walker"
)

// Module is one declare-phase result: the type and option scopes it
// populated, plus any diagnostics raised while declaring it (a malformed
// import, a duplicate type name local to that file).
type Module struct {
	diagnostic.Bag

	Path        string
	TypeScope   *scope.Scope[tmtype.Type]
	OptionScope *scope.Scope[tmoption.Option]
}

// Parser turns raw Toolman source into a CST. Supplying one is how a
// caller plugs in the actual lexer/grammar, which this package treats as
// an external collaborator.
type Parser func(path string, src []byte) (cst.Node, error)

// Compiler compiles a root Toolman file and the modules it transitively
// imports into a Document.
type Compiler struct {
	logger         tmlog.Logger
	baseDir        string
	maxImportDepth int
	parse          Parser
	modules        map[string]*Module
	importDepth    int
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger overrides the Compiler's logger. The default is tmlog.NopLogger.
func WithLogger(l tmlog.Logger) Option {
	return func(c *Compiler) { c.logger = l }
}

// WithBaseDir sets the directory relative import paths resolve against.
// If unset, Compile derives it from the root file's own directory.
func WithBaseDir(dir string) Option {
	return func(c *Compiler) { c.baseDir = dir }
}

// WithMaxImportDepth bounds how many modules deep an import chain may go,
// guarding against a pathological (non-cyclic, since cycles are handled by
// the module cache) but unbounded import chain. Past the limit,
// compileModule returns an invariant error; for an imported module the
// import resolver reports that error as an UnresolvedImport diagnostic.
func WithMaxImportDepth(depth int) Option {
	return func(c *Compiler) { c.maxImportDepth = depth }
}

// WithModuleCache seeds the compiler with already-declared modules, letting
// a caller compile several root files against one shared import graph.
func WithModuleCache(modules map[string]*Module) Option {
	return func(c *Compiler) {
		for k, v := range modules {
			c.modules[k] = v
		}
	}
}

// New creates a Compiler that parses source with parse.
func New(parse Parser, opts ...Option) *Compiler {
	c := &Compiler{
		logger:         tmlog.NopLogger{},
		maxImportDepth: 64,
		parse:          parse,
		modules:        make(map[string]*Module),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// compileModule takes an already absolute, cleaned path; it returns the
// cached Module's type scope if already declared, otherwise parses and
// declare-phases it and inserts it into the cache before recursing into
// its own imports — the insert-before-recurse discipline that keeps an
// import cycle from looping forever.
func (c *Compiler) compileModule(absPath string) (*scope.Scope[tmtype.Type], error) {
	if m, ok := c.modules[absPath]; ok {
		return m.TypeScope, nil
	}

	if c.importDepth >= c.maxImportDepth {
		return nil, &tmerrors.InvariantViolationError{
			Component: "compiler",
			Message:   "import chain exceeded the configured maximum depth",
		}
	}
	c.importDepth++
	defer func() { c.importDepth-- }()

	src, err := os.ReadFile(absPath)
	if err != nil {
		return nil, &tmerrors.FileNotFoundError{Path: absPath, Cause: err}
	}

	tree, err := c.parse(absPath, src)
	if err != nil {
		return nil, err
	}

	m := &Module{Path: absPath, TypeScope: scope.New[tmtype.Type](), OptionScope: scope.New[tmoption.Option]()}
	c.modules[absPath] = m // insert before recursing: a cyclic import sees this entry and stops

	// Pass m's own scopes into the walker rather than letting it allocate
	// its own: a cyclic importer that reenters compileModule for absPath
	// mid-walk gets back m.TypeScope, which must be the exact object the
	// walker is declaring into so it observes every declaration made so
	// far, not an empty placeholder that only fills in after this walk
	// returns.
	dw := walker.NewDeclPhaseWalker(filepath.Dir(absPath), c.compileModule, &m.Bag, m.TypeScope, m.OptionScope)
	cst.Walk(tree, dw)

	c.logger.Debug("declared module", "path", absPath, "types", m.TypeScope.Len())
	return m.TypeScope, nil
}

// Compile declare-phases rootPath and everything it imports, then runs the
// ref phase over the root file's own CST, returning the resolved Document
// together with every diagnostic accumulated across the whole import
// graph.
func (c *Compiler) Compile(rootPath string) (*document.Document, []diagnostic.Diagnostic, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, nil, err
	}
	absRoot = filepath.Clean(absRoot)

	if c.baseDir == "" {
		c.baseDir = filepath.Dir(absRoot)
	}

	src, err := os.ReadFile(absRoot)
	if err != nil {
		return nil, nil, &tmerrors.FileNotFoundError{Path: absRoot, Cause: err}
	}
	tree, err := c.parse(absRoot, src)
	if err != nil {
		return nil, nil, err
	}

	if _, err := c.compileModule(absRoot); err != nil {
		return nil, nil, err
	}
	root := c.modules[absRoot]

	var diags diagnostic.Bag
	diags.PushAll(root.Diagnostics())

	rw := walker.NewRefPhaseWalker(absRoot, root.TypeScope, root.OptionScope, &diags)
	cst.Walk(tree, rw)

	return rw.Doc, diags.Diagnostics(), nil
}
