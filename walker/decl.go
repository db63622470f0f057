package walker

import (
	"fmt"

	"github.com/toolman-lang/toolman/cst"
	"github.com/toolman-lang/toolman/diagnostic"
	"github.com/toolman-lang/toolman/imports"
	"github.com/toolman-lang/toolman/internal/identname"
	"github.com/toolman-lang/toolman/scope"
	"github.com/toolman-lang/toolman/tmoption"
	"github.com/toolman-lang/toolman/tmtype"
)

// DeclPhaseWalker is the first of the two listener passes over a module's
// CST. It only ever creates empty struct/enum shells and resolves
// imports — no field is populated and no reference is followed, which is
// what lets earlier struct/enum declarations in the same file refer forward
// to ones that appear later in source order.
type DeclPhaseWalker struct {
	cst.BaseListener

	TypeScope   *scope.Scope[tmtype.Type]
	OptionScope *scope.Scope[tmoption.Option]
	Diags       *diagnostic.Bag

	baseDir       string
	compileModule imports.CompileModuleFunc
	declaredNames []string
	currentImport *imports.ImportBuilder
	pendingAlias  string
}

// NewDeclPhaseWalker creates a walker that resolves relative import paths
// against baseDir and compiles imported modules via compileModule,
// declaring into typeScope/optionScope as it walks. The caller supplies
// these scopes (rather than the walker allocating its own) so a module
// cache can publish the same, live scope object a cyclic importer will
// observe mid-walk — the scope fills in as declarations are made, instead
// of only becoming visible once the whole walk finishes. The option scope
// is pre-populated with the built-in options.
func NewDeclPhaseWalker(baseDir string, compileModule imports.CompileModuleFunc, diags *diagnostic.Bag, typeScope *scope.Scope[tmtype.Type], optionScope *scope.Scope[tmoption.Option]) *DeclPhaseWalker {
	w := &DeclPhaseWalker{
		TypeScope:     typeScope,
		OptionScope:   optionScope,
		Diags:         diags,
		baseDir:       baseDir,
		compileModule: compileModule,
	}
	for _, name := range tmoption.Builtins() {
		opt, _ := tmoption.Builtin(name)
		w.OptionScope.Declare(name, *opt)
	}
	return w
}

func (w *DeclPhaseWalker) Enter(n cst.Node) {
	switch n.Kind() {
	case KindStructDecl:
		w.declareType(n, true)
	case KindEnumDecl:
		w.declareType(n, false)
	case KindImportStatement:
		w.currentImport = imports.NewImportBuilder(n.Text())
	case KindImportName:
		w.enterImportName(n)
	}
}

func (w *DeclPhaseWalker) Exit(n cst.Node) {
	if n.Kind() == KindImportStatement && w.currentImport != nil {
		imp := w.currentImport.Flush()
		imports.Resolve(imp, w.baseDir, w.TypeScope, w.compileModule, w.Diags, n.Range())
		w.currentImport = nil
	}
}

func (w *DeclPhaseWalker) enterImportName(n cst.Node) {
	if w.currentImport == nil {
		return
	}
	if n.Text() == "*" {
		w.currentImport.SetStar()
		return
	}
	alias := ""
	for _, child := range n.Children() {
		if child.Kind() == KindImportAlias {
			alias = child.Text()
		}
	}
	w.currentImport.AddName(n.Text(), alias)
}

func (w *DeclPhaseWalker) declareType(n cst.Node, isStruct bool) {
	name := identname.Normalize(n.Text())
	loc := n.Range()

	for _, existing := range w.declaredNames {
		if identname.CasingConflict(name, existing) {
			w.Diags.Push(diagnostic.NewAmbiguousTypeCasing(name, existing, loc))
		}
	}

	var shell tmtype.Type
	kindWord := "struct"
	if isStruct {
		shell = tmtype.NewStruct(name, true, loc)
	} else {
		kindWord = "enum"
		shell = tmtype.NewEnum(name, true, loc)
	}

	if !w.TypeScope.Declare(name, shell) {
		w.Diags.Push(diagnostic.NewDuplicateTypeDecl(fmt.Sprintf("%s %s", kindWord, name), loc))
		return
	}
	w.declaredNames = append(w.declaredNames, name)
}
