package walker

import (
	"strconv"
	"strings"

	"github.com/toolman-lang/toolman/cst"
	"github.com/toolman-lang/toolman/diagnostic"
	"github.com/toolman-lang/toolman/document"
	"github.com/toolman-lang/toolman/internal/optvalidate"
	"github.com/toolman-lang/toolman/location"
	"github.com/toolman-lang/toolman/scope"
	"github.com/toolman-lang/toolman/tmapi"
	"github.com/toolman-lang/toolman/tmoption"
	"github.com/toolman-lang/toolman/tmtype"

	"github.com/toolman-lang/toolman/builder"
)

// buildState tracks which custom-type body the ref phase is currently
// populating, so field/field-type events are routed to the right builder.
type buildState int

const (
	stateNone buildState = iota
	stateInStruct
	stateInEnum
	stateInOneof
	stateRecursiveOneofAbsorb
	stateInApiGroup
	stateInApi
)

// fieldTypeTarget is whatever builder currently wants the field type a
// FieldTypeBuilder finishes assembling — a struct/oneof field, or an api's
// body/path-param/return type.
type fieldTypeTarget int

const (
	targetNone fieldTypeTarget = iota
	targetStructField
	targetApiBody
	targetApiPathParam
	targetApiReturn
)

// RefPhaseWalker is the second listener pass: it resolves every reference
// against the scopes the declare phase built, populates struct/enum
// fields, collects options and API groups, and assembles the final
// Document. It never mutates the type scope it was handed.
type RefPhaseWalker struct {
	cst.BaseListener

	TypeScope   *scope.Scope[tmtype.Type]
	OptionScope *scope.Scope[tmoption.Option]
	Diags       *diagnostic.Bag
	Doc         *document.Document

	state       []buildState
	structs     *builder.StructFieldBuilder
	enums       *builder.EnumFieldBuilder
	oneofs      []*builder.OneofFieldBuilder
	oneofDepth  int
	fieldTypes  *builder.FieldTypeBuilder
	apis        *builder.ApiBuilder
	fieldTarget fieldTypeTarget

	pendingDocComments []string
	pendingOptionName  string
	pendingReturnCode  uint16
}

// NewRefPhaseWalker creates a walker over typeScope/optionScope — the
// scopes populated by the matching DeclPhaseWalker run — that appends
// into a fresh Document for source.
func NewRefPhaseWalker(source string, typeScope *scope.Scope[tmtype.Type], optionScope *scope.Scope[tmoption.Option], diags *diagnostic.Bag) *RefPhaseWalker {
	return &RefPhaseWalker{
		TypeScope:   typeScope,
		OptionScope: optionScope,
		Diags:       diags,
		Doc:         document.New(source),
		structs:     builder.NewStructFieldBuilder(diags),
		enums:       builder.NewEnumFieldBuilder(diags),
		fieldTypes:  builder.NewFieldTypeBuilder(diags),
		apis:        builder.NewApiBuilder(diags),
	}
}

func (w *RefPhaseWalker) currentState() buildState {
	if len(w.state) == 0 {
		return stateNone
	}
	return w.state[len(w.state)-1]
}

func (w *RefPhaseWalker) pushState(s buildState) { w.state = append(w.state, s) }

func (w *RefPhaseWalker) popState() {
	if len(w.state) > 0 {
		w.state = w.state[:len(w.state)-1]
	}
}

func (w *RefPhaseWalker) Enter(n cst.Node) {
	switch n.Kind() {
	case KindDocComment:
		w.pendingDocComments = append(w.pendingDocComments, stripDocMarkers(n.Text()))

	case KindStructDecl:
		w.enterCustomDecl(n, true)
	case KindEnumDecl:
		w.enterCustomDecl(n, false)

	case KindStructField:
		w.enterField(n, targetStructField)
	case KindEnumField:
		w.enterEnumField(n)

	case KindOneofType:
		w.enterOneof(n)

	case KindListType, KindMapType:
		w.fieldTypes.StartType(newComposite(n))
	case KindPrimitiveType:
		w.fieldTypes.StartType(primitiveFromText(n.Text(), n.Range()))
	case KindCustomTypeName:
		w.enterCustomTypeName(n)
	case KindListElementPosition:
		w.fieldTypes.SetPosition(ListElement)
	case KindMapKeyPosition:
		w.fieldTypes.SetPosition(MapKey)
	case KindMapValuePosition:
		w.fieldTypes.SetPosition(MapValue)

	case KindOptionStatement:
		w.pendingOptionName = n.Text()
	case KindBoolLiteral, KindStringLiteral, KindNumericLiteral:
		w.enterLiteral(n)

	case KindApiGroup:
		w.apis.StartApiGroup(&tmapi.ApiGroup{GroupName: n.Text(), Location: n.Range()})
		w.pushState(stateInApiGroup)
	case KindApi:
		w.apis.StartApi(httpMethodFromText(n.Text()), nil)
		w.pushState(stateInApi)
	case KindApiPathLiteral:
		w.apis.AppendPath(n.Text())
	case KindApiPathParam:
		w.enterField(n, targetApiPathParam)
	case KindApiBodyType:
		w.fieldTarget = targetApiBody
	case KindApiReturn:
		code, _ := strconv.ParseUint(n.Text(), 10, 16)
		w.pendingReturnCode = uint16(code)
	case KindApiReturnType:
		w.fieldTarget = targetApiReturn
	}
}

func (w *RefPhaseWalker) Exit(n cst.Node) {
	switch n.Kind() {
	case KindStructDecl:
		s := w.structs.EndCustom()
		if s != nil {
			w.Doc.Structs = append(w.Doc.Structs, s)
		}
		w.popState()
	case KindEnumDecl:
		e := w.enums.EndCustom()
		if e != nil {
			w.Doc.Enums = append(w.Doc.Enums, e)
		}
		w.popState()
	case KindStructField:
		w.exitField(targetStructField)
	case KindOneofType:
		w.exitOneof(n)
	case KindListType, KindMapType:
		if t := w.fieldTypes.EndMapOrList(); t != nil {
			w.applyFieldType(t)
		}
	case KindPrimitiveType, KindCustomTypeName:
		if t := w.fieldTypes.EndSingle(); t != nil {
			w.applyFieldType(t)
		}
	case KindOptionStatement:
		// handled in enterLiteral once the value node is seen
	case KindApiGroup:
		if g := w.apis.EndApiGroup(); g != nil {
			w.Doc.ApiGroups = append(w.Doc.ApiGroups, g)
		}
		w.popState()
	case KindApi:
		w.apis.EndPath()
		w.apis.EndApi()
		w.popState()
	case KindApiPathParam:
		w.exitField(targetApiPathParam)
	}
}

func (w *RefPhaseWalker) enterCustomDecl(n cst.Node, isStruct bool) {
	name := n.Text()
	shell, found := w.TypeScope.Lookup(name)
	if !found {
		return
	}
	if isStruct {
		if s, ok := shell.(*tmtype.StructType); ok {
			w.structs.StartCustom(s)
			w.pushState(stateInStruct)
		}
		return
	}
	if e, ok := shell.(*tmtype.EnumType); ok {
		w.enums.StartCustom(e)
		w.pushState(stateInEnum)
	}
}

func (w *RefPhaseWalker) enterField(n cst.Node, target fieldTypeTarget) {
	f := tmtype.Field{Name: n.Text(), Location: n.Range(), DocComments: w.pendingDocComments}
	w.pendingDocComments = nil
	w.fieldTarget = target

	switch target {
	case targetStructField:
		switch w.currentState() {
		case stateInOneof, stateRecursiveOneofAbsorb:
			if len(w.oneofs) > 0 {
				w.oneofs[len(w.oneofs)-1].StartField(f)
			}
		default:
			w.structs.StartField(f)
		}
	case targetApiPathParam:
		w.apis.StartField(f)
	}
}

func (w *RefPhaseWalker) exitField(target fieldTypeTarget) {
	switch target {
	case targetStructField:
		switch w.currentState() {
		case stateInOneof, stateRecursiveOneofAbsorb:
			if len(w.oneofs) > 0 {
				w.oneofs[len(w.oneofs)-1].EndField()
			}
		default:
			w.structs.EndField()
		}
	case targetApiPathParam:
		w.apis.EndField()
	}
}

func (w *RefPhaseWalker) enterEnumField(n cst.Node) {
	value, _ := strconv.ParseInt(n.Text(), 10, 32)
	f := tmtype.EnumField{Location: n.Range(), DocComments: w.pendingDocComments}
	w.pendingDocComments = nil
	for _, child := range n.Children() {
		if child.Kind() == KindIdentifier {
			f.Name = child.Text()
		}
	}
	f.Value = int32(value)
	w.enums.AppendField(f)
}

func (w *RefPhaseWalker) enterOneof(n cst.Node) {
	if w.currentState() == stateInOneof || w.currentState() == stateRecursiveOneofAbsorb {
		w.oneofDepth++
		w.Diags.Push(diagnostic.NewRecursiveOneof(n.Range()))
		w.pushState(stateRecursiveOneofAbsorb)
		return
	}
	ob := builder.NewOneofFieldBuilder(w.Diags)
	ob.StartOneof(tmtype.NewOneof(n.Range()))
	w.oneofs = append(w.oneofs, ob)
	w.pushState(stateInOneof)
}

func (w *RefPhaseWalker) exitOneof(n cst.Node) {
	top := w.currentState()
	w.popState()
	if top == stateRecursiveOneofAbsorb {
		w.oneofDepth--
		return
	}
	if len(w.oneofs) == 0 {
		return
	}
	ob := w.oneofs[len(w.oneofs)-1]
	w.oneofs = w.oneofs[:len(w.oneofs)-1]
	completed := ob.EndOneof()
	w.applyFieldType(completed)
}

func (w *RefPhaseWalker) enterCustomTypeName(n cst.Node) {
	t, found := w.TypeScope.Lookup(n.Text())
	if !found {
		w.Diags.Push(diagnostic.NewCustomTypeNotFound(n.Text(), n.Range()))
		return
	}
	w.fieldTypes.StartType(t)
}

func (w *RefPhaseWalker) applyFieldType(t tmtype.Type) {
	switch w.fieldTarget {
	case targetStructField:
		switch w.currentState() {
		case stateInOneof, stateRecursiveOneofAbsorb:
			if len(w.oneofs) > 0 {
				w.oneofs[len(w.oneofs)-1].SetCurrentFieldType(t)
			}
		default:
			w.structs.SetCurrentFieldType(t)
		}
	case targetApiBody:
		w.apis.SetBodyType(t)
	case targetApiPathParam:
		w.apis.SetCurrentFieldType(t)
	case targetApiReturn:
		w.apis.InsertApiReturn(w.pendingReturnCode, t)
	}
}

func (w *RefPhaseWalker) enterLiteral(n cst.Node) {
	if w.pendingOptionName == "" {
		return
	}
	name := w.pendingOptionName
	w.pendingOptionName = ""

	decl, found := w.OptionScope.Lookup(name)
	if !found {
		w.Diags.Push(diagnostic.NewUnknownOption(name, n.Range()))
		return
	}

	litKind, value := literalKindAndValue(n)
	if !optvalidate.MatchesKind(decl.Kind, litKind) {
		w.Diags.Push(diagnostic.NewOptionTypeMismatch(decl.Kind.String(), name, n.Range()))
		return
	}

	resolved := decl
	resolved.Location = n.Range()
	switch litKind {
	case tmoption.Bool:
		resolved.BoolValue = value == "true"
	case tmoption.Numeric:
		f, _ := strconv.ParseFloat(value, 64)
		resolved.NumericValue = f
	case tmoption.String:
		resolved.StringValue = value
	}
	w.Doc.Options = append(w.Doc.Options, resolved)
}

func literalKindAndValue(n cst.Node) (tmoption.Kind, string) {
	switch n.Kind() {
	case KindBoolLiteral:
		return tmoption.Bool, n.Text()
	case KindNumericLiteral:
		return tmoption.Numeric, n.Text()
	default:
		return tmoption.String, n.Text()
	}
}

func stripDocMarkers(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "/**")
	s = strings.TrimSuffix(s, "*/")
	s = strings.TrimPrefix(s, "///")
	return strings.TrimSpace(s)
}

func primitiveFromText(text string, loc location.Range) *tmtype.PrimitiveType {
	switch text {
	case "bool":
		return tmtype.NewPrimitive(tmtype.Bool, loc)
	case "i32":
		return tmtype.NewPrimitive(tmtype.I32, loc)
	case "u32":
		return tmtype.NewPrimitive(tmtype.U32, loc)
	case "i64":
		return tmtype.NewPrimitive(tmtype.I64, loc)
	case "u64":
		return tmtype.NewPrimitive(tmtype.U64, loc)
	case "float":
		return tmtype.NewPrimitive(tmtype.Float, loc)
	case "string":
		return tmtype.NewPrimitive(tmtype.StringKind, loc)
	default:
		return tmtype.NewPrimitive(tmtype.Any, loc)
	}
}

func newComposite(n cst.Node) tmtype.Type {
	if n.Kind() == KindListType {
		return tmtype.NewList(n.Range())
	}
	return tmtype.NewMap(n.Range())
}

func httpMethodFromText(text string) tmapi.HttpMethod {
	switch strings.ToUpper(text) {
	case "POST":
		return tmapi.POST
	case "DELETE":
		return tmapi.DELETE
	case "PUT":
		return tmapi.PUT
	case "PATCH":
		return tmapi.PATCH
	case "HEAD":
		return tmapi.HEAD
	case "OPTIONS":
		return tmapi.OPTIONS
	case "TRACE":
		return tmapi.TRACE
	case "CONNECT":
		return tmapi.CONNECT
	default:
		return tmapi.GET
	}
}
