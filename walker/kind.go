package walker

import "github.com/toolman-lang/toolman/cst"

// Node kinds the two-phase walker dispatches on. The concrete
// lexer/parser/grammar that produces the CST is an external collaborator;
// these constants fix the contract the walker expects it to honor.
const (
	KindDocument cst.Kind = iota
	KindImportStatement
	KindImportName
	KindImportAlias
	KindIdentifier
	KindOptionStatement
	KindStructDecl
	KindEnumDecl
	KindStructField
	KindEnumField
	KindDocComment

	// Field-type nodes, consumed by the FieldTypeBuilder.
	KindListType
	KindMapType
	KindPrimitiveType
	KindCustomTypeName
	KindOneofType
	KindListElementPosition
	KindMapKeyPosition
	KindMapValuePosition

	// API nodes.
	KindApiGroup
	KindApi
	KindApiPathLiteral
	KindApiPathParam
	KindApiBodyType
	KindApiReturn
	KindApiReturnType

	// Literal value nodes carried by option statements and enum fields.
	KindBoolLiteral
	KindStringLiteral
	KindNumericLiteral
)
