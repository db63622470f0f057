package builder

import (
	"github.com/toolman-lang/toolman/diagnostic"
	"github.com/toolman-lang/toolman/tmtype"
)

// The custom-type builders below are separate thin wrappers around the
// AppendField methods of tmtype.StructType, tmtype.EnumType and
// tmtype.OneofType rather than a single generic implementation (enum fields
// are value-keyed, struct/oneof fields are name-keyed; the duplicate check
// differs in kind, not just in T).

// StructFieldBuilder assembles a StructType's fields one at a time.
type StructFieldBuilder struct {
	current      *tmtype.StructType
	currentField *tmtype.Field
	diags        *diagnostic.Bag
}

func NewStructFieldBuilder(diags *diagnostic.Bag) *StructFieldBuilder {
	return &StructFieldBuilder{diags: diags}
}

// StartCustom begins assembling s, returned by EndCustom once all fields
// have been appended.
func (b *StructFieldBuilder) StartCustom(s *tmtype.StructType) { b.current = s }

// StartField stashes f; its type and optional bit are filled in by
// SetCurrentFieldType/SetCurrentFieldOptional before EndField appends it.
func (b *StructFieldBuilder) StartField(f tmtype.Field) { b.currentField = &f }

func (b *StructFieldBuilder) SetCurrentFieldType(t tmtype.Type) {
	if b.currentField != nil {
		b.currentField.Type = t
	}
}

func (b *StructFieldBuilder) SetCurrentFieldOptional(optional bool) {
	if b.currentField != nil {
		b.currentField.Optional = optional
	}
}

// EndField appends the stashed field to the current struct, emitting
// DuplicateFieldDecl instead if its name collides with one already present.
func (b *StructFieldBuilder) EndField() {
	if b.currentField == nil || b.current == nil {
		return
	}
	f := *b.currentField
	if !b.current.AppendField(f) {
		b.diags.Push(diagnostic.NewDuplicateFieldDecl(f.Name, f.Location))
	}
	b.currentField = nil
}

// EndCustom returns the struct assembled since the last StartCustom.
func (b *StructFieldBuilder) EndCustom() *tmtype.StructType {
	s := b.current
	b.current = nil
	return s
}

// EnumFieldBuilder assembles an EnumType's fields one at a time.
type EnumFieldBuilder struct {
	current *tmtype.EnumType
	diags   *diagnostic.Bag
}

func NewEnumFieldBuilder(diags *diagnostic.Bag) *EnumFieldBuilder {
	return &EnumFieldBuilder{diags: diags}
}

func (b *EnumFieldBuilder) StartCustom(e *tmtype.EnumType) { b.current = e }

// AppendField appends f, emitting DuplicateEnumFieldValue if its
// discriminant value is already used within the enum.
func (b *EnumFieldBuilder) AppendField(f tmtype.EnumField) {
	if b.current == nil {
		return
	}
	if !b.current.AppendField(f) {
		b.diags.Push(diagnostic.NewDuplicateEnumFieldValue(f.Value, f.Location))
	}
}

func (b *EnumFieldBuilder) EndCustom() *tmtype.EnumType {
	e := b.current
	b.current = nil
	return e
}

// OneofFieldBuilder assembles a OneofType's arms one at a time; it mirrors
// StructFieldBuilder since oneof arms are Fields too, but stays distinct
// because a oneof never itself becomes the outer "current custom" that
// enterStructDecl/enterEnumDecl pull from the declare-phase scope — it is
// always nested inside a struct field.
type OneofFieldBuilder struct {
	current      *tmtype.OneofType
	currentField *tmtype.Field
	diags        *diagnostic.Bag
}

func NewOneofFieldBuilder(diags *diagnostic.Bag) *OneofFieldBuilder {
	return &OneofFieldBuilder{diags: diags}
}

func (b *OneofFieldBuilder) StartOneof(o *tmtype.OneofType) { b.current = o }

func (b *OneofFieldBuilder) StartField(f tmtype.Field) { b.currentField = &f }

func (b *OneofFieldBuilder) SetCurrentFieldType(t tmtype.Type) {
	if b.currentField != nil {
		b.currentField.Type = t
	}
}

func (b *OneofFieldBuilder) EndField() {
	if b.currentField == nil || b.current == nil {
		return
	}
	f := *b.currentField
	if !b.current.AppendField(f) {
		b.diags.Push(diagnostic.NewDuplicateFieldDecl(f.Name, f.Location))
	}
	b.currentField = nil
}

func (b *OneofFieldBuilder) EndOneof() *tmtype.OneofType {
	o := b.current
	b.current = nil
	return o
}
