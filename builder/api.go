package builder

import (
	"strings"

	"github.com/toolman-lang/toolman/diagnostic"
	"github.com/toolman-lang/toolman/tmapi"
	"github.com/toolman-lang/toolman/tmtype"
)

// ApiBuilder assembles ApiGroup/Api/PathParam/ApiReturn values from the
// ref-phase walker's event stream, the same start/end bracketing pattern
// as the custom-type builders but specialized to the Api shape.
type ApiBuilder struct {
	currentGroup *tmapi.ApiGroup
	currentApi   *tmapi.Api
	pathBuilder  strings.Builder
	currentField *tmtype.Field
	diags        *diagnostic.Bag
}

func NewApiBuilder(diags *diagnostic.Bag) *ApiBuilder {
	return &ApiBuilder{diags: diags}
}

func (b *ApiBuilder) StartApiGroup(g *tmapi.ApiGroup) { b.currentGroup = g }

func (b *ApiBuilder) EndApiGroup() *tmapi.ApiGroup {
	g := b.currentGroup
	b.currentGroup = nil
	return g
}

func (b *ApiBuilder) StartApi(method tmapi.HttpMethod, bodyType tmtype.Type) {
	b.currentApi = &tmapi.Api{Method: method, BodyType: bodyType}
	b.pathBuilder.Reset()
}

// SetBodyType sets the request body type for the api currently being
// assembled — called once the FieldTypeBuilder finishes resolving it,
// which may happen after StartApi if the body type node follows the
// method/path in source order.
func (b *ApiBuilder) SetBodyType(t tmtype.Type) {
	if b.currentApi != nil {
		b.currentApi.BodyType = t
	}
}

// AppendPath appends the next literal piece of the URL path as it is
// walked left to right.
func (b *ApiBuilder) AppendPath(piece string) {
	b.pathBuilder.WriteString(piece)
}

// EndPath fixes the api's path to everything appended since StartApi.
func (b *ApiBuilder) EndPath() {
	if b.currentApi != nil {
		b.currentApi.Path = b.pathBuilder.String()
	}
}

// StartField stashes a path-param field; its position in the path is
// recorded at EndField time, by which point the full path text assembled
// so far reflects the field's placement.
func (b *ApiBuilder) StartField(f tmtype.Field) { b.currentField = &f }

// SetCurrentFieldType plugs the resolved type into the path-param field
// stashed by StartField.
func (b *ApiBuilder) SetCurrentFieldType(t tmtype.Type) {
	if b.currentField != nil {
		b.currentField.Type = t
	}
}

func (b *ApiBuilder) EndField() {
	if b.currentField == nil || b.currentApi == nil {
		return
	}
	f := *b.currentField
	for _, existing := range b.currentApi.PathParams {
		if existing.Field.Name == f.Name {
			b.diags.Push(diagnostic.NewDuplicatePathParamDecl(f.Name, f.Location))
			b.currentField = nil
			return
		}
	}
	b.currentApi.PathParams = append(b.currentApi.PathParams, tmapi.PathParam{
		Field:     f,
		PosInPath: b.pathBuilder.Len(),
	})
	b.currentField = nil
}

// InsertApiReturn records a status-code-to-type mapping for the api
// currently being assembled.
func (b *ApiBuilder) InsertApiReturn(statusCode uint16, respType tmtype.Type) {
	if b.currentApi == nil {
		return
	}
	b.currentApi.Returns = append(b.currentApi.Returns, tmapi.ApiReturn{
		StatusCode: statusCode,
		RespType:   respType,
	})
}

// EndApi returns the completed api and appends it to the group currently
// open, if any.
func (b *ApiBuilder) EndApi() *tmapi.Api {
	a := b.currentApi
	b.currentApi = nil
	if a != nil && b.currentGroup != nil {
		b.currentGroup.APIs = append(b.currentGroup.APIs, *a)
	}
	return a
}
