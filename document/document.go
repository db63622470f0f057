// Package document holds the final compiled output of a Toolman module:
// every struct, enum, option, and API group successfully resolved by the
// ref phase, in declaration order, plus the originating source path.
package document

import (
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/toolman-lang/toolman/tmapi"
	"github.com/toolman-lang/toolman/tmoption"
	"github.com/toolman-lang/toolman/tmtype"
)

// Document is the root artifact a successful (or best-effort) compilation
// produces. Insertion order matches declaration order in source, which
// back-end generators rely on to produce stable output.
type Document struct {
	Source    string
	Structs   []*tmtype.StructType
	Enums     []*tmtype.EnumType
	Options   []tmoption.Option
	ApiGroups []*tmapi.ApiGroup
}

// New creates an empty Document for the given source path.
func New(source string) *Document {
	return &Document{Source: source}
}

// summary is the YAML-serializable view of a Document — the tmtype/tmapi
// value shapes are not round-trippable through yaml directly (Type is an
// interface, and struct/enum fields hold Type values), so MarshalYAML
// renders a flattened, descriptive projection rather than the live object
// graph.
type summary struct {
	Source  string         `yaml:"source"`
	Structs []structDesc   `yaml:"structs,omitempty"`
	Enums   []enumDesc     `yaml:"enums,omitempty"`
	Options []optionDesc   `yaml:"options,omitempty"`
	Apis    []apiGroupDesc `yaml:"api_groups,omitempty"`
}

type fieldDesc struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional,omitempty"`
}

type structDesc struct {
	Name   string      `yaml:"name"`
	Fields []fieldDesc `yaml:"fields,omitempty"`
}

type enumFieldDesc struct {
	Name  string `yaml:"name"`
	Value int32  `yaml:"value"`
}

type enumDesc struct {
	Name   string          `yaml:"name"`
	Fields []enumFieldDesc `yaml:"fields,omitempty"`
}

type optionDesc struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

type apiDesc struct {
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
}

type apiGroupDesc struct {
	Name string    `yaml:"name"`
	Apis []apiDesc `yaml:"apis,omitempty"`
}

// MarshalYAML renders a descriptive summary of the Document suitable for
// snapshot tests and debugging output.
func (d *Document) MarshalYAML() (any, error) {
	s := summary{Source: d.Source}

	for _, st := range d.Structs {
		fd := structDesc{Name: st.Name()}
		for _, f := range st.Fields() {
			typeStr := "?"
			if f.Type != nil {
				typeStr = f.Type.String()
			}
			fd.Fields = append(fd.Fields, fieldDesc{Name: f.Name, Type: typeStr, Optional: f.Optional})
		}
		s.Structs = append(s.Structs, fd)
	}

	for _, e := range d.Enums {
		ed := enumDesc{Name: e.Name()}
		for _, f := range e.Fields() {
			ed.Fields = append(ed.Fields, enumFieldDesc{Name: f.Name, Value: f.Value})
		}
		s.Enums = append(s.Enums, ed)
	}

	for _, opt := range d.Options {
		od := optionDesc{Name: opt.Name, Kind: opt.Kind.String()}
		switch opt.Kind {
		case tmoption.Bool:
			od.Value = yamlBool(opt.BoolValue)
		case tmoption.Numeric:
			od.Value = strconv.FormatFloat(opt.NumericValue, 'g', -1, 64)
		case tmoption.String:
			od.Value = opt.StringValue
		}
		s.Options = append(s.Options, od)
	}

	for _, g := range d.ApiGroups {
		gd := apiGroupDesc{Name: g.GroupName}
		for _, a := range g.APIs {
			gd.Apis = append(gd.Apis, apiDesc{Method: a.Method.String(), Path: a.Path})
		}
		s.Apis = append(s.Apis, gd)
	}

	return s, nil
}

// Marshal renders the Document to YAML bytes via its summary projection.
func Marshal(d *Document) ([]byte, error) {
	return yaml.Marshal(d)
}

func yamlBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
