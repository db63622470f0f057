// Package generator defines the dispatch contract between a compiled
// Document and the concrete code-generator back ends that render it into a
// target language. The back ends themselves are external collaborators;
// this package only selects and invokes one.
package generator

import (
	"fmt"
	"io"

	"github.com/toolman-lang/toolman/document"
)

// TargetLanguage names a code-generator back end.
type TargetLanguage int

const (
	Go TargetLanguage = iota
	TypeScript
	Java
)

func (t TargetLanguage) String() string {
	switch t {
	case Go:
		return "go"
	case TypeScript:
		return "typescript"
	case Java:
		return "java"
	default:
		return "unknown"
	}
}

// Backend renders a compiled Document for one target language.
type Backend interface {
	Language() TargetLanguage
	Generate(doc *document.Document, w io.Writer) error
}

// Dispatch selects the registered backend matching lang and runs it against
// doc, writing generated output to w. It returns an error if no backend for
// lang has been registered.
func Dispatch(backends []Backend, lang TargetLanguage, doc *document.Document, w io.Writer) error {
	for _, b := range backends {
		if b.Language() == lang {
			return b.Generate(doc, w)
		}
	}
	return fmt.Errorf("generator: no backend registered for target language %s", lang)
}
