package toolmanmcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/toolman-lang/toolman/diagnostic"
	"github.com/toolman-lang/toolman/document"
)

type compileInput struct {
	Source sourceInput `json:"source" jsonschema:"The Toolman module to compile"`
}

type diagnosticOutput struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Level   string `json:"level"`
	Source  string `json:"source"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

type compileOutput struct {
	Success     bool               `json:"success"`
	Diagnostics []diagnosticOutput `json:"diagnostics,omitempty"`
	Document    string             `json:"document,omitempty"`
}

func handleCompile(_ context.Context, _ *mcp.CallToolRequest, input compileInput) (*mcp.CallToolResult, compileOutput, error) {
	path, cleanup, err := input.Source.resolve()
	if err != nil {
		return errResult(err), compileOutput{}, nil
	}
	defer cleanup()

	doc, diags, err := newCompiler().Compile(path)
	if err != nil {
		return errResult(err), compileOutput{}, nil
	}

	out := compileOutput{Success: !diagnostic.HasFatal(diags)}
	for _, d := range diags {
		out.Diagnostics = append(out.Diagnostics, diagnosticOutput{
			Kind:    d.Kind.String(),
			Message: d.Message,
			Level:   d.Level.String(),
			Source:  d.Location.Source,
			Line:    d.Location.StartLine,
			Column:  d.Location.StartCol,
		})
	}

	if out.Success {
		body, err := document.Marshal(doc)
		if err != nil {
			return errResult(err), compileOutput{}, nil
		}
		out.Document = string(body)
	}

	return nil, out, nil
}
