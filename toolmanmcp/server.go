// Package toolmanmcp implements an MCP (Model Context Protocol) server
// that exposes the Toolman compiler as a single MCP tool over stdio.
package toolmanmcp

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/toolman-lang/toolman/compiler"
)

const serverInstructions = `toolman MCP server — compiles Toolman schema modules and reports diagnostics.

Configuration: defaults are configurable via TOOLMAN_* environment variables.
- TOOLMAN_MAX_IMPORT_DEPTH (default: 64) — import chain depth guard
- TOOLMAN_MAX_INLINE_SIZE (default: 1MiB) — inline content size limit

Lexing and parsing of the Toolman grammar itself is supplied by the host
process at startup, not by this server.`

var activeParse compiler.Parser

// Run starts the MCP server over stdio and blocks until the client
// disconnects or ctx is cancelled. parse supplies the concrete Toolman
// lexer/grammar; the server itself only drives the compiler.
func Run(ctx context.Context, parse compiler.Parser) error {
	activeParse = parse

	server := mcp.NewServer(
		&mcp.Implementation{Name: "toolman", Version: "0.1.0"},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compile_toolman_source",
		Description: "Compile a Toolman module (by file path or inline content) and return its resolved Document plus any diagnostics. Use source.file for a module on disk or source.content for inline text.",
	}, handleCompile)

	return server.Run(ctx, &mcp.StdioTransport{})
}

// newCompiler returns a fresh Compiler per call, since compiler.Compiler
// caches declared modules internally and a long-lived MCP session should
// not leak stale state across unrelated compile requests.
func newCompiler() *compiler.Compiler {
	return compiler.New(activeParse, compiler.WithMaxImportDepth(cfg.MaxImportDepth))
}

var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
