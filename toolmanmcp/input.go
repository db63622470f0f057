package toolmanmcp

import (
	"fmt"
	"os"
)

// sourceInput is the two ways a Toolman module can be handed to a tool:
// a path to a .tm file on disk, or its content inline. Exactly one must
// be set.
type sourceInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a .tm source file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline .tm source content"`
}

// resolve returns the path to compile and, for inline content, a temp file
// holding it (the compiler always reads a root file by path). The temp
// file's cleanup func is returned so the caller can defer it.
func (s sourceInput) resolve() (path string, cleanup func(), err error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return "", nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if s.File != "" {
		return s.File, func() {}, nil
	}

	if int64(len(s.Content)) > cfg.MaxInlineSize {
		return "", nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set TOOLMAN_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	f, err := os.CreateTemp("", "toolman-mcp-*.tm")
	if err != nil {
		return "", nil, err
	}
	if _, err := f.WriteString(s.Content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, err
	}
	return f.Name(), func() { os.Remove(f.Name()) }, nil
}
