// Package tmapi models the `api` declarations a Toolman document collects:
// HTTP method, path (with embedded path parameters), a request body type,
// and a set of status-code-to-response-type mappings, grouped by the
// `api group "name" { ... }` block that contains them.
package tmapi

import (
	"github.com/toolman-lang/toolman/location"
	"github.com/toolman-lang/toolman/tmtype"
)

// HttpMethod enumerates the HTTP verbs an api declaration may use.
type HttpMethod int

const (
	GET HttpMethod = iota
	POST
	DELETE
	PUT
	PATCH
	HEAD
	OPTIONS
	TRACE
	CONNECT
)

func (m HttpMethod) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	case DELETE:
		return "DELETE"
	case PUT:
		return "PUT"
	case PATCH:
		return "PATCH"
	case HEAD:
		return "HEAD"
	case OPTIONS:
		return "OPTIONS"
	case TRACE:
		return "TRACE"
	case CONNECT:
		return "CONNECT"
	default:
		return "UNKNOWN"
	}
}

// PathParam is a `{name}` placeholder found in an api's path, resolved to
// the struct field of the same name it stands for.
type PathParam struct {
	Field     tmtype.Field
	PosInPath int
}

// ApiReturn maps one status code to the type of the response body sent
// with it.
type ApiReturn struct {
	StatusCode uint16
	RespType   tmtype.Type
}

// Api is one `method path { ... }` declaration inside an ApiGroup.
type Api struct {
	Method     HttpMethod
	Path       string
	PathParams []PathParam
	BodyType   tmtype.Type
	Returns    []ApiReturn
	Location   location.Range
}

// ApiGroup is an `api group "name" { ... }` block: a named collection of
// Api declarations that share a path prefix by convention, not by
// enforcement — the base document keeps groups as siblings, not a tree.
type ApiGroup struct {
	GroupName string
	APIs      []Api
	Location  location.Range
}
