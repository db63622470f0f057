// Package scope provides the name-indexed declare/lookup table used for
// both the type scope and the option scope of a module. It is generic over
// the entity kind so the same insertion-ordered, declare-or-reject
// semantics serve tmtype.Type and tmoption.Option alike.
package scope

// Scope is an insertion-ordered name -> T map. Declare succeeds only if
// the name is not already present; the first successful declare for a
// name fixes its position in iteration order.
type Scope[T any] struct {
	order   []string
	entries map[string]T
}

// New creates an empty Scope.
func New[T any]() *Scope[T] {
	return &Scope[T]{entries: make(map[string]T)}
}

// Declare inserts name -> item if name is not already bound. It returns
// false, leaving the existing binding untouched, if name is already
// present.
func (s *Scope[T]) Declare(name string, item T) bool {
	if _, exists := s.entries[name]; exists {
		return false
	}
	s.entries[name] = item
	s.order = append(s.order, name)
	return true
}

// DeclareAs inserts an existing item under a possibly different name — the
// mechanism imports use to bind an aliased symbol. Same declare-or-reject
// semantics as Declare.
func (s *Scope[T]) DeclareAs(name string, item T) bool {
	return s.Declare(name, item)
}

// Lookup returns the item bound to name, if any.
func (s *Scope[T]) Lookup(name string) (T, bool) {
	item, ok := s.entries[name]
	return item, ok
}

// Len returns the number of declared names.
func (s *Scope[T]) Len() int {
	return len(s.order)
}

// Iterate calls fn for each (name, item) pair in first-declare order.
// Iteration stops early if fn returns false.
func (s *Scope[T]) Iterate(fn func(name string, item T) bool) {
	for _, name := range s.order {
		if !fn(name, s.entries[name]) {
			return
		}
	}
}

// Names returns the declared names in first-declare order.
func (s *Scope[T]) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
