package internal

import "strings"

// overrideFrame is the body of an Override node, keyed by the parent
// template it overrides
type overrideFrame struct {
	parent string
	body   AST
}

// scope is the state threaded through a render: the context stack and the
// override stack, both innermost last. Extending a scope copies, so sibling
// subtrees never observe each other's entries.
type scope struct {
	contexts  []Value
	overrides []overrideFrame
}

func newScope(data Value) scope {
	return scope{contexts: []Value{data}}
}

func (s scope) withContext(v Value) scope {
	contexts := make([]Value, len(s.contexts), len(s.contexts)+1)
	copy(contexts, s.contexts)
	return scope{
		contexts:  append(contexts, v),
		overrides: s.overrides,
	}
}

func (s scope) withOverride(parent string, body AST) scope {
	overrides := make([]overrideFrame, len(s.overrides), len(s.overrides)+1)
	copy(overrides, s.overrides)
	return scope{
		contexts:  s.contexts,
		overrides: append(overrides, overrideFrame{parent: parent, body: body}),
	}
}

// top returns the innermost context
func (s scope) top() Value {
	if len(s.contexts) == 0 {
		return NullValue()
	}
	return s.contexts[len(s.contexts)-1]
}

// lookup resolves a dotted path. The first component is searched through
// the whole context stack, innermost first; each following component is
// looked up in the previous result only.
func (s scope) lookup(path string) (Value, bool) {
	if path == StrDot {
		return s.top(), true
	}

	parts := splitPath(path)
	if len(parts) == 0 {
		return s.top(), true
	}

	value, ok := s.find(parts[0])
	for _, part := range parts[1:] {
		if !ok {
			break
		}
		value, ok = value.Get(part)
	}
	return value, ok
}

// find returns the value of key in the innermost map context holding it
func (s scope) find(key string) (Value, bool) {
	for i := len(s.contexts) - 1; i >= 0; i-- {
		if v, ok := s.contexts[i].Get(key); ok {
			return v, true
		}
	}
	return Value{}, false
}

// splitPath splits on dots, dropping empty components
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '.'
	})
}
