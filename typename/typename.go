// Package typename derives human readable type names by stripping the
// decoration from a signature string.
//
// The signature of a type T is the runtime string of the function type
// func(T), e.g. "func(main.Position)". The name is whatever sits between the
// prefix and suffix markers. Names use the package name, not the import path,
// so two types named alike in packages with the same name share a name.
//
// Building with the ntype_noname tag turns extraction off: Of then returns ""
// for every type.
package typename

import (
	"reflect"
	"strings"
)

// Extractor cuts a name out of a decorated signature.
type Extractor struct {
	// Prefix is the marker right before the name. The first occurrence is used.
	Prefix string
	// Suffix is the marker right after the name. The last occurrence is used.
	Suffix string
}

// Default matches signatures produced by Signature.
var Default = Extractor{Prefix: "func(", Suffix: ")"}

// Extract returns the text between the markers, skipping spaces right after
// the prefix. A missing marker gives "".
func (e Extractor) Extract(signature string) string {
	first := strings.Index(signature, e.Prefix)
	if first < 0 {
		return ""
	}
	first += len(e.Prefix)
	for first < len(signature) && signature[first] == ' ' {
		first++
	}

	last := strings.LastIndex(signature, e.Suffix)
	if last < first {
		return ""
	}
	return signature[first:last]
}

// Available reports whether this build extracts names.
func Available() bool {
	return available
}

// Signature returns the decorated signature for t.
func Signature(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return reflect.FuncOf([]reflect.Type{t}, nil, false).String()
}

// Of returns the canonical name of t, or "" if names are unavailable.
func Of(t reflect.Type) string {
	if !available || t == nil {
		return ""
	}
	return Default.Extract(Signature(t))
}
