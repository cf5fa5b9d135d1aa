package typeinfo

import "github.com/leap-fish/ntype/typeid"

type operation int

const (
	opSeq operation = iota
	opHash
	opName
)

// vtable answers identity queries for the one type it was built for.
// opName writes into to; the other operations return their value.
type vtable func(op operation, to *string) typeid.ID

// Info is a type-erased handle to the identity of a single type.
//
// The zero Info is empty: it is not bound to any type and answers every
// query with a zero value. Info is comparable and cheap to copy, so it can be
// used as a map key. Two handles from the same registry for the same type
// hold the same dispatcher and therefore compare == as well as Equal.
type Info struct {
	vt *vtable
}

// Valid reports whether the handle is bound to a type.
func (i Info) Valid() bool {
	return i.vt != nil
}

// Seq returns the sequential identifier of the bound type.
func (i Info) Seq() typeid.ID {
	if i.vt == nil {
		return 0
	}
	return (*i.vt)(opSeq, nil)
}

// Hash returns the hash identifier of the bound type.
func (i Info) Hash() typeid.ID {
	if i.vt == nil {
		return 0
	}
	return (*i.vt)(opHash, nil)
}

// Name returns the canonical name of the bound type.
func (i Info) Name() string {
	var name string
	if i.vt != nil {
		(*i.vt)(opName, &name)
	}
	return name
}

// Equal reports whether both handles have the same hash identifier.
//
// Different types whose names coincide, or whose fallback sequence ids
// coincide across registries with separate counters, are reported equal.
// Compare Name as well where that matters.
func (i Info) Equal(other Info) bool {
	return i.Hash() == other.Hash()
}

// String returns the canonical name, so an empty handle prints as "".
func (i Info) String() string {
	return i.Name()
}
