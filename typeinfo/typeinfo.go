// Package typeinfo gives every Go type a sequential identifier, a hash
// identifier and a name.
//
// All three are derived lazily the first time a type is queried and are
// memoized for the rest of the process. Concurrent first use is safe: exactly
// one sequential identifier is ever allocated per type and registry.
//
//	info := typeinfo.Of[Position]()
//	info.Seq()  // 0, 1, 2... in first-request order
//	info.Hash() // fingerprint of info.Name()
//	info.Name() // "game.Position"
//
// The hash identifier only depends on the type's name, so it agrees between
// binaries built from the same source. The sequential identifier depends on
// request order and is only valid within one process.
package typeinfo

import (
	"reflect"

	"github.com/leap-fish/ntype/typeid"
)

// TypeOf returns the reflect.Type of T. Unlike reflect.TypeOf on a zero value
// it works for interface types too.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Seq returns the sequential identifier of T in the Default registry.
func Seq[T any]() typeid.ID {
	return Default.Seq(TypeOf[T]())
}

// Hash returns the hash identifier of T in the Default registry.
func Hash[T any]() typeid.ID {
	return Default.Hash(TypeOf[T]())
}

// Name returns the canonical name of T.
func Name[T any]() string {
	return Default.Name(TypeOf[T]())
}

// Of returns a handle bound to T in the Default registry.
func Of[T any]() Info {
	return Default.Type(TypeOf[T]())
}

// SeqIn returns the sequential identifier of T in r.
func SeqIn[T any](r *Registry) typeid.ID {
	return r.Seq(TypeOf[T]())
}

// HashIn returns the hash identifier of T in r.
func HashIn[T any](r *Registry) typeid.ID {
	return r.Hash(TypeOf[T]())
}

// NameIn returns the canonical name of T in r.
func NameIn[T any](r *Registry) string {
	return r.Name(TypeOf[T]())
}

// OfIn returns a handle bound to T in r.
func OfIn[T any](r *Registry) Info {
	return r.Type(TypeOf[T]())
}
