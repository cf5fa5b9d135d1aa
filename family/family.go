// Package family assigns sequential identifiers to types within independent
// families. Every family counts from 0 on its own, so the same type usually
// gets different identifiers in different families and identifiers from two
// families must never be compared with each other.
//
//	type components struct{}
//	type events struct{}
//
//	family.Type[components, Position]() // 0
//	family.Type[events, Collision]()    // 0 as well
//
// Type identifies a single type. To identify a group of types together,
// pass a composite such as struct{ a A; b B } as T.
package family

import (
	"reflect"
	"sync"

	"github.com/leap-fish/ntype/internal/syncx"
	"github.com/leap-fish/ntype/seq"
	"github.com/leap-fish/ntype/typeid"
	"github.com/leap-fish/ntype/typeinfo"
)

var families syncx.Map[reflect.Type, func() *typeinfo.Registry]

// Registry returns the registry backing the family named by Tag.
func Registry[Tag any]() *typeinfo.Registry {
	tag := typeinfo.TypeOf[Tag]()
	if get, ok := families.Load(tag); ok {
		return get()
	}

	get, _ := families.LoadOrStore(tag, sync.OnceValue(func() *typeinfo.Registry {
		return typeinfo.New(
			typeinfo.WithLabel(tag.String()),
			typeinfo.WithCounter(&seq.Counter{}),
		)
	}))
	return get()
}

// Type returns the identifier of T within the family named by Tag.
func Type[Tag, T any]() typeid.ID {
	return typeinfo.SeqIn[T](Registry[Tag]())
}

// Of returns a handle to T within the family named by Tag.
func Of[Tag, T any]() typeinfo.Info {
	return typeinfo.OfIn[T](Registry[Tag]())
}
