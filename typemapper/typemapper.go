package typemapper

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/hashicorp/go-msgpack/codec"
	"github.com/leap-fish/ntype/typeid"
	"github.com/leap-fish/ntype/typeinfo"
)

var (
	ErrCollision     = errors.New("type hash collision")
	ErrNotRegistered = errors.New("type is not registered")
)

// TypeMapper maps registered types to their hash identifiers and back, and
// serializes values prefixed with that identifier. Since the hash only
// depends on the type's name, a value written by one binary can be read by
// another binary that registered the same types.
// Note: Unexported members are supported,
// however embedded members will not be populated if also unexported.
type TypeMapper struct {
	registry *typeinfo.Registry

	typeToId map[reflect.Type]typeid.ID
	idToInfo map[typeid.ID]typeinfo.Info
	idToType map[typeid.ID]reflect.Type

	mapMutex sync.Mutex

	handle *codec.MsgpackHandle
}

// NewMapper initializes a type mapper over reg, using typeinfo.Default when
// reg is nil, and registers an instance of every given component.
func NewMapper(reg *typeinfo.Registry, components ...any) (*TypeMapper, error) {
	if reg == nil {
		reg = typeinfo.Default
	}

	db := &TypeMapper{
		registry: reg,
		typeToId: make(map[reflect.Type]typeid.ID, len(components)),
		idToInfo: make(map[typeid.ID]typeinfo.Info, len(components)),
		idToType: make(map[typeid.ID]reflect.Type, len(components)),
		handle:   &codec.MsgpackHandle{},
	}

	for _, component := range components {
		if _, err := db.Register(component); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// RegisterType registers componentType under its hash identifier.
// Registering the same type twice is a no-op.
func (db *TypeMapper) RegisterType(componentType reflect.Type) (typeid.ID, error) {
	if componentType == nil {
		return 0, fmt.Errorf("%w: nil type", ErrNotRegistered)
	}

	info := db.registry.Type(componentType)
	id := info.Hash()

	db.mapMutex.Lock()
	defer db.mapMutex.Unlock()

	if existing, ok := db.idToType[id]; ok {
		if existing == componentType {
			return id, nil
		}
		return 0, fmt.Errorf("%w: %s (%q) and %s (%q) share id %d",
			ErrCollision, existing, db.idToInfo[id].Name(), componentType, info.Name(), id)
	}

	db.typeToId[componentType] = id
	db.idToInfo[id] = info
	db.idToType[id] = componentType

	return id, nil
}

// Register registers the type of component.
func (db *TypeMapper) Register(component any) (typeid.ID, error) {
	return db.RegisterType(reflect.TypeOf(component))
}

// Lookup finds the Type based on a component ID.
func (db *TypeMapper) Lookup(id typeid.ID) reflect.Type {
	db.mapMutex.Lock()
	defer db.mapMutex.Unlock()

	return db.idToType[id]
}

// LookupId finds the component ID from a Type. Any ID, including 0, is valid;
// ok reports whether the type is registered.
func (db *TypeMapper) LookupId(componentType reflect.Type) (id typeid.ID, ok bool) {
	db.mapMutex.Lock()
	defer db.mapMutex.Unlock()

	id, ok = db.typeToId[componentType]
	return id, ok
}

// Info returns the identity handle registered under id, or an empty handle.
func (db *TypeMapper) Info(id typeid.ID) typeinfo.Info {
	db.mapMutex.Lock()
	defer db.mapMutex.Unlock()

	return db.idToInfo[id]
}

// Serialize a component to bytes that can be networked.
func (db *TypeMapper) Serialize(component any) ([]byte, error) {
	componentType := reflect.TypeOf(component)
	id, ok := db.LookupId(componentType)
	if !ok {
		return nil, fmt.Errorf("%w: %s; ensure it is registered with the typemapper", ErrNotRegistered, componentType)
	}

	encodeBuf := &bytes.Buffer{}

	encoder := codec.NewEncoder(encodeBuf, db.handle)

	if err := encoder.Encode(uint64(id)); err != nil {
		return nil, err
	}

	if err := encoder.Encode(component); err != nil {
		return nil, err
	}

	return encodeBuf.Bytes(), nil
}

// Deserialize a component by decoding its ID, and then the actual struct.
func (db *TypeMapper) Deserialize(data []byte) (any, error) {
	decoder := codec.NewDecoderBytes(data, db.handle)

	var id uint64
	if err := decoder.Decode(&id); err != nil {
		return nil, err
	}

	component := db.Lookup(typeid.ID(id))
	if component == nil {
		return nil, fmt.Errorf("%w: id %d", ErrNotRegistered, id)
	}

	instanced := reflect.New(component).Interface()
	if err := decoder.Decode(instanced); err != nil {
		return nil, err
	}

	value := reflect.ValueOf(instanced).Elem().Interface()
	return value, nil
}
