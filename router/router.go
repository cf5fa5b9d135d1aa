package router

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/leap-fish/ntype/typeinfo"
	"github.com/leap-fish/ntype/typemapper"
)

var (
	ErrCallbackNotRegistered = errors.New("callback type not registered")
	ErrMessageNotRegistered  = errors.New("message type is not registered")
)

// Router dispatches decoded messages to the callbacks registered for their
// type. Callbacks are keyed by the message type's identity handle.
type Router struct {
	registry *typeinfo.Registry
	mapper   *typemapper.TypeMapper

	mu        sync.RWMutex
	callbacks map[typeinfo.Info][]func(message any)
}

// New creates a router over reg, using typeinfo.Default when reg is nil.
func New(reg *typeinfo.Registry) *Router {
	if reg == nil {
		reg = typeinfo.Default
	}

	// No components, so this cannot fail.
	mapper, _ := typemapper.NewMapper(reg)

	return &Router{
		registry:  reg,
		mapper:    mapper,
		callbacks: make(map[typeinfo.Info][]func(message any)),
	}
}

// On adds a callback to be called whenever the specified message type T is received.
// This can return an error if the type's id collides with another registered type.
func On[T any](r *Router, callback func(message T)) error {
	messageType := typeinfo.TypeOf[T]()
	if _, err := r.mapper.RegisterType(messageType); err != nil {
		return err
	}

	info := r.registry.Type(messageType)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks[info] = append(r.callbacks[info], func(message any) {
		callback(message.(T))
	})

	return nil
}

// Serialize encodes msg with its type id, registering the type if needed.
func (r *Router) Serialize(msg any) ([]byte, error) {
	msgType := reflect.TypeOf(msg)
	if _, ok := r.mapper.LookupId(msgType); !ok {
		if _, err := r.mapper.RegisterType(msgType); err != nil {
			return nil, err
		}
	}
	return r.mapper.Serialize(msg)
}

// ProcessMessage deserializes a byte message and calls its registered callbacks.
func (r *Router) ProcessMessage(msg []byte) error {
	instance, err := r.mapper.Deserialize(msg)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrCallbackNotRegistered, err)
	}

	instanceType := reflect.TypeOf(instance)
	info := r.registry.Type(instanceType)

	r.mu.RLock()
	callbackList := r.callbacks[info]
	r.mu.RUnlock()

	if len(callbackList) == 0 {
		return fmt.Errorf("%w: %s", ErrMessageNotRegistered, instanceType)
	}

	for _, callback := range callbackList {
		callback(instance)
	}

	return nil
}
