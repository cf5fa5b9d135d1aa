package typeinfo

import (
	"reflect"
	"sync"

	"github.com/leap-fish/ntype/internal/syncx"
	"github.com/leap-fish/ntype/seq"
	"github.com/leap-fish/ntype/typeid"
	"github.com/leap-fish/ntype/typename"
	"github.com/sirupsen/logrus"
)

// Registry memoizes the identity of every type it is asked about.
// Records are created on first use and live as long as the registry.
type Registry struct {
	label   string
	counter *seq.Counter
	hasher  typeid.Hasher
	names   bool
	log     logrus.FieldLogger

	records syncx.Map[reflect.Type, *record]
}

// record holds the identity of one type. Every value is computed at most
// once, whichever goroutine gets there first.
type record struct {
	seq  func() typeid.ID
	hash func() typeid.ID
	name func() string

	vt *vtable
}

// Option configures a Registry created by New.
type Option func(r *Registry)

// WithLabel names the registry in log entries.
func WithLabel(label string) Option {
	return func(r *Registry) {
		r.label = label
	}
}

// WithCounter makes the registry allocate sequence ids from c.
// Registries sharing a counter never hand out the same sequence id.
func WithCounter(c *seq.Counter) Option {
	return func(r *Registry) {
		r.counter = c
	}
}

// WithHasher replaces the name fingerprint function.
func WithHasher(h typeid.Hasher) Option {
	return func(r *Registry) {
		r.hasher = h
	}
}

// WithNames toggles name extraction. Disabling it makes Hash fall back to Seq.
// Enabling it has no effect in builds without name support.
func WithNames(enabled bool) Option {
	return func(r *Registry) {
		r.names = enabled
	}
}

// WithLogger sets where record creation is logged. A nil logger keeps the
// default.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a registry. By default it allocates from the process counter,
// hashes with FNV-1a and extracts names when the build supports it.
func New(opts ...Option) *Registry {
	r := &Registry{
		counter: seq.Process,
		hasher:  typeid.FNV,
		names:   typename.Available(),
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Default is the registry behind the package level accessors.
var Default = New(WithLabel("default"))

// Seq returns the sequential identifier of t, or 0 for a nil type.
func (r *Registry) Seq(t reflect.Type) typeid.ID {
	if t == nil {
		return 0
	}
	return r.record(t).seq()
}

// Hash returns the fingerprint of t's name. Types without a name get their
// sequential identifier instead, which is only stable within this process.
func (r *Registry) Hash(t reflect.Type) typeid.ID {
	if t == nil {
		return 0
	}
	return r.record(t).hash()
}

// Name returns the canonical name of t. It is empty when names are disabled.
func (r *Registry) Name(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return r.record(t).name()
}

// Type returns a handle bound to t. A nil type gives an empty handle.
func (r *Registry) Type(t reflect.Type) Info {
	if t == nil {
		return Info{}
	}
	return Info{vt: r.record(t).vt}
}

// Len returns the number of types the registry has seen.
func (r *Registry) Len() int {
	var n int
	r.records.Range(func(reflect.Type, *record) bool {
		n++
		return true
	})
	return n
}

func (r *Registry) record(t reflect.Type) *record {
	if rec, ok := r.records.Load(t); ok {
		return rec
	}

	rec, loaded := r.records.LoadOrStore(t, r.newRecord(t))
	if !loaded {
		r.log.WithFields(logrus.Fields{
			"registry": r.label,
			"type":     t.String(),
		}).Debug("type identity record created")
	}

	return rec
}

// newRecord only wires up the lazy values; a record that loses the
// LoadOrStore race is dropped before anything is allocated from the counter.
func (r *Registry) newRecord(t reflect.Type) *record {
	rec := &record{}
	rec.seq = sync.OnceValue(func() typeid.ID {
		return r.counter.Next()
	})
	rec.name = sync.OnceValue(func() string {
		if !r.names {
			return ""
		}
		return typename.Of(t)
	})
	rec.hash = sync.OnceValue(func() typeid.ID {
		if name := rec.name(); name != "" {
			return r.hasher([]byte(name))
		}
		return rec.seq()
	})

	vt := vtable(func(op operation, to *string) typeid.ID {
		switch op {
		case opSeq:
			return rec.seq()
		case opHash:
			return rec.hash()
		case opName:
			*to = rec.name()
		}
		return 0
	})
	rec.vt = &vt

	return rec
}
