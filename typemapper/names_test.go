//go:build !ntype_noname

package typemapper_test

import (
	"testing"

	"github.com/leap-fish/ntype/seq"
	"github.com/leap-fish/ntype/typeid"
	"github.com/leap-fish/ntype/typeinfo"
	"github.com/leap-fish/ntype/typemapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeMapper_Collision(t *testing.T) {
	constant := func([]byte) typeid.ID { return 42 }
	reg := typeinfo.New(typeinfo.WithCounter(&seq.Counter{}), typeinfo.WithHasher(constant))

	_, err := typemapper.NewMapper(reg, HealthComponent{}, ColliderComponent{})
	assert.ErrorIs(t, err, typemapper.ErrCollision)
	assert.ErrorContains(t, err, "typemapper_test.HealthComponent")
	assert.ErrorContains(t, err, "typemapper_test.ColliderComponent")
}

func TestTypeMapper_AcrossRegistries(t *testing.T) {
	writer := newMapper(t)

	// A reader with its own counter and request order agrees on the ids.
	reg := typeinfo.New(typeinfo.WithCounter(&seq.Counter{}))
	reader, err := typemapper.NewMapper(reg, SimpleValueTwo(0), HealthComponent{})
	require.NoError(t, err)

	payload, err := writer.Serialize(HealthComponent{5, 10})
	require.NoError(t, err)

	got, err := reader.Deserialize(payload)
	require.NoError(t, err)
	assert.Equal(t, HealthComponent{5, 10}, got)
}
