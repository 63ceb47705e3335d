package kwargs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OrderedMap(t *testing.T) {
	t.Run("should enumerate keys in insertion order", func(t *testing.T) {
		m := NewOrderedMap()
		m.Set("c", 3)
		m.Set("a", 1)
		m.Set("b", 2)
		assert.Equal(t, []Key{"c", "a", "b"}, m.Keys())
		assert.Equal(t, 3, m.Len())
	})

	t.Run("should keep position when overwriting an existing key", func(t *testing.T) {
		m := NewOrderedMap()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("a", 10)

		assert.Equal(t, []Key{"a", "b"}, m.Keys())
		v, ok := m.Lookup("a")
		require.True(t, ok)
		assert.Equal(t, 10, v)
	})

	t.Run("should drop deleted keys from the order", func(t *testing.T) {
		m := NewOrderedMap()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("c", 3)
		m.Delete("b")

		assert.Equal(t, []Key{"a", "c"}, m.Keys())
		_, ok := m.Lookup("b")
		assert.False(t, ok)
	})

	t.Run("should ignore deletion of an absent key", func(t *testing.T) {
		m := NewOrderedMap()
		m.Set("a", 1)
		m.Delete("missing")

		assert.Equal(t, 1, m.Len())
	})

	t.Run("should return a copy of the key order", func(t *testing.T) {
		m := NewOrderedMap()
		m.Set("a", 1)
		m.Set("b", 2)
		keys := m.Keys()
		keys[0] = "mutated"

		assert.Equal(t, []Key{"a", "b"}, m.Keys())
	})
}

func Test_Schema(t *testing.T) {
	t.Run("should report declared keys required first", func(t *testing.T) {
		s := Schema{Required: []Key{"a", "b"}, Optional: []Key{"c"}}
		assert.Equal(t, []Key{"a", "b", "c"}, s.Keys())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("should stringify the Unspecified sentinel", func(t *testing.T) {
		assert.Equal(t, "unspecified", fmt.Sprint(Unspecified))
		assert.True(t, IsUnspecified(Unspecified))
		assert.False(t, IsUnspecified(nil))
	})
}
