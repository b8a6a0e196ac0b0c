package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/minimessage/pkg/errors"
)

type style struct {
	color string
	bold  bool
}

func TestRegister(t *testing.T) {
	reg := New[style]()

	t.Run("valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("warning", style{color: "gold"}))
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("empty name", func(t *testing.T) {
		err := reg.Register("  ", style{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("duplicate", func(t *testing.T) {
		err := reg.Register("warning", style{color: "red"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		got, err := reg.Get("warning")
		require.NoError(t, err)
		assert.Equal(t, "gold", got.color, "original item is kept")
	})
}

func TestSet(t *testing.T) {
	reg := New[style]()
	require.NoError(t, reg.Set("title", style{bold: true}))
	require.NoError(t, reg.Set("title", style{color: "aqua"}))

	got := MustGet(reg, "title")
	assert.Equal(t, style{color: "aqua"}, got)
	assert.True(t, errors.IsErrorCode(reg.Set("", style{}), errors.ErrInvalidInput))
}

func TestGetAndRemove(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "one", 1)

	v, err := reg.Get("one")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = reg.Get("two")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "two", errors.GetErrorDetails(err)["name"])

	require.NoError(t, reg.Remove("one"))
	assert.False(t, reg.Has("one"))
	assert.True(t, errors.IsErrorCode(reg.Remove("one"), errors.ErrNotFound))
}

func TestListIsSorted(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"rainbow", "bold", "gradient", "click"} {
		MustRegister(reg, name, i)
	}
	assert.Equal(t, []string{"bold", "click", "gradient", "rainbow"}, reg.List())
}

func TestMustHelpersPanic(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "x", 1)

	assert.Panics(t, func() { MustRegister(reg, "x", 2) })
	assert.Panics(t, func() { MustGet(reg, "missing") })
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("item%d", i)
			_ = reg.Register(name, i)
			_, _ = reg.Get(name)
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Count())
}
