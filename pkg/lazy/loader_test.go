package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/adoption-portal/pkg/lazy"
)

func TestLoader_LoadsOnce(t *testing.T) {
	calls := 0
	loader := lazy.New(func() (string, error) {
		calls++
		return "store", nil
	})

	called := false
	loader.IfLoaded(func(string) { called = true })
	assert.False(t, called)

	assert.Equal(t, "store", loader.MustLoad())
	assert.Equal(t, "store", loader.MustLoad())
	assert.Equal(t, 1, calls)

	loader.IfLoaded(func(v string) {
		called = true
		assert.Equal(t, "store", v)
	})
	assert.True(t, called)
}

func TestLoader_MustLoadPanicsOnError(t *testing.T) {
	loader := lazy.New(func() (int, error) {
		return 0, errors.New("redis unavailable")
	})

	assert.Panics(t, func() { loader.MustLoad() })

	_, err := loader.Load()
	assert.ErrorContains(t, err, "redis unavailable")
	loader.IfLoaded(func(int) { t.Fatal("must not be called after failed load") })
}
