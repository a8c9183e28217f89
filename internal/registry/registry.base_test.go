package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("videos", "collection-videos")
	assert.NoError(t, err)
	assert.True(t, isNew)

	// Ghi đè item cùng tên
	isNew, err = r.Register("videos", "collection-videos-2")
	assert.NoError(t, err)
	assert.False(t, isNew)

	item, exists := r.Get("videos")
	assert.True(t, exists)
	assert.Equal(t, "collection-videos-2", item)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistry_MustGet(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("likes", 7)

	item, err := r.MustGet("likes")
	assert.NoError(t, err)
	assert.Equal(t, 7, item)

	_, err = r.MustGet("missing")
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()

	created, err := r.GetOrCreate("counter", func() (int, error) { return 10, nil })
	assert.NoError(t, err)
	assert.Equal(t, 10, created)

	// Lần hai không gọi lại creator
	again, err := r.GetOrCreate("counter", func() (int, error) { return 0, errors.New("must not run") })
	assert.NoError(t, err)
	assert.Equal(t, 10, again)
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("tmp", 1)

	cleaned := false
	deleted, err := r.Clear("tmp", func(int) error {
		cleaned = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, cleaned)

	deleted, err = r.Clear("tmp", nil)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("item-%d", n), n)
			r.Get(fmt.Sprintf("item-%d", n))
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.Names(), 50)
}
