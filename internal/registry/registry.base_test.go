package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRegistryRegisterAndGet kiểm tra đăng ký và lấy item cơ bản
func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 42)
	assert.NoError(t, err)
	assert.True(t, isNew)

	value, exists := r.Get("counter")
	assert.True(t, exists)
	assert.Equal(t, 42, value)

	// Ghi đè item cũ
	isNew, err = r.Register("counter", 7)
	assert.NoError(t, err)
	assert.False(t, isNew)

	value, _ = r.Get("counter")
	assert.Equal(t, 7, value)
}

// TestRegistryRegisterEmptyName kiểm tra name rỗng bị từ chối
func TestRegistryRegisterEmptyName(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("", "value")
	assert.Error(t, err)
}

// TestRegistryGetOrCreate kiểm tra GetOrCreate chỉ tạo một lần
func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	created := 0

	creator := func() (string, error) {
		created++
		return "instance", nil
	}

	v1, err := r.GetOrCreate("svc", creator)
	assert.NoError(t, err)
	v2, err := r.GetOrCreate("svc", creator)
	assert.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, created)
}

// TestRegistryClear kiểm tra xóa item có cleanup
func TestRegistryClear(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)

	cleaned := false
	deleted, err := r.Clear("a", func(int) error {
		cleaned = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, cleaned)

	// Xóa item không tồn tại
	deleted, err = r.Clear("a", nil)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

// TestRegistryClearCleanupError kiểm tra cleanup lỗi thì item không bị xóa
func TestRegistryClearCleanupError(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)

	_, err := r.Clear("a", func(int) error {
		return errors.New("close failed")
	})
	assert.Error(t, err)

	_, exists := r.Get("a")
	assert.True(t, exists)
}

// TestRegistryClearAll kiểm tra xóa tất cả items
func TestRegistryClearAll(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)
	_, _ = r.Register("b", 2)

	count, err := r.ClearAll(nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	_, exists := r.Get("a")
	assert.False(t, exists)
}

// TestRegistryConcurrentAccess kiểm tra thread-safety khi đọc ghi đồng thời
func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, _ = r.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = r.Get("shared")
		}()
	}
	wg.Wait()

	_, exists := r.Get("shared")
	assert.True(t, exists)
}
