// Package registry cung cấp registry pattern generic, thread-safe.
// Dùng để giữ các handle dùng chung của tiến trình (ví dụ *mongo.Collection
// theo tên collection) và phát chúng cho các constructor cần handle tường minh.
package registry

import (
	"fmt"
	"sync"

	"vidtube/internal/common"
)

// Registry quản lý items theo key, an toàn khi truy cập đồng thời.
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo registry rỗng.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item. Item trùng name sẽ bị ghi đè.
//
// Returns:
//   - isNew: true nếu là item mới, false nếu ghi đè item cũ
//   - err: lỗi nếu name rỗng
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo tên. Trả về zero value và false nếu không tồn tại.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// MustGet lấy item theo tên, trả về lỗi nếu chưa được đăng ký.
// Dùng khi wiring ở giai đoạn init: thiếu collection là lỗi cấu hình.
func (r *Registry[T]) MustGet(name string) (T, error) {
	item, exists := r.Get(name)
	if !exists {
		return item, fmt.Errorf("item not found: %s: %w", name, common.ErrNotFound)
	}
	return item, nil
}

// GetOrCreate lấy item theo tên, tạo mới qua creator nếu chưa tồn tại.
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.items[name]; exists {
		return existing, nil
	}

	created, err := creator()
	if err != nil {
		return item, fmt.Errorf("failed to create item: %w", err)
	}
	r.items[name] = created
	return created, nil
}

// Names trả về danh sách tên đã đăng ký.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Clear xóa một item. Cleanup (nếu có) được gọi trước khi xóa.
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}
	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("failed to cleanup item %s: %w", name, err)
		}
	}
	delete(r.items, name)
	return true, nil
}
