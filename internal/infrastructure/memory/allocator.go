package memory

import (
	"fmt"
	"log"
	"sync"

	"husk-grader/internal/domain/port"
)

// PoolAllocator ограниченная область памяти, аналог PSRAM.
// Выдаёт буферы, пока суммарный объём не превышает Capacity.
type PoolAllocator struct {
	mu       sync.Mutex
	capacity int
	inUse    int
	free     [][]byte
}

// NewPoolAllocator создаёт пул ёмкостью capacity байт
func NewPoolAllocator(capacity int) *PoolAllocator {
	return &PoolAllocator{capacity: capacity}
}

// Allocate выдаёт буфер из пула, освобождённые буферы переиспользуются
func (p *PoolAllocator) Allocate(n int) ([]byte, func(), error) {
	if n <= 0 {
		return nil, func() {}, fmt.Errorf("pool: invalid size %d", n)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inUse+n > p.capacity {
		return nil, func() {}, fmt.Errorf("pool: %d of %d bytes in use, need %d: %w", p.inUse, p.capacity, n, port.ErrOutOfMemory)
	}

	var buf []byte
	for i, b := range p.free {
		if cap(b) >= n {
			buf = b[:n]
			clear(buf)
			p.free = append(p.free[:i], p.free[i+1:]...)
			break
		}
	}
	if buf == nil {
		buf = make([]byte, n)
	}
	p.inUse += n

	var once sync.Once
	release := func() {
		once.Do(func() {
			p.mu.Lock()
			p.inUse -= n
			p.free = append(p.free, buf)
			p.mu.Unlock()
		})
	}
	return buf, release, nil
}

// InUse возвращает занятый объём в байтах
func (p *PoolAllocator) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inUse
}

// HeapAllocator обычная куча с необязательным ограничением на размер одного буфера
type HeapAllocator struct {
	MaxSize int // 0 без ограничения
}

// Allocate выделяет буфер через make
func (h HeapAllocator) Allocate(n int) ([]byte, func(), error) {
	if n <= 0 {
		return nil, func() {}, fmt.Errorf("heap: invalid size %d", n)
	}
	if h.MaxSize > 0 && n > h.MaxSize {
		return nil, func() {}, fmt.Errorf("heap: %d bytes exceeds limit %d: %w", n, h.MaxSize, port.ErrOutOfMemory)
	}
	return make([]byte, n), func() {}, nil
}

// FallbackAllocator пробует Primary, при неудаче один раз Secondary
type FallbackAllocator struct {
	Primary   port.BufferAllocator
	Secondary port.BufferAllocator
	Logger    *log.Logger
}

// Allocate возвращает буфер первого успешного источника
func (f FallbackAllocator) Allocate(n int) ([]byte, func(), error) {
	logger := f.Logger
	if logger == nil {
		logger = log.Default()
	}

	buf, release, err := f.Primary.Allocate(n)
	if err == nil {
		logger.Printf("primary allocation of %d bytes succeeded", n)
		return buf, release, nil
	}
	logger.Printf("primary allocation failed (%v), trying secondary", err)

	if f.Secondary == nil {
		return nil, func() {}, err
	}
	buf, release, err2 := f.Secondary.Allocate(n)
	if err2 != nil {
		logger.Printf("secondary allocation failed: %v", err2)
		return nil, func() {}, fmt.Errorf("all allocators failed: %w", err2)
	}
	logger.Printf("secondary allocation of %d bytes succeeded", n)
	return buf, release, nil
}

var (
	_ port.BufferAllocator = (*PoolAllocator)(nil)
	_ port.BufferAllocator = HeapAllocator{}
	_ port.BufferAllocator = FallbackAllocator{}
)
