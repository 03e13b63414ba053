package port

import "errors"

// ErrOutOfMemory буфер нужного размера получить не удалось
var ErrOutOfMemory = errors.New("out of memory")

// BufferAllocator выдаёт буферы под уменьшенный кадр
type BufferAllocator interface {
	// Allocate возвращает буфер длины n и функцию его освобождения
	Allocate(n int) (buf []byte, release func(), err error)
}
