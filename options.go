package value

// Allocator accounts for Value records. Allocate may refuse a record, in
// which case Create fails with ErrAllocation. Release is called exactly once
// per successfully created Value, from Destroy.
type Allocator interface {
	Allocate(t Type) error
	Release(t Type)
}

// Option configures Create.
type Option func(*config)

type config struct {
	alloc Allocator
}

// WithAllocator routes record accounting through a.
func WithAllocator(a Allocator) Option {
	return func(c *config) {
		if a != nil {
			c.alloc = a
		}
	}
}

// heap is the default allocator; the Go runtime owns the memory.
type heap struct{}

func (heap) Allocate(Type) error { return nil }

func (heap) Release(Type) {}
