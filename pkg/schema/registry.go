package schema

import (
	"fmt"
	"sync"
)

// Destructor releases the storage behind a custom extension payload. It is
// resolved by tag at record release time, so the right destructor always
// runs for the kind that was attached.
type Destructor func(data any)

// Registry maps consumer-defined object kinds (tags >= ObjectReserved) to
// their destructors. Registration is explicit; attaching a custom kind that
// was never registered fails with ErrUnsupportedKind.
type Registry struct {
	mu          sync.RWMutex
	destructors map[ObjectType]Destructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{destructors: make(map[ObjectType]Destructor)}
}

// DefaultRegistry backs records constructed without an explicit registry.
var DefaultRegistry = NewRegistry()

// RegisterObjectKind binds a destructor to a consumer-defined object kind.
// The tag must lie in the consumer range and the destructor must be
// non-nil; registering the same tag again replaces the prior destructor.
func (r *Registry) RegisterObjectKind(tag ObjectType, d Destructor) error {
	if !tag.IsCustom() {
		return fmt.Errorf("register object kind 0x%x: %w: tag below reserved range", int32(tag), ErrUnsupportedKind)
	}
	if d == nil {
		return fmt.Errorf("register object kind 0x%x: nil destructor", int32(tag))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destructors[tag] = d
	return nil
}

func (r *Registry) destructor(tag ObjectType) (Destructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.destructors[tag]
	return d, ok
}
