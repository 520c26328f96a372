package payload

import (
	"fmt"
	"sync"

	"github.com/your-org/eventmeta/pkg/schema"
)

// Registry maps payload types to encoders. A fresh registry carries the
// built-in encoders; consumer encoders register under types at or above
// schema.PayloadReserved.
type Registry struct {
	mu       sync.RWMutex
	encoders map[schema.PayloadType]Encoder
}

// NewRegistry returns a registry pre-populated with the built-in encoders.
func NewRegistry() *Registry {
	r := &Registry{encoders: make(map[schema.PayloadType]Encoder)}
	r.encoders[schema.PayloadFull] = &FullEncoder{}
	r.encoders[schema.PayloadMinimal] = &MinimalEncoder{}
	r.encoders[schema.PayloadProtobuf] = &ProtobufEncoder{}
	return r
}

// Register binds a consumer encoder to its payload type. The type must lie
// in the reserved range; built-in types cannot be overridden.
func (r *Registry) Register(enc Encoder) error {
	t := enc.PayloadType()
	if !t.IsCustom() {
		return fmt.Errorf("register encoder 0x%x: type below reserved range: %w", int32(t), schema.ErrUnsupportedKind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.encoders[t] = enc
	return nil
}

// Encoder returns the encoder registered for a payload type.
func (r *Registry) Encoder(t schema.PayloadType) (Encoder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	enc, ok := r.encoders[t]
	if !ok {
		return nil, fmt.Errorf("no encoder for payload type 0x%x: %w", int32(t), schema.ErrUnsupportedKind)
	}
	return enc, nil
}

// EncodeBatch resolves the encoder for a payload type and encodes the
// batch, reporting failures per record.
func (r *Registry) EncodeBatch(t schema.PayloadType, msgs []*schema.EventMsg, componentID uint) ([]schema.Payload, error) {
	enc, err := r.Encoder(t)
	if err != nil {
		return nil, err
	}
	return EncodeBatch(enc, msgs, componentID)
}
