package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomMsgInfoSizeMatchesBytes(t *testing.T) {
	raw := []byte(`{"vendor":"acme","alarm":3}`)
	m := NewCustomMsgInfo(raw)
	assert.Equal(t, uint(len(raw)), m.Size)
	assert.Equal(t, raw, m.Message)

	empty := NewCustomMsgInfo(nil)
	assert.Zero(t, empty.Size)
}

func TestNewPayloadStampsProvenance(t *testing.T) {
	p := NewPayload([]byte("encoded"), 9)
	assert.Equal(t, uint(7), p.Size)
	assert.Equal(t, uint(9), p.ComponentID)
	assert.Equal(t, []byte("encoded"), p.Data)
}
