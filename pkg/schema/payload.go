package schema

// CustomMsgInfo is a fully opaque consumer message attached to a payload,
// bypassing all typed fields. The schema tracks only its bytes and size.
type CustomMsgInfo struct {
	Message []byte
	Size    uint
}

// NewCustomMsgInfo wraps raw bytes with their size.
func NewCustomMsgInfo(message []byte) CustomMsgInfo {
	return CustomMsgInfo{Message: message, Size: uint(len(message))}
}

// Payload is the serialized form of one event record as produced by an
// encoder, tagged with the component that originated the record batch. One
// record may yield zero or more payloads.
type Payload struct {
	Data        []byte
	Size        uint
	ComponentID uint
}

// NewPayload wraps encoded bytes with their size and provenance.
func NewPayload(data []byte, componentID uint) Payload {
	return Payload{Data: data, Size: uint(len(data)), ComponentID: componentID}
}
