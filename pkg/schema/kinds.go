package schema

// EventType identifies the kind of occurrence an event record describes.
// Values below EventReserved are built in; values at or above it belong to
// consumers.
type EventType int32

const (
	EventEntry EventType = iota
	EventExit
	EventMoving
	EventStopped
	EventEmpty
	EventParked
	EventReset
)

const (
	// EventReserved is the first tag of the consumer-defined range.
	EventReserved EventType = 0x100
	// EventCustom marks a fully custom event.
	EventCustom EventType = 0x101
	// EventFrameAnalysis marks a whole-frame analysis event rather than a
	// per-object one.
	EventFrameAnalysis EventType = 0x102
	// EventForceWidth pins the enum to 32 bits; never used as a real tag.
	EventForceWidth EventType = 0x7FFFFFFF
)

// IsCustom reports whether t falls in the consumer-defined range.
func (t EventType) IsCustom() bool { return t >= EventReserved }

// Valid reports whether t is a built-in tag or a consumer-range tag.
func (t EventType) Valid() bool {
	return (t >= EventEntry && t <= EventReset) || (t.IsCustom() && t != EventForceWidth)
}

func (t EventType) String() string {
	switch t {
	case EventEntry:
		return "entry"
	case EventExit:
		return "exit"
	case EventMoving:
		return "moving"
	case EventStopped:
		return "stopped"
	case EventEmpty:
		return "empty"
	case EventParked:
		return "parked"
	case EventReset:
		return "reset"
	case EventFrameAnalysis:
		return "frame-analysis"
	}
	if t.IsCustom() {
		return "custom"
	}
	return "unknown"
}

// ObjectType identifies which typed description occupies a record's
// extension slot. Values below ObjectReserved are built in; values at or
// above it belong to consumers and carry opaque payloads.
type ObjectType int32

const (
	ObjectVehicle ObjectType = iota
	ObjectPerson
	ObjectFace
	ObjectBag
	ObjectBicycle
	ObjectRoadSign
	ObjectVehicleExt
	ObjectPersonExt
	ObjectFaceExt
	ObjectProduct
	ObjectProductExt
)

const (
	// ObjectReserved is the first tag of the consumer-defined range.
	ObjectReserved ObjectType = 0x100
	// ObjectCustom marks a consumer-defined object payload.
	ObjectCustom ObjectType = 0x101
	// ObjectUnknown marks a record with no object description at all.
	ObjectUnknown ObjectType = 0x102
	// ObjectFrameAnalysis marks frame-level analysis metadata.
	ObjectFrameAnalysis ObjectType = 0x103
	// ObjectForceWidth pins the enum to 32 bits; never used as a real tag.
	ObjectForceWidth ObjectType = 0x7FFFFFFF
)

// IsCustom reports whether t falls in the consumer-defined range.
// ObjectUnknown and ObjectFrameAnalysis live in that range numerically but
// are built-in tags, not custom ones.
func (t ObjectType) IsCustom() bool {
	return t >= ObjectReserved && t != ObjectUnknown && t != ObjectFrameAnalysis && t != ObjectForceWidth
}

// Valid reports whether t is a built-in tag or a consumer-range tag.
func (t ObjectType) Valid() bool {
	return (t >= ObjectVehicle && t <= ObjectProductExt) ||
		(t >= ObjectReserved && t != ObjectForceWidth)
}

func (t ObjectType) String() string {
	switch t {
	case ObjectVehicle, ObjectVehicleExt:
		return "vehicle"
	case ObjectPerson, ObjectPersonExt:
		return "person"
	case ObjectFace, ObjectFaceExt:
		return "face"
	case ObjectBag:
		return "bag"
	case ObjectBicycle:
		return "bicycle"
	case ObjectRoadSign:
		return "roadsign"
	case ObjectProduct, ObjectProductExt:
		return "product"
	case ObjectUnknown:
		return "unknown"
	case ObjectFrameAnalysis:
		return "frame-analysis"
	}
	if t.IsCustom() {
		return "custom"
	}
	return "unknown"
}

// PayloadType selects the wire encoding produced from event records.
// Values below PayloadReserved are built in; values at or above it key
// consumer-registered encoders.
type PayloadType int32

const (
	// PayloadFull is the complete JSON schema.
	PayloadFull PayloadType = iota
	// PayloadMinimal is the compact JSON schema.
	PayloadMinimal
	// PayloadProtobuf is the protobuf encoding.
	PayloadProtobuf
)

const (
	// PayloadReserved is the first tag of the consumer-defined range.
	PayloadReserved PayloadType = 0x100
	// PayloadCustom marks a consumer-registered encoding.
	PayloadCustom PayloadType = 0x101
	// PayloadForceWidth pins the enum to 32 bits; never used as a real tag.
	PayloadForceWidth PayloadType = 0x7FFFFFFF
)

// IsCustom reports whether t falls in the consumer-defined range.
func (t PayloadType) IsCustom() bool { return t >= PayloadReserved && t != PayloadForceWidth }
