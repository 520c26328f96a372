package schema

import (
	"fmt"

	"github.com/google/uuid"
)

// EventMsgParams carries the mandatory fields for constructing an event
// record. Descriptive strings may be "" (unknown) but are always present.
type EventMsgParams struct {
	Type    EventType
	ObjType ObjectType
	BBox    Rect

	ObjClassID  int32
	SensorID    int32
	ModuleID    int32
	PlaceID     int32
	ComponentID int32
	FrameID     int32

	Confidence float64
	TrackingID uint64

	Timestamp  string
	ObjectID   string
	SensorStr  string
	OtherAttrs string
	VideoPath  string

	// Registry resolves destructors for custom extension kinds.
	// Nil selects DefaultRegistry.
	Registry *Registry
}

// EventMsg is one video-analytics event record: the aggregate a producer
// fills and hands off to exactly one consumer. The record owns all of its
// embedded variable-length data until Release.
//
// Scalar fields are fixed at construction. Optional blocks are attached
// through setters that validate their own invariants and replace any prior
// value of the same kind. Finalize freezes the record before handoff.
type EventMsg struct {
	Type    EventType
	ObjType ObjectType
	BBox    Rect

	ObjClassID  int32
	SensorID    int32
	ModuleID    int32
	PlaceID     int32
	ComponentID int32
	FrameID     int32

	Confidence float64
	TrackingID uint64

	Timestamp  string
	ObjectID   string
	SensorStr  string
	OtherAttrs string
	VideoPath  string

	location   *GeoLocation
	coordinate *Coordinate
	signature  Signature
	extension  ObjectAttachment
	pose       *Pose
	embedding  *Embedding
	analytics  *Analytics
	flags      BehaviorFlags

	registry  *Registry
	finalized bool
	released  bool
}

// NewObjectID returns a fresh unique object identifier.
func NewObjectID() string { return uuid.NewString() }

// NewEventMsg constructs a record from its mandatory fields. The record is
// fully initialized on return; optional blocks are attached afterwards.
func NewEventMsg(p EventMsgParams) (*EventMsg, error) {
	if !p.Type.Valid() {
		return nil, fmt.Errorf("event type 0x%x: %w", int32(p.Type), ErrUnsupportedKind)
	}
	if !p.ObjType.Valid() {
		return nil, fmt.Errorf("object type 0x%x: %w", int32(p.ObjType), ErrUnsupportedKind)
	}
	reg := p.Registry
	if reg == nil {
		reg = DefaultRegistry
	}
	return &EventMsg{
		Type:        p.Type,
		ObjType:     p.ObjType,
		BBox:        p.BBox,
		ObjClassID:  p.ObjClassID,
		SensorID:    p.SensorID,
		ModuleID:    p.ModuleID,
		PlaceID:     p.PlaceID,
		ComponentID: p.ComponentID,
		FrameID:     p.FrameID,
		Confidence:  p.Confidence,
		TrackingID:  p.TrackingID,
		Timestamp:   p.Timestamp,
		ObjectID:    p.ObjectID,
		SensorStr:   p.SensorStr,
		OtherAttrs:  p.OtherAttrs,
		VideoPath:   p.VideoPath,
		registry:    reg,
	}, nil
}

func (e *EventMsg) mutable(op string) error {
	if e.released {
		return fmt.Errorf("%s: %w", op, ErrReleased)
	}
	if e.finalized {
		return fmt.Errorf("%s: %w", op, ErrFinalized)
	}
	return nil
}

// SetLocation attaches or replaces the record's geolocation.
func (e *EventMsg) SetLocation(loc GeoLocation) error {
	if err := e.mutable("set location"); err != nil {
		return err
	}
	e.location = &loc
	return nil
}

// SetCoordinate attaches or replaces the record's 3-D coordinate.
func (e *EventMsg) SetCoordinate(c Coordinate) error {
	if err := e.mutable("set coordinate"); err != nil {
		return err
	}
	e.coordinate = &c
	return nil
}

// SetSignature attaches or replaces the object signature. The declared size
// must match the stored element count; on failure the prior signature is
// kept.
func (e *EventMsg) SetSignature(sig Signature) error {
	if err := e.mutable("set signature"); err != nil {
		return err
	}
	if err := sig.validate(); err != nil {
		return fmt.Errorf("set signature: size %d, %d values: %w", sig.Size, len(sig.Values), err)
	}
	e.signature = sig
	return nil
}

// SetPose attaches or replaces the pose block. The declared joint count
// must match the stored joints; on failure the prior pose is kept.
func (e *EventMsg) SetPose(p Pose) error {
	if err := e.mutable("set pose"); err != nil {
		return err
	}
	if err := p.validate(); err != nil {
		return fmt.Errorf("set pose: count %d, %d joints: %w", p.NumJoints, len(p.Joints), err)
	}
	e.pose = &p
	return nil
}

// SetEmbedding attaches or replaces the embedding block. The declared
// length must match the stored vector; on failure the prior embedding is
// kept.
func (e *EventMsg) SetEmbedding(emb Embedding) error {
	if err := e.mutable("set embedding"); err != nil {
		return err
	}
	if err := emb.validate(); err != nil {
		return fmt.Errorf("set embedding: length %d, %d values: %w", emb.Length, len(emb.Vector), err)
	}
	e.embedding = &emb
	return nil
}

// SetAnalytics attaches or replaces the derived-behavior annotation.
func (e *EventMsg) SetAnalytics(a Analytics) error {
	if err := e.mutable("set analytics"); err != nil {
		return err
	}
	if err := a.validate(); err != nil {
		return fmt.Errorf("set analytics: lane count %d: %w", a.LaneCount, err)
	}
	e.analytics = &a
	return nil
}

// SetFlags replaces the behavior flags.
func (e *EventMsg) SetFlags(f BehaviorFlags) error {
	if err := e.mutable("set flags"); err != nil {
		return err
	}
	e.flags = f
	return nil
}

// AttachObject attaches a typed object description to the extension slot.
// The attachment's kind must equal the record's declared object kind; on
// mismatch the record is left unchanged. Attaching over a prior extension
// replaces it, releasing a prior custom payload through its destructor.
// Custom-range kinds go through AttachCustom.
func (e *EventMsg) AttachObject(att ObjectAttachment) error {
	if err := e.mutable("attach object"); err != nil {
		return err
	}
	if att == nil {
		return fmt.Errorf("attach object: nil attachment")
	}
	if _, ok := att.(*CustomObject); ok {
		return fmt.Errorf("attach object: custom payloads go through AttachCustom")
	}
	if att.Kind() != e.ObjType {
		return fmt.Errorf("attach object: record declares %s (0x%x), attachment is %s (0x%x): %w",
			e.ObjType, int32(e.ObjType), att.Kind(), int32(att.Kind()), ErrKindMismatch)
	}
	e.releaseExtension()
	e.extension = att
	return nil
}

// AttachCustom attaches a consumer-defined payload to the extension slot.
// The tag must lie in the consumer range, match the record's declared
// object kind, and have a destructor registered; otherwise the record is
// left unchanged. A prior extension is replaced and, if custom, released.
func (e *EventMsg) AttachCustom(tag ObjectType, data any, size uint) error {
	if err := e.mutable("attach custom"); err != nil {
		return err
	}
	if !tag.IsCustom() {
		return fmt.Errorf("attach custom: tag 0x%x below reserved range: %w", int32(tag), ErrUnsupportedKind)
	}
	if tag != e.ObjType {
		return fmt.Errorf("attach custom: record declares 0x%x, payload tagged 0x%x: %w",
			int32(e.ObjType), int32(tag), ErrKindMismatch)
	}
	if _, ok := e.registry.destructor(tag); !ok {
		return fmt.Errorf("attach custom: no destructor registered for 0x%x: %w", int32(tag), ErrUnsupportedKind)
	}
	e.releaseExtension()
	e.extension = &CustomObject{Tag: tag, Data: data, Size: size}
	return nil
}

// Object returns the raw extension attachment, or nil if none is attached.
func (e *EventMsg) Object() ObjectAttachment { return e.extension }

func readObject[T ObjectAttachment](e *EventMsg, want ObjectType) (T, error) {
	var zero T
	if e.released {
		return zero, fmt.Errorf("read object: %w", ErrReleased)
	}
	if e.ObjType != want {
		return zero, fmt.Errorf("read object: record declares %s (0x%x), requested %s (0x%x): %w",
			e.ObjType, int32(e.ObjType), want, int32(want), ErrKindMismatch)
	}
	att, ok := e.extension.(T)
	if !ok {
		return zero, fmt.Errorf("read object: no %s attachment present: %w", want, ErrKindMismatch)
	}
	return att, nil
}

// Vehicle returns the attached vehicle description, or ErrKindMismatch if
// the record is not tagged as a vehicle.
func (e *EventMsg) Vehicle() (*VehicleObject, error) {
	return readObject[*VehicleObject](e, ObjectVehicle)
}

// VehicleExt returns the attached masked vehicle description.
func (e *EventMsg) VehicleExt() (*VehicleObjectExt, error) {
	return readObject[*VehicleObjectExt](e, ObjectVehicleExt)
}

// Person returns the attached person description, or ErrKindMismatch if
// the record is not tagged as a person.
func (e *EventMsg) Person() (*PersonObject, error) {
	return readObject[*PersonObject](e, ObjectPerson)
}

// PersonExt returns the attached masked person description.
func (e *EventMsg) PersonExt() (*PersonObjectExt, error) {
	return readObject[*PersonObjectExt](e, ObjectPersonExt)
}

// Face returns the attached face description, or ErrKindMismatch if the
// record is not tagged as a face.
func (e *EventMsg) Face() (*FaceObject, error) {
	return readObject[*FaceObject](e, ObjectFace)
}

// FaceExt returns the attached masked face description.
func (e *EventMsg) FaceExt() (*FaceObjectExt, error) {
	return readObject[*FaceObjectExt](e, ObjectFaceExt)
}

// Product returns the attached product description, or ErrKindMismatch if
// the record is not tagged as a product.
func (e *EventMsg) Product() (*ProductObject, error) {
	return readObject[*ProductObject](e, ObjectProduct)
}

// ProductExt returns the attached masked product description.
func (e *EventMsg) ProductExt() (*ProductObjectExt, error) {
	return readObject[*ProductObjectExt](e, ObjectProductExt)
}

// Custom returns the attached consumer-defined payload, or ErrKindMismatch
// if the record is not tagged with a custom kind.
func (e *EventMsg) Custom() (*CustomObject, error) {
	if e.released {
		return nil, fmt.Errorf("read custom: %w", ErrReleased)
	}
	if !e.ObjType.IsCustom() {
		return nil, fmt.Errorf("read custom: record declares %s (0x%x): %w",
			e.ObjType, int32(e.ObjType), ErrKindMismatch)
	}
	att, ok := e.extension.(*CustomObject)
	if !ok {
		return nil, fmt.Errorf("read custom: no custom attachment present: %w", ErrKindMismatch)
	}
	return att, nil
}

// Location returns the attached geolocation, or nil if absent.
func (e *EventMsg) Location() *GeoLocation { return e.location }

// Coordinate returns the attached 3-D coordinate, or nil if absent.
func (e *EventMsg) Coordinate() *Coordinate { return e.coordinate }

// Signature returns the object signature; Empty reports absence.
func (e *EventMsg) Signature() Signature { return e.signature }

// Pose returns the attached pose block, or nil if absent.
func (e *EventMsg) Pose() *Pose { return e.pose }

// Embedding returns the attached embedding block, or nil if absent.
func (e *EventMsg) Embedding() *Embedding { return e.embedding }

// Analytics returns the attached derived-behavior annotation, or nil if
// absent.
func (e *EventMsg) Analytics() *Analytics { return e.analytics }

// Flags returns the behavior flags.
func (e *EventMsg) Flags() BehaviorFlags { return e.flags }

// Finalize freezes the record before handoff to a consumer. Further attach
// calls fail with ErrFinalized. Finalize is idempotent.
func (e *EventMsg) Finalize() { e.finalized = true }

// Finalized reports whether the record has been frozen.
func (e *EventMsg) Finalized() bool { return e.finalized }

// Released reports whether the record has been released.
func (e *EventMsg) Released() bool { return e.released }

// Release ends the record's lifetime: the custom extension destructor runs
// (resolved by the attached tag), and all owned variable-length storage is
// dropped. A second Release fails with ErrDoubleRelease.
func (e *EventMsg) Release() error {
	if e.released {
		return fmt.Errorf("release record: %w", ErrDoubleRelease)
	}
	e.releaseExtension()
	e.location = nil
	e.coordinate = nil
	e.signature = Signature{}
	e.pose = nil
	e.embedding = nil
	e.analytics = nil
	e.released = true
	return nil
}

func (e *EventMsg) releaseExtension() {
	if c, ok := e.extension.(*CustomObject); ok {
		if d, ok := e.registry.destructor(c.Tag); ok {
			d(c.Data)
		}
	}
	e.extension = nil
}
