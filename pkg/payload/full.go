package payload

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/your-org/eventmeta/pkg/schema"
)

// mdsVersion is the metadata schema version stamped on full payloads.
const mdsVersion = "1.0"

// FullEncoder produces the complete JSON message for one event record:
// place, sensor and analytics-module provenance, the object description
// with its attachments, and the event block.
type FullEncoder struct{}

func (*FullEncoder) PayloadType() schema.PayloadType { return schema.PayloadFull }

type fullMessage struct {
	MessageID       string      `json:"messageid"`
	MdsVersion      string      `json:"mdsversion"`
	Timestamp       string      `json:"@timestamp"`
	Place           fullPlace   `json:"place"`
	Sensor          fullSensor  `json:"sensor"`
	AnalyticsModule fullModule  `json:"analyticsModule"`
	Object          *fullObject `json:"object,omitempty"`
	Event           fullEvent   `json:"event"`
	VideoPath       string      `json:"videoPath,omitempty"`
	OtherAttrs      string      `json:"otherAttrs,omitempty"`
}

type fullPlace struct {
	ID int32 `json:"id"`
}

type fullSensor struct {
	ID          int32  `json:"id"`
	Description string `json:"description,omitempty"`
}

type fullModule struct {
	ID int32 `json:"id"`
}

type fullEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type fullBBox struct {
	TopLeftX     float32 `json:"topleftx"`
	TopLeftY     float32 `json:"toplefty"`
	BottomRightX float32 `json:"bottomrightx"`
	BottomRightY float32 `json:"bottomrighty"`
}

type fullPose struct {
	Type   string         `json:"type"`
	Joints []schema.Joint `json:"joints"`
}

type fullVehicle struct {
	Type    string           `json:"type"`
	Make    string           `json:"make"`
	Model   string           `json:"model"`
	Color   string           `json:"color"`
	Region  string           `json:"region"`
	License string           `json:"license"`
	Mask    []schema.Polygon `json:"mask,omitempty"`
}

type fullPerson struct {
	Gender  string           `json:"gender"`
	Hair    string           `json:"hair"`
	Cap     string           `json:"cap"`
	Apparel string           `json:"apparel"`
	Age     uint             `json:"age"`
	Mask    []schema.Polygon `json:"mask,omitempty"`
}

type fullFace struct {
	Gender     string           `json:"gender"`
	Hair       string           `json:"hair"`
	Cap        string           `json:"cap"`
	Glasses    string           `json:"glasses"`
	FacialHair string           `json:"facialhair"`
	Name       string           `json:"name"`
	EyeColor   string           `json:"eyecolor"`
	Age        uint             `json:"age"`
	Mask       []schema.Polygon `json:"mask,omitempty"`
}

type fullProduct struct {
	Brand string           `json:"brand"`
	Type  string           `json:"type"`
	Shape string           `json:"shape"`
	Mask  []schema.Polygon `json:"mask,omitempty"`
}

type fullAnalytics struct {
	Direction      string  `json:"direction"`
	Status         string  `json:"status"`
	MoveLength     float32 `json:"moveLength"`
	MoveTimeMs     float32 `json:"moveTimeMs"`
	MoveSpeed      float32 `json:"moveSpeed"`
	LongStayTimeMs float32 `json:"longStayTimeMs"`
	Lanes          []int32 `json:"lanes"`
	ReverseLane    int32   `json:"reverseLane"`
}

type fullBehavior struct {
	LaneCross    bool `json:"laneCross"`
	ReverseDrive bool `json:"reverseDrive"`
	OverCrowd    bool `json:"overCrowd"`
	LongPark     bool `json:"longPark"`
	Loitering    bool `json:"loitering"`
	BreakIn      bool `json:"breakIn"`
	Jaywalk      bool `json:"jaywalk"`
}

type fullObject struct {
	ID         string              `json:"id"`
	TrackingID uint64              `json:"trackingId"`
	ClassID    int32               `json:"classId"`
	FrameID    int32               `json:"frameId"`
	Confidence float64             `json:"confidence"`
	BBox       fullBBox            `json:"bbox"`
	Location   *schema.GeoLocation `json:"location,omitempty"`
	Coordinate *schema.Coordinate  `json:"coordinate,omitempty"`
	Signature  []float64           `json:"signature,omitempty"`
	Pose       *fullPose           `json:"pose,omitempty"`
	Embedding  []float32           `json:"embedding,omitempty"`
	Vehicle    *fullVehicle        `json:"vehicle,omitempty"`
	Person     *fullPerson         `json:"person,omitempty"`
	Face       *fullFace           `json:"face,omitempty"`
	Product    *fullProduct        `json:"product,omitempty"`
	Analytics  *fullAnalytics      `json:"analytics,omitempty"`
	Behavior   *fullBehavior       `json:"behavior,omitempty"`
}

// Encode serializes one record to the full JSON schema. Records tagged
// ObjectUnknown or with a custom kind carry no "object" key; custom
// payloads stay opaque to this encoder.
func (*FullEncoder) Encode(msg *schema.EventMsg) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("encode full: nil record")
	}
	if msg.Released() {
		return nil, fmt.Errorf("encode full: %w", schema.ErrReleased)
	}

	out := fullMessage{
		MessageID:       uuid.NewString(),
		MdsVersion:      mdsVersion,
		Timestamp:       msg.Timestamp,
		Place:           fullPlace{ID: msg.PlaceID},
		Sensor:          fullSensor{ID: msg.SensorID, Description: msg.SensorStr},
		AnalyticsModule: fullModule{ID: msg.ModuleID},
		Event:           fullEvent{ID: uuid.NewString(), Type: msg.Type.String()},
		VideoPath:       msg.VideoPath,
		OtherAttrs:      msg.OtherAttrs,
	}

	if msg.ObjType != schema.ObjectUnknown && !msg.ObjType.IsCustom() {
		out.Object = encodeObject(msg)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode full: %w", err)
	}
	return data, nil
}

func encodeObject(msg *schema.EventMsg) *fullObject {
	obj := &fullObject{
		ID:         msg.ObjectID,
		TrackingID: msg.TrackingID,
		ClassID:    msg.ObjClassID,
		FrameID:    msg.FrameID,
		Confidence: msg.Confidence,
		BBox: fullBBox{
			TopLeftX:     msg.BBox.Left,
			TopLeftY:     msg.BBox.Top,
			BottomRightX: msg.BBox.Left + msg.BBox.Width,
			BottomRightY: msg.BBox.Top + msg.BBox.Height,
		},
		Location:   msg.Location(),
		Coordinate: msg.Coordinate(),
	}

	if sig := msg.Signature(); !sig.Empty() {
		obj.Signature = sig.Values
	}
	if pose := msg.Pose(); pose != nil && !pose.Empty() {
		obj.Pose = &fullPose{Type: poseTypeName(pose.Type), Joints: pose.Joints}
	}
	if emb := msg.Embedding(); emb != nil && !emb.Empty() {
		obj.Embedding = emb.Vector
	}
	if a := msg.Analytics(); a != nil {
		obj.Analytics = &fullAnalytics{
			Direction:      a.Direction.String(),
			Status:         a.Status.String(),
			MoveLength:     a.MoveLength,
			MoveTimeMs:     a.MoveTimeMs,
			MoveSpeed:      a.MoveSpeed,
			LongStayTimeMs: a.LongStayTimeMs,
			Lanes:          a.CrossedLanes(),
			ReverseLane:    a.ReverseLane,
		}
	}
	if f := msg.Flags(); f != (schema.BehaviorFlags{}) {
		obj.Behavior = &fullBehavior{
			LaneCross:    f.LaneCross,
			ReverseDrive: f.ReverseDrive,
			OverCrowd:    f.OverCrowd,
			LongPark:     f.LongPark,
			Loitering:    f.Loitering,
			BreakIn:      f.BreakIn,
			Jaywalk:      f.Jaywalk,
		}
	}

	switch msg.ObjType {
	case schema.ObjectVehicle:
		if v, err := msg.Vehicle(); err == nil {
			obj.Vehicle = &fullVehicle{Type: v.Type, Make: v.Make, Model: v.Model, Color: v.Color, Region: v.Region, License: v.License}
		}
	case schema.ObjectVehicleExt:
		if v, err := msg.VehicleExt(); err == nil {
			obj.Vehicle = &fullVehicle{Type: v.Type, Make: v.Make, Model: v.Model, Color: v.Color, Region: v.Region, License: v.License, Mask: v.Mask}
		}
	case schema.ObjectPerson:
		if p, err := msg.Person(); err == nil {
			obj.Person = &fullPerson{Gender: p.Gender, Hair: p.Hair, Cap: p.Cap, Apparel: p.Apparel, Age: p.Age}
		}
	case schema.ObjectPersonExt:
		if p, err := msg.PersonExt(); err == nil {
			obj.Person = &fullPerson{Gender: p.Gender, Hair: p.Hair, Cap: p.Cap, Apparel: p.Apparel, Age: p.Age, Mask: p.Mask}
		}
	case schema.ObjectFace:
		if f, err := msg.Face(); err == nil {
			obj.Face = &fullFace{Gender: f.Gender, Hair: f.Hair, Cap: f.Cap, Glasses: f.Glasses, FacialHair: f.FacialHair, Name: f.Name, EyeColor: f.EyeColor, Age: f.Age}
		}
	case schema.ObjectFaceExt:
		if f, err := msg.FaceExt(); err == nil {
			obj.Face = &fullFace{Gender: f.Gender, Hair: f.Hair, Cap: f.Cap, Glasses: f.Glasses, FacialHair: f.FacialHair, Name: f.Name, EyeColor: f.EyeColor, Age: f.Age, Mask: f.Mask}
		}
	case schema.ObjectProduct:
		if p, err := msg.Product(); err == nil {
			obj.Product = &fullProduct{Brand: p.Brand, Type: p.Type, Shape: p.Shape}
		}
	case schema.ObjectProductExt:
		if p, err := msg.ProductExt(); err == nil {
			obj.Product = &fullProduct{Brand: p.Brand, Type: p.Type, Shape: p.Shape, Mask: p.Mask}
		}
	}

	return obj
}

func poseTypeName(t schema.PoseType) string {
	switch t {
	case schema.Pose3D:
		return "3d"
	case schema.Pose25D:
		return "2.5d"
	default:
		return "2d"
	}
}
