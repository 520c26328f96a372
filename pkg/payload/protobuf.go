package payload

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/your-org/eventmeta/pkg/schema"
)

// ProtobufEncoder produces a protobuf payload: the record's field map
// encoded as a google.protobuf.Struct. Consumers on the receiving side
// unmarshal the Struct without needing this module's schema definitions.
type ProtobufEncoder struct{}

func (*ProtobufEncoder) PayloadType() schema.PayloadType { return schema.PayloadProtobuf }

// Encode serializes one record as a google.protobuf.Struct.
func (*ProtobufEncoder) Encode(msg *schema.EventMsg) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("encode protobuf: nil record")
	}
	if msg.Released() {
		return nil, fmt.Errorf("encode protobuf: %w", schema.ErrReleased)
	}

	st, err := structpb.NewStruct(recordFields(msg))
	if err != nil {
		return nil, fmt.Errorf("encode protobuf: build struct: %w", err)
	}
	data, err := proto.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode protobuf: %w", err)
	}
	return data, nil
}

// recordFields flattens a record into structpb-compatible values: float64
// for all numerics, nested maps for blocks, lists for vectors.
func recordFields(msg *schema.EventMsg) map[string]any {
	fields := map[string]any{
		"eventType":   msg.Type.String(),
		"objectType":  msg.ObjType.String(),
		"classId":     float64(msg.ObjClassID),
		"sensorId":    float64(msg.SensorID),
		"moduleId":    float64(msg.ModuleID),
		"placeId":     float64(msg.PlaceID),
		"componentId": float64(msg.ComponentID),
		"frameId":     float64(msg.FrameID),
		"confidence":  msg.Confidence,
		"trackingId":  float64(msg.TrackingID),
		"timestamp":   msg.Timestamp,
		"objectId":    msg.ObjectID,
		"sensorStr":   msg.SensorStr,
		"videoPath":   msg.VideoPath,
		"bbox": map[string]any{
			"top":    float64(msg.BBox.Top),
			"left":   float64(msg.BBox.Left),
			"width":  float64(msg.BBox.Width),
			"height": float64(msg.BBox.Height),
		},
	}
	if msg.OtherAttrs != "" {
		fields["otherAttrs"] = msg.OtherAttrs
	}
	if loc := msg.Location(); loc != nil {
		fields["location"] = map[string]any{"lat": loc.Lat, "lon": loc.Lon, "alt": loc.Alt}
	}
	if c := msg.Coordinate(); c != nil {
		fields["coordinate"] = map[string]any{"x": c.X, "y": c.Y, "z": c.Z}
	}
	if sig := msg.Signature(); !sig.Empty() {
		vals := make([]any, len(sig.Values))
		for i, v := range sig.Values {
			vals[i] = v
		}
		fields["signature"] = vals
	}
	if emb := msg.Embedding(); emb != nil && !emb.Empty() {
		vals := make([]any, len(emb.Vector))
		for i, v := range emb.Vector {
			vals[i] = float64(v)
		}
		fields["embedding"] = vals
	}
	if pose := msg.Pose(); pose != nil && !pose.Empty() {
		joints := make([]any, len(pose.Joints))
		for i, j := range pose.Joints {
			joints[i] = map[string]any{
				"x":          float64(j.X),
				"y":          float64(j.Y),
				"z":          float64(j.Z),
				"confidence": float64(j.Confidence),
			}
		}
		fields["pose"] = map[string]any{
			"type":   poseTypeName(pose.Type),
			"joints": joints,
		}
	}
	if a := msg.Analytics(); a != nil {
		lanes := make([]any, 0, schema.MaxLanes)
		for _, l := range a.CrossedLanes() {
			lanes = append(lanes, float64(l))
		}
		fields["analytics"] = map[string]any{
			"direction":      a.Direction.String(),
			"status":         a.Status.String(),
			"moveLength":     float64(a.MoveLength),
			"moveTimeMs":     float64(a.MoveTimeMs),
			"moveSpeed":      float64(a.MoveSpeed),
			"longStayTimeMs": float64(a.LongStayTimeMs),
			"lanes":          lanes,
			"reverseLane":    float64(a.ReverseLane),
		}
	}
	if f := msg.Flags(); f != (schema.BehaviorFlags{}) {
		fields["behavior"] = map[string]any{
			"laneCross":    f.LaneCross,
			"reverseDrive": f.ReverseDrive,
			"overCrowd":    f.OverCrowd,
			"longPark":     f.LongPark,
			"loitering":    f.Loitering,
			"breakIn":      f.BreakIn,
			"jaywalk":      f.Jaywalk,
		}
	}
	if obj := attachmentFields(msg.Object()); obj != nil {
		fields["object"] = obj
	}
	return fields
}

// attachmentFields maps a typed variant's descriptive fields. Masks stay in
// the full JSON encoding; custom payloads stay opaque and are skipped.
func attachmentFields(att schema.ObjectAttachment) map[string]any {
	switch v := att.(type) {
	case *schema.VehicleObject:
		return vehicleFields(v)
	case *schema.VehicleObjectExt:
		return vehicleFields(&v.VehicleObject)
	case *schema.PersonObject:
		return personFields(v)
	case *schema.PersonObjectExt:
		return personFields(&v.PersonObject)
	case *schema.FaceObject:
		return faceFields(v)
	case *schema.FaceObjectExt:
		return faceFields(&v.FaceObject)
	case *schema.ProductObject:
		return productFields(v)
	case *schema.ProductObjectExt:
		return productFields(&v.ProductObject)
	}
	return nil
}

func vehicleFields(v *schema.VehicleObject) map[string]any {
	return map[string]any{
		"type": v.Type, "make": v.Make, "model": v.Model,
		"color": v.Color, "region": v.Region, "license": v.License,
	}
}

func personFields(p *schema.PersonObject) map[string]any {
	return map[string]any{
		"gender": p.Gender, "hair": p.Hair, "cap": p.Cap,
		"apparel": p.Apparel, "age": float64(p.Age),
	}
}

func faceFields(f *schema.FaceObject) map[string]any {
	return map[string]any{
		"gender": f.Gender, "hair": f.Hair, "cap": f.Cap,
		"glasses": f.Glasses, "facialhair": f.FacialHair,
		"name": f.Name, "eyecolor": f.EyeColor, "age": float64(f.Age),
	}
}

func productFields(p *schema.ProductObject) map[string]any {
	return map[string]any{"brand": p.Brand, "type": p.Type, "shape": p.Shape}
}
