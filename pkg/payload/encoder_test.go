package payload

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/your-org/eventmeta/pkg/schema"
)

func newPersonMsg(t *testing.T) *schema.EventMsg {
	t.Helper()
	msg, err := schema.NewEventMsg(schema.EventMsgParams{
		Type:        schema.EventMoving,
		ObjType:     schema.ObjectPerson,
		BBox:        schema.Rect{Top: 10, Left: 20, Width: 40, Height: 80},
		ObjClassID:  2,
		SensorID:    4,
		ModuleID:    1,
		PlaceID:     9,
		ComponentID: 3,
		FrameID:     512,
		Confidence:  0.87,
		TrackingID:  42,
		Timestamp:   "2023-08-03T10:15:00.000Z",
		ObjectID:    "obj-42",
		SensorStr:   "cam-crosswalk-04",
		VideoPath:   "/clips/crosswalk/512.mp4",
	})
	require.NoError(t, err)
	require.NoError(t, msg.AttachObject(&schema.PersonObject{Gender: "male", Hair: "black", Apparel: "jacket", Age: 30}))
	require.NoError(t, msg.SetLocation(schema.GeoLocation{Lat: 37.33, Lon: -121.88, Alt: 4}))
	require.NoError(t, msg.SetEmbedding(schema.NewEmbedding([]float32{0.5, 0.5, 0.5, 0.5})))

	a := schema.NewAnalytics()
	a.Direction = schema.MoveDown
	a.Status = schema.StatusPersonJaywalk
	a.LaneCount = 2
	a.Lanes[0], a.Lanes[1] = 3, 7
	require.NoError(t, msg.SetAnalytics(a))
	require.NoError(t, msg.SetFlags(schema.BehaviorFlags{Jaywalk: true}))

	msg.Finalize()
	return msg
}

// snapshot captures the observable state of a record so tests can prove
// encoders leave their input untouched.
type snapshot struct {
	Type       schema.EventType
	ObjType    schema.ObjectType
	BBox       schema.Rect
	Confidence float64
	TrackingID uint64
	Timestamp  string
	Location   *schema.GeoLocation
	Embedding  []float32
	LaneCount  int
	Flags      schema.BehaviorFlags
	Finalized  bool
	Released   bool
}

func snapshotOf(msg *schema.EventMsg) snapshot {
	s := snapshot{
		Type:       msg.Type,
		ObjType:    msg.ObjType,
		BBox:       msg.BBox,
		Confidence: msg.Confidence,
		TrackingID: msg.TrackingID,
		Timestamp:  msg.Timestamp,
		Location:   msg.Location(),
		Flags:      msg.Flags(),
		Finalized:  msg.Finalized(),
		Released:   msg.Released(),
	}
	if emb := msg.Embedding(); emb != nil {
		s.Embedding = emb.Vector
	}
	if a := msg.Analytics(); a != nil {
		s.LaneCount = a.LaneCount
	}
	return s
}

func TestFullEncoderShape(t *testing.T) {
	msg := newPersonMsg(t)

	data, err := (&FullEncoder{}).Encode(msg)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	assert.NotEmpty(t, out["messageid"])
	assert.Equal(t, "1.0", out["mdsversion"])
	assert.Equal(t, "2023-08-03T10:15:00.000Z", out["@timestamp"])
	assert.Equal(t, "/clips/crosswalk/512.mp4", out["videoPath"])

	event := out["event"].(map[string]any)
	assert.Equal(t, "moving", event["type"])

	obj := out["object"].(map[string]any)
	assert.Equal(t, "obj-42", obj["id"])
	assert.Equal(t, float64(42), obj["trackingId"])

	bbox := obj["bbox"].(map[string]any)
	assert.Equal(t, float64(20), bbox["topleftx"])
	assert.Equal(t, float64(60), bbox["bottomrightx"])
	assert.Equal(t, float64(90), bbox["bottomrighty"])

	person := obj["person"].(map[string]any)
	assert.Equal(t, "male", person["gender"])
	assert.Equal(t, float64(30), person["age"])

	analytics := obj["analytics"].(map[string]any)
	assert.Equal(t, "down", analytics["direction"])
	assert.Equal(t, "person-jaywalk", analytics["status"])
	assert.Equal(t, []any{float64(3), float64(7)}, analytics["lanes"])

	behavior := obj["behavior"].(map[string]any)
	assert.Equal(t, true, behavior["jaywalk"])
	assert.Equal(t, false, behavior["laneCross"])
}

func TestFullEncoderOmitsObjectForUnknown(t *testing.T) {
	msg, err := schema.NewEventMsg(schema.EventMsgParams{
		Type:      schema.EventEmpty,
		ObjType:   schema.ObjectUnknown,
		Timestamp: "2023-08-03T10:16:00.000Z",
	})
	require.NoError(t, err)

	data, encErr := (&FullEncoder{}).Encode(msg)
	require.NoError(t, encErr)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	_, hasObject := out["object"]
	assert.False(t, hasObject, "unknown object type must not emit an object key")
}

func TestMinimalEncoderShape(t *testing.T) {
	msg := newPersonMsg(t)

	data, err := (&MinimalEncoder{}).Encode(msg)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "4.0", out["version"])
	assert.Equal(t, float64(512), out["id"])
	assert.Equal(t, "cam-crosswalk-04", out["sensorId"])

	objects := out["objects"].([]any)
	require.Len(t, objects, 1)
	assert.Equal(t, "42|20.00|10.00|40.00|80.00|person|moving|0.8700", objects[0])
}

func TestProtobufEncoderRoundTrip(t *testing.T) {
	msg := newPersonMsg(t)

	data, err := (&ProtobufEncoder{}).Encode(msg)
	require.NoError(t, err)

	var st structpb.Struct
	require.NoError(t, proto.Unmarshal(data, &st))

	fields := st.AsMap()
	assert.Equal(t, "moving", fields["eventType"])
	assert.Equal(t, "person", fields["objectType"])
	assert.Equal(t, float64(42), fields["trackingId"])

	bbox := fields["bbox"].(map[string]any)
	assert.Equal(t, float64(40), bbox["width"])

	obj := fields["object"].(map[string]any)
	assert.Equal(t, "jacket", obj["apparel"])

	analytics := fields["analytics"].(map[string]any)
	assert.Equal(t, "person-jaywalk", analytics["status"])
	assert.Equal(t, []any{float64(3), float64(7)}, analytics["lanes"])
}

func TestEncodersDoNotMutateRecords(t *testing.T) {
	encoders := []Encoder{&FullEncoder{}, &MinimalEncoder{}, &ProtobufEncoder{}}
	for _, enc := range encoders {
		msg := newPersonMsg(t)
		before := snapshotOf(msg)

		_, err := enc.Encode(msg)
		require.NoError(t, err)

		if diff := cmp.Diff(before, snapshotOf(msg)); diff != "" {
			t.Errorf("encoder 0x%x mutated the record (-before +after):\n%s", int32(enc.PayloadType()), diff)
		}
	}
}

func TestEncodeBatchReportsPerRecord(t *testing.T) {
	good := newPersonMsg(t)
	bad := newPersonMsg(t)
	require.NoError(t, bad.Release())
	good2 := newPersonMsg(t)

	payloads, err := EncodeBatch(&FullEncoder{}, []*schema.EventMsg{good, bad, good2}, 3)

	// Partial success: the two good records still produce payloads.
	require.Len(t, payloads, 2)
	for _, p := range payloads {
		assert.Equal(t, uint(3), p.ComponentID)
		assert.Equal(t, uint(len(p.Data)), p.Size)
	}

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncodeFailed)

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	require.Len(t, batchErr.Records, 1)
	assert.Equal(t, 1, batchErr.Records[0].Index)
	assert.ErrorIs(t, batchErr.Records[0], schema.ErrReleased)
}

func TestEncodeBatchAllSucceed(t *testing.T) {
	msgs := []*schema.EventMsg{newPersonMsg(t), newPersonMsg(t)}
	payloads, err := EncodeBatch(&MinimalEncoder{}, msgs, 7)
	require.NoError(t, err)
	require.Len(t, payloads, 2)
	assert.Equal(t, uint(7), payloads[0].ComponentID)
}

// yamlEncoder is the consumer-registered custom encoder used by the
// registry tests.
type yamlEncoder struct{}

func (yamlEncoder) PayloadType() schema.PayloadType { return schema.PayloadType(0x102) }

func (yamlEncoder) Encode(msg *schema.EventMsg) ([]byte, error) {
	if msg.Released() {
		return nil, schema.ErrReleased
	}
	return yaml.Marshal(map[string]any{
		"event":       msg.Type.String(),
		"object":      msg.ObjType.String(),
		"tracking_id": msg.TrackingID,
		"sensor":      msg.SensorStr,
	})
}

type badTypeEncoder struct{}

func (badTypeEncoder) PayloadType() schema.PayloadType { return schema.PayloadFull }

func (badTypeEncoder) Encode(*schema.EventMsg) ([]byte, error) {
	return nil, errors.New("unused")
}

func TestRegistryBuiltins(t *testing.T) {
	reg := NewRegistry()
	for _, typ := range []schema.PayloadType{schema.PayloadFull, schema.PayloadMinimal, schema.PayloadProtobuf} {
		enc, err := reg.Encoder(typ)
		require.NoError(t, err)
		assert.Equal(t, typ, enc.PayloadType())
	}
}

func TestRegistryCustomEncoder(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(yamlEncoder{}))

	payloads, err := reg.EncodeBatch(schema.PayloadType(0x102), []*schema.EventMsg{newPersonMsg(t)}, 5)
	require.NoError(t, err)
	require.Len(t, payloads, 1)
	assert.Equal(t, uint(5), payloads[0].ComponentID)

	var out map[string]any
	require.NoError(t, yaml.Unmarshal(payloads[0].Data, &out))
	assert.Equal(t, "moving", out["event"])
	assert.Equal(t, "person", out["object"])
	assert.Equal(t, 42, out["tracking_id"])
}

func TestRegistryRejectsBuiltinRange(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(badTypeEncoder{})
	assert.ErrorIs(t, err, schema.ErrUnsupportedKind)
}

func TestRegistryUnknownType(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Encoder(schema.PayloadType(0x300))
	assert.ErrorIs(t, err, schema.ErrUnsupportedKind)

	_, err = reg.EncodeBatch(schema.PayloadType(0x300), nil, 0)
	assert.ErrorIs(t, err, schema.ErrUnsupportedKind)
}
