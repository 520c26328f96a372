package payload

import (
	"encoding/json"
	"fmt"

	"github.com/your-org/eventmeta/pkg/schema"
)

// minimalVersion is the schema version stamped on minimal payloads.
const minimalVersion = "4.0"

// MinimalEncoder produces the compact JSON message: one pipe-separated
// object string per record, suitable for high-rate links where the full
// schema is too heavy.
type MinimalEncoder struct{}

func (*MinimalEncoder) PayloadType() schema.PayloadType { return schema.PayloadMinimal }

type minimalMessage struct {
	Version   string   `json:"version"`
	ID        int32    `json:"id"`
	Timestamp string   `json:"@timestamp"`
	SensorID  string   `json:"sensorId"`
	Objects   []string `json:"objects"`
}

// Encode serializes one record to the minimal JSON schema. The object
// entry is "trackingId|left|top|width|height|label|eventType|confidence";
// label is the object-kind name, ObjectUnknown and custom kinds yield no
// object entry.
func (*MinimalEncoder) Encode(msg *schema.EventMsg) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("encode minimal: nil record")
	}
	if msg.Released() {
		return nil, fmt.Errorf("encode minimal: %w", schema.ErrReleased)
	}

	out := minimalMessage{
		Version:   minimalVersion,
		ID:        msg.FrameID,
		Timestamp: msg.Timestamp,
		SensorID:  msg.SensorStr,
		Objects:   []string{},
	}

	if msg.ObjType != schema.ObjectUnknown && !msg.ObjType.IsCustom() {
		out.Objects = append(out.Objects, fmt.Sprintf("%d|%.2f|%.2f|%.2f|%.2f|%s|%s|%.4f",
			msg.TrackingID,
			msg.BBox.Left, msg.BBox.Top, msg.BBox.Width, msg.BBox.Height,
			msg.ObjType, msg.Type, msg.Confidence))
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode minimal: %w", err)
	}
	return data, nil
}
