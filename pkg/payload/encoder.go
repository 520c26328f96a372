// Package payload produces wire payload envelopes from finalized event
// records. The built-in encoders cover the full and minimal JSON schemas
// and a protobuf encoding; consumers register their own encoders under
// payload types in the reserved range.
package payload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/eventmeta/pkg/schema"
)

// ErrEncodeFailed reports an encoder failure for one record.
var ErrEncodeFailed = errors.New("encode failed")

// Encoder serializes one finalized event record. Implementations must not
// mutate the record and must return an error rather than partial output.
type Encoder interface {
	// PayloadType identifies the encoding this encoder produces.
	PayloadType() schema.PayloadType
	// Encode serializes one record.
	Encode(msg *schema.EventMsg) ([]byte, error)
}

// RecordError ties an encode failure to its index in the input batch.
type RecordError struct {
	Index int
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }

// Is makes every record failure match ErrEncodeFailed.
func (e RecordError) Is(target error) bool { return target == ErrEncodeFailed }

// BatchError aggregates the per-record failures of one batch. Records that
// encoded successfully still produce payloads; BatchError reports only the
// failures.
type BatchError struct {
	Records []RecordError
}

func (e *BatchError) Error() string {
	msgs := make([]string, len(e.Records))
	for i, r := range e.Records {
		msgs[i] = r.Error()
	}
	return fmt.Sprintf("encode batch: %d record(s) failed: %s", len(e.Records), strings.Join(msgs, "; "))
}

func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Records))
	for i := range e.Records {
		errs[i] = e.Records[i]
	}
	return errs
}

// EncodeBatch encodes a batch of records with one encoder, stamping every
// produced payload with the batch's originating component id. Failures are
// reported per record through a *BatchError; payloads for the records that
// succeeded are still returned.
func EncodeBatch(enc Encoder, msgs []*schema.EventMsg, componentID uint) ([]schema.Payload, error) {
	payloads := make([]schema.Payload, 0, len(msgs))
	var failed []RecordError
	for i, msg := range msgs {
		data, err := enc.Encode(msg)
		if err != nil {
			failed = append(failed, RecordError{Index: i, Err: err})
			continue
		}
		payloads = append(payloads, schema.NewPayload(data, componentID))
	}
	if len(failed) > 0 {
		return payloads, &BatchError{Records: failed}
	}
	return payloads, nil
}
