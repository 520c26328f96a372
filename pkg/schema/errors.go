package schema

import "errors"

var (
	// ErrKindMismatch reports a tag/variant disagreement at attach or read
	// time: the record's declared object kind does not match the attachment.
	ErrKindMismatch = errors.New("object kind mismatch")

	// ErrLengthMismatch reports a declared length or count that disagrees
	// with the actual stored element count (signature, pose, embedding).
	ErrLengthMismatch = errors.New("declared length mismatch")

	// ErrDoubleRelease reports a second Release of an already released
	// record.
	ErrDoubleRelease = errors.New("record already released")

	// ErrReleased reports use of a record after Release.
	ErrReleased = errors.New("record is released")

	// ErrFinalized reports an attempted mutation of a finalized record.
	ErrFinalized = errors.New("record is finalized")

	// ErrUnsupportedKind reports use of a tag with no registered handler,
	// or a tag outside both the built-in set and the consumer range.
	ErrUnsupportedKind = errors.New("unsupported kind")
)
