// Package schema defines the metadata model for video-analytics events:
// detections, tracked objects, and derived behavior annotations.
//
// A perception pipeline constructs one EventMsg per detected or derived
// occurrence and hands it off to a message encoder. The record carries a
// closed set of typed object descriptions (vehicle, person, face, product)
// behind a tagged extension slot, plus an open range of consumer-defined
// kinds (tags >= ObjectReserved) whose payloads stay opaque to this package.
//
// String-valued descriptive fields use the empty string as the "unknown"
// sentinel; they are always valid strings, never absent. Optional blocks
// (location, pose, embedding, analytics) use explicit presence: a nil
// accessor result means the block was never attached.
package schema
