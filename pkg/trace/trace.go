// Package trace is a flight recorder for recycler activity. It frames
// viewport dispatches, scroll samples, and host marks as CBOR events so
// a session can be captured to any io.Writer and replayed later.
//
// # Wire Format
//
// Each event is one frame: an 8-byte header followed by a CBOR payload.
//
//	[0:2]  magic   (big-endian uint16, 0x5254 "RT")
//	[2]    version (uint8, 1)
//	[3]    kind    (uint8, EventKind)
//	[4:8]  length  (little-endian uint32, payload bytes)
//
// The streaming [FrameReader] resynchronizes on the magic bytes, so a
// corrupted region costs the frames it covers, not the rest of the file.
package trace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Wire format constants.
const (
	HeaderSize      = 8
	Magic           = 0x5254 // ASCII 'RT'
	ProtocolVersion = 1
)

// Errors returned by trace framing functions.
var (
	ErrBufferTooShort = errors.New("buffer too short for frame header")
	ErrBadMagic       = errors.New("invalid magic bytes in frame header")
	ErrTruncatedTrace = errors.New("trailing bytes do not form a complete frame")
)

// EventKind identifies what a trace event records.
type EventKind uint8

const (
	// EventViewportChange is a dispatched visible-range change.
	EventViewportChange EventKind = iota + 1
	// EventScrollSample is a raw scroll offset sample.
	EventScrollSample
	// EventMark is a host-defined annotation.
	EventMark
)

// Event is one recorded occurrence. Fields beyond Kind and At are
// populated according to the kind.
type Event struct {
	Kind EventKind `cbor:"kind"`
	// At is the capture time in nanoseconds, read from the animation
	// clock so traces are deterministic under a fake clock.
	At int64 `cbor:"at"`

	First      int    `cbor:"first,omitempty"`
	Last       int    `cbor:"last,omitempty"`
	FirstFully int    `cbor:"firstFully,omitempty"`
	LastFully  int    `cbor:"lastFully,omitempty"`
	Reason     string `cbor:"reason,omitempty"`

	Offset float64 `cbor:"offset,omitempty"`
	Label  string  `cbor:"label,omitempty"`
}

// EncodeHeader writes an 8-byte frame header for the given event kind
// and payload length.
func EncodeHeader(kind EventKind, payloadLength uint32) []byte {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint16(buf[0:2], Magic)
	buf[2] = ProtocolVersion
	buf[3] = byte(kind)
	binary.LittleEndian.PutUint32(buf[4:8], payloadLength)
	return buf
}

// DecodeHeader parses an 8-byte frame header from data.
func DecodeHeader(data []byte) (kind EventKind, length uint32, err error) {
	if len(data) < HeaderSize {
		return 0, 0, ErrBufferTooShort
	}
	if binary.BigEndian.Uint16(data[0:2]) != Magic {
		return 0, 0, ErrBadMagic
	}
	return EventKind(data[3]), binary.LittleEndian.Uint32(data[4:8]), nil
}

// EncodeFrame encodes one event into a complete frame.
func EncodeFrame(event Event) ([]byte, error) {
	payload, err := cbor.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("cbor encode: %w", err)
	}
	frame := make([]byte, 0, HeaderSize+len(payload))
	frame = append(frame, EncodeHeader(event.Kind, uint32(len(payload)))...)
	frame = append(frame, payload...)
	return frame, nil
}

// Writer appends framed events to an underlying stream.
type Writer struct {
	w io.Writer
}

// NewWriter creates a trace writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write frames and writes one event.
func (t *Writer) Write(event Event) error {
	frame, err := EncodeFrame(event)
	if err != nil {
		return err
	}
	if _, err := t.w.Write(frame); err != nil {
		return fmt.Errorf("trace write: %w", err)
	}
	return nil
}
