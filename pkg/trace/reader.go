package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// FrameReader is a streaming parser that buffers incoming bytes and
// extracts complete events. It handles partial reads.
type FrameReader struct {
	buffer []byte
}

// NewFrameReader creates a new streaming frame reader.
func NewFrameReader() *FrameReader {
	return &FrameReader{
		buffer: make([]byte, 0, 4096),
	}
}

// Feed appends data to the internal buffer and returns any complete
// events that can be extracted. Remaining partial data stays buffered.
func (fr *FrameReader) Feed(data []byte) ([]Event, error) {
	fr.buffer = append(fr.buffer, data...)

	var events []Event

	for len(fr.buffer) >= HeaderSize {
		_, length, err := DecodeHeader(fr.buffer)
		if err != nil {
			if errors.Is(err, ErrBadMagic) {
				// Skip one byte and look for the next frame boundary.
				fr.buffer = fr.buffer[1:]
				continue
			}
			return events, err
		}

		totalSize := HeaderSize + int(length)
		if len(fr.buffer) < totalSize {
			break // need more data
		}

		var event Event
		if err := cbor.Unmarshal(fr.buffer[HeaderSize:totalSize], &event); err != nil {
			fr.buffer = fr.buffer[totalSize:]
			return events, fmt.Errorf("cbor unmarshal: %w", err)
		}
		events = append(events, event)
		fr.buffer = fr.buffer[totalSize:]
	}

	return events, nil
}

// PendingBytes returns the number of bytes buffered but not yet
// forming a complete frame.
func (fr *FrameReader) PendingBytes() int {
	return len(fr.buffer)
}

// ReadAll decodes every event in r. It returns ErrTruncatedTrace
// alongside the decoded events when the stream ends mid-frame.
func ReadAll(r io.Reader) ([]Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	fr := NewFrameReader()
	events, err := fr.Feed(data)
	if err != nil {
		return events, err
	}
	if fr.PendingBytes() > 0 {
		return events, ErrTruncatedTrace
	}
	return events, nil
}
