package trace

import (
	"io"

	"github.com/go-drift/recycler/pkg/animation"
	"github.com/go-drift/recycler/pkg/errors"
	"github.com/go-drift/recycler/pkg/viewport"
)

// Recorder captures recycler activity to a trace stream. It implements
// viewport.Listener, so registering it on a tracker records every
// dispatched change; hosts add scroll samples and marks themselves.
//
// Write failures are reported to the global error handler rather than
// returned, since listener dispatch has no error channel.
type Recorder struct {
	writer *Writer
}

var _ viewport.Listener = (*Recorder)(nil)

// NewRecorder creates a recorder writing framed events to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{writer: NewWriter(w)}
}

// OnViewportChanged records a dispatched visible-range change.
func (r *Recorder) OnViewportChanged(first, last, firstFully, lastFully int, reason viewport.Reason) {
	r.write(Event{
		Kind:       EventViewportChange,
		At:         animation.Now().UnixNano(),
		First:      first,
		Last:       last,
		FirstFully: firstFully,
		LastFully:  lastFully,
		Reason:     reason.String(),
	})
}

// RecordScroll records a raw scroll offset sample.
func (r *Recorder) RecordScroll(offset float64) {
	r.write(Event{
		Kind:   EventScrollSample,
		At:     animation.Now().UnixNano(),
		Offset: offset,
	})
}

// Mark records a host-defined annotation, such as "reload".
func (r *Recorder) Mark(label string) {
	r.write(Event{
		Kind:  EventMark,
		At:    animation.Now().UnixNano(),
		Label: label,
	})
}

func (r *Recorder) write(event Event) {
	if err := r.writer.Write(event); err != nil {
		errors.Report(&errors.Error{
			Op:   "trace.Recorder",
			Kind: errors.KindTrace,
			Err:  err,
		})
	}
}
