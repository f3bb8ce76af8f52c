package trace

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/recycler/pkg/animation"
	recerrors "github.com/go-drift/recycler/pkg/errors"
	rectest "github.com/go-drift/recycler/pkg/testing"
	"github.com/go-drift/recycler/pkg/viewport"
)

func TestWriterReadAll_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	written := []Event{
		{Kind: EventViewportChange, At: 1000, First: 0, Last: 9, FirstFully: 0, LastFully: 9, Reason: "scroll"},
		{Kind: EventViewportChange, At: 2000, First: viewport.NoPosition, Last: viewport.NoPosition, FirstFully: viewport.NoPosition, LastFully: viewport.NoPosition, Reason: "data-change"},
		{Kind: EventScrollSample, At: 3000, Offset: 181.5},
		{Kind: EventMark, At: 4000, Label: "reload"},
	}
	for _, event := range written {
		require.NoError(t, w.Write(event))
	}

	read, err := ReadAll(&buf)
	require.NoError(t, err)
	require.Equal(t, written, read)
}

func TestFrameReader_PartialFeeds(t *testing.T) {
	frame, err := EncodeFrame(Event{Kind: EventMark, At: 7, Label: "half"})
	require.NoError(t, err)

	fr := NewFrameReader()

	events, err := fr.Feed(frame[:HeaderSize+2])
	require.NoError(t, err)
	require.Empty(t, events)

	events, err = fr.Feed(frame[HeaderSize+2:])
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "half", events[0].Label)
	require.Equal(t, 0, fr.PendingBytes())
}

func TestFrameReader_ResyncsAfterGarbage(t *testing.T) {
	frame, err := EncodeFrame(Event{Kind: EventMark, At: 7, Label: "ok"})
	require.NoError(t, err)

	data := append([]byte("garbage!"), frame...)

	fr := NewFrameReader()
	events, err := fr.Feed(data)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "ok", events[0].Label)
}

func TestReadAll_TruncatedTrace(t *testing.T) {
	frame, err := EncodeFrame(Event{Kind: EventMark, At: 7, Label: "whole"})
	require.NoError(t, err)

	data := append(append([]byte{}, frame...), frame[:5]...)

	events, err := ReadAll(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrTruncatedTrace)
	require.Len(t, events, 1)
}

func TestRecorder_CapturesDispatches(t *testing.T) {
	clk := rectest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	var buf bytes.Buffer
	recorder := NewRecorder(&buf)

	layout := rectest.NewScriptedLayout()
	queue := rectest.NewFakeQueue()
	tracker := viewport.NewTracker(viewport.NoPosition, viewport.NoPosition, layout, queue)
	tracker.AddListener(recorder)

	layout.Set(0, 9, 0, 9, 50)
	tracker.OnScrolled()

	clk.Advance(16 * time.Millisecond)
	layout.Set(5, 14, 6, 13, 50)
	tracker.OnScrolled()

	events, err := ReadAll(&buf)
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.Equal(t, EventViewportChange, events[0].Kind)
	require.Equal(t, "scroll", events[0].Reason)
	require.Equal(t, 0, events[0].First)
	require.Equal(t, 9, events[0].Last)

	require.Equal(t, 5, events[1].First)
	require.Equal(t, clk.Now().UnixNano(), events[1].At)
}

func TestRecorder_MarksAndSamples(t *testing.T) {
	var buf bytes.Buffer
	recorder := NewRecorder(&buf)

	recorder.Mark("reload")
	recorder.RecordScroll(181.5)

	events, err := ReadAll(&buf)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, EventMark, events[0].Kind)
	require.Equal(t, "reload", events[0].Label)
	require.Equal(t, EventScrollSample, events[1].Kind)
	require.Equal(t, 181.5, events[1].Offset)
}

type failWriter struct {
	err error
}

func (w failWriter) Write([]byte) (int, error) {
	return 0, w.err
}

type captureHandler struct {
	last *recerrors.Error
}

func (h *captureHandler) HandleError(err *recerrors.Error) { h.last = err }

func (h *captureHandler) HandlePanic(err *recerrors.PanicError) {}

func TestRecorder_ReportsWriteFailures(t *testing.T) {
	sentinel := errors.New("disk full")
	handler := &captureHandler{}
	recerrors.SetHandler(handler)
	defer recerrors.SetHandler(nil)

	recorder := NewRecorder(failWriter{err: sentinel})
	recorder.Mark("doomed")

	require.NotNil(t, handler.last)
	require.Equal(t, "trace.Recorder", handler.last.Op)
	require.Equal(t, recerrors.KindTrace, handler.last.Kind)
	require.ErrorIs(t, handler.last, sentinel)
}
