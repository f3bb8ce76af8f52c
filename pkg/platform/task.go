package platform

// SingleTask is a deferred task with at most one pending run.
//
// Schedule posts the task to its queue after invalidating any earlier
// post that has not fired yet, so any number of Schedule calls within
// one UI tick collapse into exactly one execution. Cancel invalidates
// the pending run without executing it. Stale posts left behind on the
// queue become no-ops rather than being removed from the queue.
//
// SingleTask is owned by a single thread: Schedule, Cancel, and the
// queued execution must all happen on that thread. It carries no
// internal locking.
type SingleTask struct {
	queue   Queue
	run     func()
	gen     uint64
	pending bool
}

// NewSingleTask creates a task that executes run on queue. A nil queue
// defaults to the UI-thread queue registered with RegisterDispatch.
func NewSingleTask(queue Queue, run func()) *SingleTask {
	if queue == nil {
		queue = Main()
	}
	return &SingleTask{queue: queue, run: run}
}

// Schedule queues one execution of the task, replacing any prior
// scheduled run that has not fired yet.
//
// If the queue rejects the post, the task simply stays pending; a later
// Schedule retries against the queue.
func (t *SingleTask) Schedule() {
	t.gen++
	t.pending = true
	gen := t.gen
	t.queue.Dispatch(func() {
		if !t.pending || t.gen != gen {
			return
		}
		t.pending = false
		t.run()
	})
}

// Cancel invalidates the pending run, if any. The queued callback still
// drains through the queue but does nothing when it fires.
func (t *SingleTask) Cancel() {
	t.gen++
	t.pending = false
}

// Pending reports whether a scheduled run has yet to execute.
func (t *SingleTask) Pending() bool { return t.pending }
