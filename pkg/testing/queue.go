package testing

// FakeQueue is a platform.Queue that captures tasks for explicit,
// single-threaded draining. The zero value is ready to use.
type FakeQueue struct {
	tasks    []func()
	rejected bool
}

// NewFakeQueue returns an empty queue.
func NewFakeQueue() *FakeQueue {
	return &FakeQueue{}
}

// Dispatch appends task to the queue. While Reject has been toggled
// on, tasks are dropped and Dispatch returns false.
func (q *FakeQueue) Dispatch(task func()) bool {
	if q.rejected {
		return false
	}
	q.tasks = append(q.tasks, task)
	return true
}

// Pump runs the tasks queued so far, in order, and returns how many ran.
// Tasks queued by those tasks stay behind for the next Pump, mirroring
// one UI-thread tick.
func (q *FakeQueue) Pump() int {
	tasks := q.tasks
	q.tasks = nil
	for _, task := range tasks {
		task()
	}
	return len(tasks)
}

// PumpAll pumps until the queue stays empty and returns how many tasks
// ran in total.
func (q *FakeQueue) PumpAll() int {
	total := 0
	for len(q.tasks) > 0 {
		total += q.Pump()
	}
	return total
}

// Pending returns the number of queued tasks.
func (q *FakeQueue) Pending() int {
	return len(q.tasks)
}

// Reject controls whether Dispatch drops incoming tasks, for tests that
// simulate a host without a registered dispatcher.
func (q *FakeQueue) Reject(reject bool) {
	q.rejected = reject
}
