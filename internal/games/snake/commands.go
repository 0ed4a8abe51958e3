package snake

// DefaultQueueCapacity is how many direction changes can be buffered
// between moves.
const DefaultQueueCapacity = 3

// CommandQueue is a bounded FIFO of pending direction commands.
// Commands pushed while the queue is full are dropped.
type CommandQueue struct {
	buf   []Direction
	limit int
}

// NewCommandQueue creates a queue holding at most limit commands.
func NewCommandQueue(limit int) *CommandQueue {
	if limit <= 0 {
		limit = DefaultQueueCapacity
	}
	return &CommandQueue{
		buf:   make([]Direction, 0, limit),
		limit: limit,
	}
}

// Push appends d if there is room. It reports whether d was accepted.
func (q *CommandQueue) Push(d Direction) bool {
	if len(q.buf) >= q.limit {
		return false
	}
	q.buf = append(q.buf, d)
	return true
}

// Pop removes and returns the oldest command.
func (q *CommandQueue) Pop() (Direction, bool) {
	if len(q.buf) == 0 {
		return DirRight, false
	}
	d := q.buf[0]
	copy(q.buf, q.buf[1:])
	q.buf = q.buf[:len(q.buf)-1]
	return d, true
}

// Resolve pops commands until one does not reverse current and returns it.
// Reversals are discarded. If the queue runs dry, current is returned.
func (q *CommandQueue) Resolve(current Direction) Direction {
	for {
		next, ok := q.Pop()
		if !ok {
			return current
		}
		if !next.IsOpposite(current) {
			return next
		}
	}
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	return len(q.buf)
}

// Cap returns the queue capacity.
func (q *CommandQueue) Cap() int {
	return q.limit
}

// Clear drops all pending commands.
func (q *CommandQueue) Clear() {
	q.buf = q.buf[:0]
}
