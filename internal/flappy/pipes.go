package flappy

import "iter"

// PipeQueue is a growable ring buffer of pipes in creation order. Pipes are
// appended at the back and removed from the front in O(1).
// The zero value is an empty queue ready to use.
type PipeQueue struct {
	buf  []Pipe
	head int
	n    int
}

// Len returns the number of pipes in the queue.
func (q *PipeQueue) Len() int {
	return q.n
}

// PushBack appends a pipe.
func (q *PipeQueue) PushBack(p Pipe) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = p
	q.n++
}

// Front returns the oldest pipe. The pointer is valid until the next
// PushBack or PopFront.
func (q *PipeQueue) Front() (*Pipe, bool) {
	if q.n == 0 {
		return nil, false
	}
	return &q.buf[q.head], true
}

// PopFront removes and returns the oldest pipe.
func (q *PipeQueue) PopFront() (Pipe, bool) {
	if q.n == 0 {
		return Pipe{}, false
	}
	p := q.buf[q.head]
	q.buf[q.head] = Pipe{}
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return p, true
}

// At returns the i-th pipe counting from the front.
func (q *PipeQueue) At(i int) *Pipe {
	if i < 0 || i >= q.n {
		panic("flappy: pipe index out of range")
	}
	return &q.buf[(q.head+i)%len(q.buf)]
}

// All iterates over the pipes front to back, yielding mutable pointers.
func (q *PipeQueue) All() iter.Seq2[int, *Pipe] {
	return func(yield func(int, *Pipe) bool) {
		for i := 0; i < q.n; i++ {
			if !yield(i, q.At(i)) {
				return
			}
		}
	}
}

// Slice returns a copy of the pipes, front first.
func (q *PipeQueue) Slice() []Pipe {
	out := make([]Pipe, q.n)
	for i := range out {
		out[i] = *q.At(i)
	}
	return out
}

// Clear empties the queue, keeping its storage.
func (q *PipeQueue) Clear() {
	clear(q.buf)
	q.head = 0
	q.n = 0
}

func (q *PipeQueue) grow() {
	size := 2 * len(q.buf)
	if size == 0 {
		size = 8
	}
	buf := make([]Pipe, size)
	for i := 0; i < q.n; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
