package sparsecs

// fifo is a growable ring buffer. Free component slots and recycled entity
// ids both go through one so that the oldest released value is reused first.
type fifo[T any] struct {
	buf  []T
	head int
	n    int
}

func (q *fifo[T]) len() int {
	return q.n
}

func (q *fifo[T]) push(v T) {
	if q.n == len(q.buf) {
		q.resize(max(2*len(q.buf), 8))
	}
	q.buf[(q.head+q.n)%len(q.buf)] = v
	q.n++
}

// pop removes and returns the oldest value.
func (q *fifo[T]) pop() (T, bool) {
	var zero T
	if q.n == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return v, true
}

func (q *fifo[T]) clear() {
	clear(q.buf)
	q.head = 0
	q.n = 0
}

// resize copies the queued values, oldest first, into a buffer of size c.
func (q *fifo[T]) resize(c int) {
	nb := make([]T, c)
	if q.n > 0 {
		if q.head+q.n <= len(q.buf) {
			copy(nb, q.buf[q.head:q.head+q.n])
		} else {
			k := copy(nb, q.buf[q.head:])
			copy(nb[k:], q.buf[:q.n-k])
		}
	}
	q.buf = nb
	q.head = 0
}
