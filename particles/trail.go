package particles

import "github.com/yohamta/donburi/features/math"

// TrailCap is the number of recent positions a particle remembers.
const TrailCap = 8

// Trail is a fixed-capacity FIFO of recent positions.
// Index 0 is the oldest point, Len()-1 the newest.
type Trail struct {
	buf   [TrailCap]math.Vec2
	start int
	n     int
}

// Push appends p, evicting the oldest point when the trail is full.
func (t *Trail) Push(p math.Vec2) {
	if t.n < TrailCap {
		t.buf[(t.start+t.n)%TrailCap] = p
		t.n++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % TrailCap
}

func (t *Trail) Len() int {
	return t.n
}

// At returns the i-th point, oldest first.
func (t *Trail) At(i int) math.Vec2 {
	return t.buf[(t.start+i)%TrailCap]
}

func (t *Trail) Clear() {
	t.start = 0
	t.n = 0
}
