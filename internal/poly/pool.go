package poly

// Pool is a fixed-capacity pool of scratch Polyhedra. The dual/truncation
// operators and composite constructors draw their working copies from here
// instead of the call stack; a Polyhedron is tens of kilobytes, and the
// deepest constructor chain holds four at once.
//
// Get returns ok=false when the pool is exhausted; operators treat that as
// a silent failure and leave their output untouched.
type Pool struct {
	bufs []Polyhedron
	free []*Polyhedron
}

// NewPool allocates a pool holding n scratch polyhedra.
func NewPool(n int) *Pool {
	p := &Pool{bufs: make([]Polyhedron, n)}
	p.free = make([]*Polyhedron, 0, n)
	for i := range p.bufs {
		p.free = append(p.free, &p.bufs[i])
	}
	return p
}

// Get acquires a zeroed scratch polyhedron. Callers must Put it back on
// every exit path, normally via defer.
func (pl *Pool) Get() (*Polyhedron, bool) {
	n := len(pl.free)
	if n == 0 {
		return nil, false
	}
	p := pl.free[n-1]
	pl.free = pl.free[:n-1]
	*p = Polyhedron{}
	return p, true
}

// Put returns a scratch polyhedron to the pool. Nil is ignored.
func (pl *Pool) Put(p *Polyhedron) {
	if p == nil {
		return
	}
	pl.free = append(pl.free, p)
}

// Free reports how many scratch polyhedra are currently available.
func (pl *Pool) Free() int { return len(pl.free) }
