package field

import "sync"

// Workload names the caller class a Scratchpad is sized for, so the pool
// can hand back a correctly-sized pad without the caller tracking register
// counts itself.
type Workload int

const (
	// WorkloadPoint sizes a pad for Edwards point add/double. Extended's
	// Add/Double use registers r0-r8 (9 registers); Projective's Add uses
	// fewer but shares the same pool key, so the pad must be sized for
	// the larger of the two.
	WorkloadPoint Workload = iota
	// WorkloadLadder sizes a pad for the Montgomery ladder, which needs
	// registers for both (X:Z) pairs plus the differential-add terms.
	WorkloadLadder
	// WorkloadElligator sizes a pad for the Elligator-1/2 maps.
	WorkloadElligator
)

func (w Workload) regCount() int {
	switch w {
	case WorkloadPoint:
		return 9
	case WorkloadLadder:
		return 10
	case WorkloadElligator:
		return 8
	default:
		panic("field: unknown workload")
	}
}

// Scratchpad is an owned set of named working registers r0...rN bound to a
// single field, reused across operations to avoid allocation on hot paths.
// One goroutine at a time; acquire it from a Pool and release it when done.
//
// The pool contract: a pad returned by Acquire is NOT cleared. Callees
// treat every register as arbitrary scratch and must overwrite whatever
// they read before relying on it.
type Scratchpad struct {
	prime    *Prime
	workload Workload
	regs     []*Element
}

// Reg returns register i, allocating it lazily on first use.
func (s *Scratchpad) Reg(i int) *Element {
	if s.regs[i] == nil {
		s.regs[i] = New(s.prime)
	}
	return s.regs[i]
}

// Pool is a free-list of Scratchpads keyed by (field, workload), the
// systems-language stand-in for the source's thread-local pool: Go has no
// thread-locals, so each key gets its own sync.Pool, which already gives
// goroutine-safe, allocation-amortized reuse.
type Pool struct {
	mu    sync.Mutex
	pools map[poolKey]*sync.Pool
}

type poolKey struct {
	prime    *Prime
	workload Workload
}

// NewPool returns an empty scratchpad pool.
func NewPool() *Pool {
	return &Pool{pools: make(map[poolKey]*sync.Pool)}
}

func (p *Pool) poolFor(key poolKey) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	sp, ok := p.pools[key]
	if !ok {
		sp = &sync.Pool{New: func() interface{} {
			return &Scratchpad{prime: key.prime, workload: key.workload, regs: make([]*Element, key.workload.regCount())}
		}}
		p.pools[key] = sp
	}
	return sp
}

// Acquire returns a Scratchpad for the given field and workload. Callers
// must Release it on every exit path (success, validation failure, or
// panic recovery) — acquiring without releasing is a bug, not a leak the
// pool can detect.
func (p *Pool) Acquire(prime *Prime, workload Workload) *Scratchpad {
	key := poolKey{prime: prime, workload: workload}
	return p.poolFor(key).Get().(*Scratchpad)
}

// Release returns a Scratchpad to its pool. It is not cleared; the next
// Acquire may observe stale values in its registers.
func (p *Pool) Release(pad *Scratchpad) {
	p.poolFor(poolKey{prime: pad.prime, workload: pad.workload}).Put(pad)
}
