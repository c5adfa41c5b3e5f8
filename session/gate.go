package session

// Kind identifies a remote operation
type Kind int

const (
	KindSubmit Kind = iota
	KindAsk
	KindComments
)

func (k Kind) String() string {
	switch k {
	case KindSubmit:
		return "submit"
	case KindAsk:
		return "ask"
	case KindComments:
		return "comments"
	default:
		return "unknown"
	}
}

// Gate tracks which operations are in flight with one token slot per Kind.
//
// Submit is exclusive with everything: it resets the per-video state the
// other operations write into. Ask and comment loading may overlap.
type Gate struct {
	next   uint64
	tokens map[Kind]uint64
}

// NewGate creates an empty gate
func NewGate() *Gate {
	return &Gate{tokens: make(map[Kind]uint64)}
}

// CanAcquire reports whether an operation of kind k may start now
func (g *Gate) CanAcquire(k Kind) bool {
	if _, ok := g.tokens[k]; ok {
		return false
	}
	if k == KindSubmit {
		return len(g.tokens) == 0
	}
	_, submitting := g.tokens[KindSubmit]
	return !submitting
}

// Acquire takes the slot for k and returns its token, or false if CanAcquire is false
func (g *Gate) Acquire(k Kind) (uint64, bool) {
	if !g.CanAcquire(k) {
		return 0, false
	}
	g.next++
	g.tokens[k] = g.next
	return g.next, true
}

// Release frees the slot for k if it is still held by token.
// Returns false for a stale token.
func (g *Gate) Release(k Kind, token uint64) bool {
	held, ok := g.tokens[k]
	if !ok || held != token {
		return false
	}
	delete(g.tokens, k)
	return true
}

// Holds reports whether token still owns the slot for k
func (g *Gate) Holds(k Kind, token uint64) bool {
	held, ok := g.tokens[k]
	return ok && held == token
}

// InFlight reports whether an operation of kind k is outstanding
func (g *Gate) InFlight(k Kind) bool {
	_, ok := g.tokens[k]
	return ok
}

// Loading reports whether any operation is outstanding
func (g *Gate) Loading() bool {
	return len(g.tokens) > 0
}
