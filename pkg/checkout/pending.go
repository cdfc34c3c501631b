package checkout

import (
	"sync"
	"time"

	"github.com/aamart/storefront/pkg/domain"
	"github.com/google/uuid"
)

type attemptPhase int

const (
	// phaseCreating: the checkout-session request is outstanding. A second
	// place-order in this phase is rejected, not queued.
	phaseCreating attemptPhase = iota
	// phaseRedirected: control has left for the hosted payment page. The
	// record survives until the provider's callback (or the next attempt)
	// so a later callback can be interpreted across a full page reload.
	phaseRedirected
)

type attempt struct {
	id        uuid.UUID
	sessionID string
	phase     attemptPhase
	startedAt time.Time
}

// PendingStore records at most one checkout attempt per shopper. It is the
// local context that makes the provider's asynchronous callbacks safe to
// interpret: completions that match no recorded attempt are stale and must
// not touch the cart.
type PendingStore struct {
	mu       sync.Mutex
	attempts map[uuid.UUID]*attempt
}

// NewPendingStore returns an empty pending-attempt store.
func NewPendingStore() *PendingStore {
	return &PendingStore{attempts: make(map[uuid.UUID]*attempt)}
}

// Begin opens a new attempt for owner and returns its id. It fails with
// domain.ErrCheckoutInFlight while a session-creation call is outstanding.
// An attempt already handed off to the provider is replaced: the shopper
// navigated back and is retrying, which is a new user action.
func (p *PendingStore) Begin(owner uuid.UUID) (uuid.UUID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if a, ok := p.attempts[owner]; ok && a.phase == phaseCreating {
		return uuid.Nil, domain.ErrCheckoutInFlight
	}
	a := &attempt{id: uuid.New(), phase: phaseCreating, startedAt: time.Now()}
	p.attempts[owner] = a
	return a.id, nil
}

// MarkRedirected records the session id for the attempt and moves it past
// the hand-off point. A stale attempt id (superseded while the call was in
// flight) is a no-op.
func (p *PendingStore) MarkRedirected(owner, attemptID uuid.UUID, sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, ok := p.attempts[owner]
	if !ok || a.id != attemptID {
		return
	}
	a.sessionID = sessionID
	a.phase = phaseRedirected
}

// Abort discards the attempt if it is still the current one.
func (p *PendingStore) Abort(owner, attemptID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if a, ok := p.attempts[owner]; ok && a.id == attemptID {
		delete(p.attempts, owner)
	}
}

// Take consumes the attempt when sessionID matches the recorded hand-off.
// Returns false for unknown, mismatched or not-yet-redirected attempts;
// the record is left untouched in those cases.
func (p *PendingStore) Take(owner uuid.UUID, sessionID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, ok := p.attempts[owner]
	if !ok || a.phase != phaseRedirected || a.sessionID != sessionID {
		return false
	}
	delete(p.attempts, owner)
	return true
}

// Drop discards any recorded attempt for owner, whatever its phase. Used
// by the cancel callback.
func (p *PendingStore) Drop(owner uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.attempts, owner)
}
