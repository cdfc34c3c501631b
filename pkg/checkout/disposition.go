// Package checkout orchestrates the cart-to-payment flow: snapshot the
// cart, create a remote checkout session, hand the shopper off to the
// hosted payment page, and reconcile the outcome that eventually comes
// back.
package checkout

// Outcome classifies a resolved checkout attempt.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeFailed    Outcome = "failed"
)

// Disposition is the terminal state of one checkout attempt as reported by
// the payment provider or by the orchestrator itself.
type Disposition struct {
	Outcome   Outcome
	SessionID string // set on success, when the return URL carried one
	Reason    string // set on failure
	Stale     bool   // true when a callback matched no pending attempt
}

// Success builds the success disposition for a completed payment.
func Success(sessionID string) Disposition {
	return Disposition{Outcome: OutcomeSuccess, SessionID: sessionID}
}

// Cancelled builds the disposition for a shopper-abandoned payment. Not a
// failure: the cart is preserved and the flow simply returns to checkout.
func Cancelled() Disposition {
	return Disposition{Outcome: OutcomeCancelled}
}

// Failed builds the disposition for a failed attempt with a user-safe
// reason.
func Failed(reason string) Disposition {
	return Disposition{Outcome: OutcomeFailed, Reason: reason}
}
