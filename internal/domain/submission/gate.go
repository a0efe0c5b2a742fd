package submission

import (
	"encoding/json"

	"github.com/aoneretail/footwear-pos/pkg/apperror"
)

// State is the submission gate's position in its two-state machine.
type State int

const (
	Idle State = iota
	PendingConfirmation
)

func (s State) String() string {
	return [...]string{"Idle", "PendingConfirmation"}[s]
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Gate guards the hand-off of a finished ledger to the submission
// collaborator. A submit intent arms it only after the ledger and header
// pass validation; an explicit confirmation then releases exactly one
// hand-off. The gate never retries a failed submission.
type Gate struct {
	state State
}

// New creates a gate in the Idle state.
func New() *Gate {
	return &Gate{state: Idle}
}

// State returns the current state.
func (g *Gate) State() State {
	return g.state
}

// Submit records a submit intent. An empty ledger or missing header fields
// reject the intent and leave the gate Idle; otherwise it moves to
// PendingConfirmation and waits for an explicit yes/no.
func (g *Gate) Submit(itemCount int, missingHeader []string) error {
	if itemCount == 0 {
		g.state = Idle
		return apperror.ErrEmptyLedger
	}
	if len(missingHeader) > 0 {
		g.state = Idle
		return apperror.NewMissingHeaderFieldsError(missingHeader)
	}
	g.state = PendingConfirmation
	return nil
}

// Confirm resolves a pending confirmation. A "no" returns to Idle with no
// side effect. A "yes" releases the hand-off; the gate returns to Idle
// either way, so a failed hand-off needs a fresh submit intent rather than
// an automatic retry.
func (g *Gate) Confirm(yes bool) (proceed bool, err error) {
	if g.state != PendingConfirmation {
		return false, apperror.NewBadRequestError("No submission pending confirmation")
	}
	g.state = Idle
	return yes, nil
}
