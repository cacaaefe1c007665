package checkout

import "fmt"

// State est l'unique valeur d'état de la tentative de checkout. Une table de
// transitions explicite remplace l'accumulation de booléens : aucune
// combinaison "en vérification ET en attente de paiement" n'est
// représentable.
type State string

const (
	StateIdle            State = "idle"
	StateReviewing       State = "reviewing"
	StateCreatingIntent  State = "creating_intent"
	StateAwaitingPayment State = "awaiting_payment"
	StateVerifying       State = "verifying"
	StateConfirmed       State = "confirmed"
)

var transitions = map[State][]State{
	StateIdle:            {StateReviewing},
	StateReviewing:       {StateReviewing, StateCreatingIntent, StateIdle},
	StateCreatingIntent:  {StateAwaitingPayment, StateReviewing},
	StateAwaitingPayment: {StateVerifying, StateReviewing},
	StateVerifying:       {StateConfirmed, StateReviewing},
	StateConfirmed:       {},
}

// CanTransition indique si le passage s → to figure dans la table.
func (s State) CanTransition(to State) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal : plus aucune transition sortante (confirmé, ou retour au repos).
func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}

func (a *Attempt) transition(to State) error {
	if !a.State.CanTransition(to) {
		return fmt.Errorf("%w: %s → %s", ErrBadState, a.State, to)
	}
	a.State = to
	return nil
}
