package reservation

import (
	"strings"

	"github.com/BruksfildServices01/store-reservations/internal/httperr"
)

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

var labels = map[Status]string{
	StatusPending:   "Pendente",
	StatusConfirmed: "Confirmada",
	StatusCanceled:  "Cancelada",
	StatusCompleted: "Concluída",
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := labels[st]; !ok {
		return "", httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}
	return st, nil
}

// Holds reports whether a reservation in this status keeps its product off
// the shelf.
func (s Status) Holds() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Label is the Portuguese name shown in the admin console.
func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// InitialStatus is the status every new reservation starts in.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transition policy
// ===============================

type TransitionPolicy string

const (
	// PolicyStrict only allows the moves the admin console offers.
	PolicyStrict TransitionPolicy = "strict"
	// PolicyPermissive accepts any target status.
	PolicyPermissive TransitionPolicy = "permissive"
)

func ParsePolicy(s string) TransitionPolicy {
	if TransitionPolicy(strings.ToLower(strings.TrimSpace(s))) == PolicyPermissive {
		return PolicyPermissive
	}
	return PolicyStrict
}

var strictEdges = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCompleted, StatusCanceled},
}

// CanTransition define se uma reserva pode passar de from para to.
// Same-status requests are always allowed and treated as no-ops by callers.
func CanTransition(policy TransitionPolicy, from, to Status) error {
	if from == to || policy == PolicyPermissive {
		return nil
	}
	for _, next := range strictEdges[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}
