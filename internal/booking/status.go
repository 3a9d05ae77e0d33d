package booking

import (
	"errors"
	"fmt"
	"strings"
)

// Status is a canonical booking lifecycle state. Legacy values coming from
// old rows or stale clients must go through Normalize before any comparison.
type Status string

const (
	StatusPending          Status = "pending"
	StatusAccepted         Status = "accepted"
	StatusDeclined         Status = "declined"
	StatusPaid             Status = "paid"
	StatusCompleted        Status = "completed"
	StatusCanceledCustomer Status = "canceled_customer"
	StatusCanceledProvider Status = "canceled_provider"
	StatusDisputed         Status = "disputed"
	StatusRefunded         Status = "refunded"
)

var (
	ErrUnknownStatus     = errors.New("unknown booking status")
	ErrInvalidTransition = errors.New("invalid transition")
)

// legacyAliases maps status values written by earlier releases to their
// canonical form. Consulted only in Normalize.
var legacyAliases = map[string]Status{
	"confirmed": StatusAccepted,
	"canceled":  StatusCanceledCustomer,
}

var transitions = map[Status][]Status{
	StatusPending:          {StatusAccepted, StatusDeclined, StatusCanceledCustomer},
	StatusAccepted:         {StatusPaid, StatusCanceledProvider, StatusCanceledCustomer},
	StatusPaid:             {StatusCompleted, StatusDisputed, StatusRefunded},
	StatusDisputed:         {StatusRefunded},
	StatusDeclined:         {},
	StatusCompleted:        {},
	StatusCanceledCustomer: {},
	StatusCanceledProvider: {},
	StatusRefunded:         {},
}

// Normalize resolves legacy aliases and validates membership in the
// canonical status set.
func Normalize(status string) (Status, error) {
	if canonical, ok := legacyAliases[status]; ok {
		return canonical, nil
	}
	s := Status(status)
	if _, ok := transitions[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return s, nil
}

// CanTransition reports whether moving from current to next is legal.
// Unknown current statuses are never transitionable.
func CanTransition(current string, next Status) bool {
	from, err := Normalize(current)
	if err != nil {
		return false
	}
	for _, allowed := range transitions[from] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AssertTransition returns a descriptive error when the transition is not
// legal. Callers are expected to map it to a conflict response, never retry.
func AssertTransition(current string, next Status) error {
	if CanTransition(current, next) {
		return nil
	}
	from, err := Normalize(current)
	if err != nil {
		return err
	}
	allowed := transitions[from]
	if len(allowed) == 0 {
		return fmt.Errorf("%w from %q to %q: %q is terminal", ErrInvalidTransition, from, next, from)
	}
	names := make([]string, len(allowed))
	for i, s := range allowed {
		names[i] = string(s)
	}
	return fmt.Errorf("%w from %q to %q: allowed are %s", ErrInvalidTransition, from, next, strings.Join(names, ", "))
}

// AllowedTransitions returns a copy of the legal next states for current,
// for rendering available actions. Empty for terminal or unknown statuses.
func AllowedTransitions(current string) []Status {
	from, err := Normalize(current)
	if err != nil {
		return nil
	}
	out := make([]Status, len(transitions[from]))
	copy(out, transitions[from])
	return out
}

// IsTerminal reports whether the status has no outgoing transitions.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}
