package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		expected  Status
		expectErr bool
	}{
		{name: "Canonical status", status: "pending", expected: StatusPending},
		{name: "Legacy confirmed alias", status: "confirmed", expected: StatusAccepted},
		{name: "Legacy canceled alias", status: "canceled", expected: StatusCanceledCustomer},
		{name: "Terminal status", status: "refunded", expected: StatusRefunded},
		{name: "Unknown status", status: "bogus", expectErr: true},
		{name: "Empty status", status: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.status)
			if tt.expectErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownStatus)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		next     Status
		expected bool
	}{
		{name: "Pending to accepted", current: "pending", next: StatusAccepted, expected: true},
		{name: "Pending to declined", current: "pending", next: StatusDeclined, expected: true},
		{name: "Pending to customer cancel", current: "pending", next: StatusCanceledCustomer, expected: true},
		{name: "Pending to paid skips accept", current: "pending", next: StatusPaid, expected: false},
		{name: "Accepted to paid", current: "accepted", next: StatusPaid, expected: true},
		{name: "Accepted to provider cancel", current: "accepted", next: StatusCanceledProvider, expected: true},
		{name: "Legacy confirmed to paid", current: "confirmed", next: StatusPaid, expected: true},
		{name: "Paid to completed", current: "paid", next: StatusCompleted, expected: true},
		{name: "Paid to disputed", current: "paid", next: StatusDisputed, expected: true},
		{name: "Paid to refunded", current: "paid", next: StatusRefunded, expected: true},
		{name: "Disputed to refunded", current: "disputed", next: StatusRefunded, expected: true},
		{name: "Disputed to completed", current: "disputed", next: StatusCompleted, expected: false},
		{name: "Completed is terminal", current: "completed", next: StatusDisputed, expected: false},
		{name: "Refunded is terminal", current: "refunded", next: StatusPaid, expected: false},
		{name: "Unknown current", current: "bogus", next: StatusPaid, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanTransition(tt.current, tt.next))
		})
	}
}

func TestCanTransitionExhaustive(t *testing.T) {
	all := []Status{
		StatusPending, StatusAccepted, StatusDeclined, StatusPaid, StatusCompleted,
		StatusCanceledCustomer, StatusCanceledProvider, StatusDisputed, StatusRefunded,
	}
	for _, current := range all {
		allowed := map[Status]bool{}
		for _, next := range AllowedTransitions(string(current)) {
			allowed[next] = true
		}
		for _, next := range all {
			got := CanTransition(string(current), next)
			assert.Equal(t, allowed[next], got, "transition %s -> %s", current, next)
			if got {
				assert.NoError(t, AssertTransition(string(current), next))
			} else {
				assert.Error(t, AssertTransition(string(current), next))
			}
		}
	}
}

func TestAssertTransition(t *testing.T) {
	err := AssertTransition("pending", StatusPaid)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), "pending")
	assert.Contains(t, err.Error(), "paid")
	assert.Contains(t, err.Error(), "accepted")

	err = AssertTransition("completed", StatusPaid)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")

	err = AssertTransition("bogus", StatusPaid)
	assert.ErrorIs(t, err, ErrUnknownStatus)

	assert.NoError(t, AssertTransition("accepted", StatusPaid))
}

func TestAllowedTransitions(t *testing.T) {
	terminal := []string{"declined", "completed", "canceled_customer", "canceled_provider", "refunded"}
	for _, s := range terminal {
		assert.Empty(t, AllowedTransitions(s), "status %s", s)
	}

	assert.ElementsMatch(t,
		[]Status{StatusAccepted, StatusDeclined, StatusCanceledCustomer},
		AllowedTransitions("pending"))
	assert.Nil(t, AllowedTransitions("bogus"))

	// Returned slice is a copy; mutating it must not corrupt the table.
	got := AllowedTransitions("pending")
	got[0] = StatusRefunded
	assert.ElementsMatch(t,
		[]Status{StatusAccepted, StatusDeclined, StatusCanceledCustomer},
		AllowedTransitions("pending"))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusRefunded))
	assert.True(t, IsTerminal(StatusDeclined))
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusPaid))
}
