package subscription

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

// --- helpers ---

func newLine(t *testing.T) Line {
	t.Helper()
	l, err := NewLine(1, decimal.NewFromInt(2), decimal.NewFromInt(100), nil, nil)
	require.NoError(t, err)
	return l
}

func reconstructInState(t *testing.T, state State) *Subscription {
	t.Helper()
	now := time.Now().UTC()
	sub, err := Reconstruct(ReconstructParams{
		ID:              1,
		Number:          "Sub001",
		ContactID:       10,
		RecurringPlanID: 100,
		State:           state,
		Lines:           []Line{newLine(t)},
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	require.NoError(t, err)
	return sub
}

func TestNewSubscription(t *testing.T) {
	sub, err := NewSubscription(NewParams{
		Number:          "Sub001",
		ContactID:       10,
		RecurringPlanID: 100,
		Lines:           []Line{newLine(t)},
	})
	require.NoError(t, err)
	assert.Equal(t, StateDraft, sub.State())
	assert.Nil(t, sub.StartDate())
	assert.Nil(t, sub.NextInvoiceDate())
}

func TestNewSubscription_MissingRefs(t *testing.T) {
	_, err := NewSubscription(NewParams{Number: "Sub001", RecurringPlanID: 1})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = NewSubscription(NewParams{Number: "Sub001", ContactID: 1})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSend(t *testing.T) {
	sub := reconstructInState(t, StateDraft)
	require.NoError(t, sub.Send())
	assert.Equal(t, StateQuotationSent, sub.State())
}

func TestConfirm_SetsDates(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	next := now.AddDate(0, 1, 0)

	sub := reconstructInState(t, StateQuotationSent)
	require.NoError(t, sub.Confirm(now, &next))

	assert.Equal(t, StateConfirmed, sub.State())
	require.NotNil(t, sub.OrderDate())
	assert.Equal(t, now, *sub.OrderDate())
	require.NotNil(t, sub.StartDate())
	assert.Equal(t, now, *sub.StartDate())
	require.NotNil(t, sub.NextInvoiceDate())
	assert.Equal(t, next, *sub.NextInvoiceDate())
}

func TestConfirm_KeepsExistingOrderDate(t *testing.T) {
	ordered := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	sub := reconstructInState(t, StateDraft)
	sub.Update(UpdateParams{OrderDate: ptrPtr(&ordered)})
	require.NoError(t, sub.Confirm(now, nil))

	assert.Equal(t, ordered, *sub.OrderDate())
	assert.Equal(t, ordered, *sub.StartDate())
}

func TestPauseResume(t *testing.T) {
	sub := reconstructInState(t, StateConfirmed)
	require.NoError(t, sub.Pause())
	assert.Equal(t, StatePaused, sub.State())
	require.NoError(t, sub.Resume())
	assert.Equal(t, StateConfirmed, sub.State())
}

func TestClose_FromPaused(t *testing.T) {
	sub := reconstructInState(t, StatePaused)
	require.NoError(t, sub.Close())
	assert.Equal(t, StateClosed, sub.State())
}

// Every (state, operation) pair outside the explicit transition table must
// fail with invalid_state and leave the state unchanged.
func TestStateMachine_Exhaustive(t *testing.T) {
	allStates := []State{StateDraft, StateQuotationSent, StateConfirmed, StatePaused, StateClosed, StateChurned}

	operations := map[string]struct {
		run     func(s *Subscription) error
		allowed map[State]bool
	}{
		"send": {
			run:     func(s *Subscription) error { return s.Send() },
			allowed: map[State]bool{StateDraft: true},
		},
		"confirm": {
			run:     func(s *Subscription) error { return s.Confirm(time.Now().UTC(), nil) },
			allowed: map[State]bool{StateDraft: true, StateQuotationSent: true},
		},
		"pause": {
			run:     func(s *Subscription) error { return s.Pause() },
			allowed: map[State]bool{StateConfirmed: true},
		},
		"resume": {
			run:     func(s *Subscription) error { return s.Resume() },
			allowed: map[State]bool{StatePaused: true},
		},
		"close": {
			run:     func(s *Subscription) error { return s.Close() },
			allowed: map[State]bool{StateConfirmed: true, StatePaused: true},
		},
		"renew": {
			run:     func(s *Subscription) error { return s.EnsureRenewable() },
			allowed: map[State]bool{StateConfirmed: true, StatePaused: true},
		},
		"invoice": {
			run:     func(s *Subscription) error { return s.EnsureInvoiceable() },
			allowed: map[State]bool{StateConfirmed: true, StatePaused: true},
		},
	}

	for name, op := range operations {
		for _, state := range allStates {
			sub := reconstructInState(t, state)
			err := op.run(sub)
			if op.allowed[state] {
				assert.NoError(t, err, "%s from %s should succeed", name, state)
			} else {
				require.Error(t, err, "%s from %s should fail", name, state)
				assert.True(t, apperrors.IsInvalidStateError(err), "%s from %s should be invalid_state", name, state)
				assert.Equal(t, state, sub.State(), "%s from %s must not change state", name, state)
			}
		}
	}
}

func TestEnsureDeletable(t *testing.T) {
	assert.NoError(t, reconstructInState(t, StateDraft).EnsureDeletable(0))
	assert.NoError(t, reconstructInState(t, StateQuotationSent).EnsureDeletable(0))

	err := reconstructInState(t, StateDraft).EnsureDeletable(2)
	assert.True(t, apperrors.IsInvalidStateError(err))

	err = reconstructInState(t, StateConfirmed).EnsureDeletable(0)
	assert.True(t, apperrors.IsInvalidStateError(err))
}

func TestReplaceLines_TerminalStates(t *testing.T) {
	lines := []Line{newLine(t)}

	for _, state := range []State{StateClosed, StateChurned} {
		sub := reconstructInState(t, state)
		err := sub.ReplaceLines(lines)
		assert.True(t, apperrors.IsInvalidStateError(err), "replace lines on %s", state)
	}

	sub := reconstructInState(t, StateConfirmed)
	require.NoError(t, sub.ReplaceLines(lines))
	assert.Len(t, sub.Lines(), 1)
}

func TestEnsureInvoiceable_NoLines(t *testing.T) {
	now := time.Now().UTC()
	sub, err := Reconstruct(ReconstructParams{
		ID:              1,
		Number:          "Sub002",
		ContactID:       10,
		RecurringPlanID: 100,
		State:           StateConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	require.NoError(t, err)
	assert.True(t, apperrors.IsValidationError(sub.EnsureInvoiceable()))
}

func TestLineCopyVerbatim(t *testing.T) {
	discount := decimal.NewFromInt(10)
	tax := decimal.NewFromInt(18)
	l, err := NewLine(3, decimal.NewFromInt(2), decimal.NewFromInt(100), &discount, &tax)
	require.NoError(t, err)
	assert.True(t, l.Amount.Equal(decimal.RequireFromString("212.40")))

	c := l.CopyVerbatim()
	assert.Equal(t, l.ProductID, c.ProductID)
	assert.True(t, l.Amount.Equal(c.Amount))
	assert.Zero(t, c.ID)
}

func ptrPtr[T any](v *T) **T { return &v }
