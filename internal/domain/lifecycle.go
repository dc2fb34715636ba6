package domain

import (
	"context"

	"github.com/qmuntal/stateless"
)

// Phase is the lifecycle state of a Session. It is derived from the
// session's players and board, never stored.
type Phase string

const (
	PhaseEmpty           Phase = "Empty"
	PhaseAwaitingPlayer2 Phase = "AwaitingPlayer2"
	PhaseReady           Phase = "Ready"
	PhaseTerminal        Phase = "Terminal"
)

// LifecycleTrigger names a session operation checked against the phase table
type LifecycleTrigger string

const (
	TriggerBindPlayer1 LifecycleTrigger = "BindPlayer1"
	TriggerBindPlayer2 LifecycleTrigger = "BindPlayer2"
	TriggerMove        LifecycleTrigger = "Move"
	TriggerConcede     LifecycleTrigger = "Concede"
	TriggerAbandon     LifecycleTrigger = "Abandon"
)

// newLifecycle builds the transition table for a session. The machine reads
// the phase through phaseOf and never writes it back: Session fields remain
// the only source of truth, the machine only answers "is this permitted now".
func newLifecycle(phaseOf func() Phase) *stateless.StateMachine {
	fsm := stateless.NewStateMachineWithExternalStorage(
		func(_ context.Context) (stateless.State, error) {
			return phaseOf(), nil
		},
		func(_ context.Context, _ stateless.State) error {
			return nil
		},
		stateless.FiringImmediate,
	)

	fsm.Configure(PhaseEmpty).
		Permit(TriggerBindPlayer1, PhaseAwaitingPlayer2).
		PermitReentry(TriggerAbandon)

	fsm.Configure(PhaseAwaitingPlayer2).
		PermitReentry(TriggerBindPlayer1).
		Permit(TriggerBindPlayer2, PhaseReady).
		Permit(TriggerAbandon, PhaseEmpty)

	// A move that completes a line or fills the grid ends in Terminal;
	// the phase accessor reports that on the next query.
	fsm.Configure(PhaseReady).
		PermitReentry(TriggerBindPlayer1).
		PermitReentry(TriggerBindPlayer2).
		PermitReentry(TriggerMove).
		Permit(TriggerConcede, PhaseTerminal)

	// Seats stay confirmable after the game ends; nothing else is permitted.
	fsm.Configure(PhaseTerminal).
		PermitReentry(TriggerBindPlayer1).
		PermitReentry(TriggerBindPlayer2)

	return fsm
}
