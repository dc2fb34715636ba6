package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/qmuntal/stateless"
)

// Outcome describes how a terminal session ended
type Outcome string

const (
	// OutcomeNone - session still running
	OutcomeNone Outcome = ""
	// OutcomeWin - a player completed a line
	OutcomeWin Outcome = "win"
	// OutcomeDraw - full board without a line
	OutcomeDraw Outcome = "draw"
	// OutcomeConcede - a player quit or resigned
	OutcomeConcede Outcome = "concede"
)

// Session is one game bound to a channel: two players, an optional invitee
// and the board they play on. Sessions are not safe for concurrent use;
// callers serialize access through the SessionStore channel lock.
type Session struct {
	ID               uuid.UUID
	ChannelID        string
	CreatedAt        time.Time
	LastActivityTime time.Time // Used by the restart cooldown

	player1  *string
	player2  *string
	invitee  *string
	board    *Board
	conceded bool
	winner   *string // set by Concede only; line winners come from the board

	lifecycle *stateless.StateMachine
}

// NewSession creates an empty, unbound session for a channel
func NewSession(channelID string) *Session {
	now := time.Now()
	s := &Session{
		ID:               uuid.New(),
		ChannelID:        channelID,
		CreatedAt:        now,
		LastActivityTime: now,
		board:            NewBoard(),
	}
	s.lifecycle = newLifecycle(s.Phase)
	return s
}

// Reset returns the session to the blank, unbound state
func (s *Session) Reset() {
	s.board.Reset()
	s.player1 = nil
	s.player2 = nil
	s.invitee = nil
	s.conceded = false
	s.winner = nil
	s.LastActivityTime = time.Now()
}

// Board returns the session's board for rendering and inspection
func (s *Session) Board() *Board {
	return s.board
}

// Player1 returns the user playing X
func (s *Session) Player1() (string, bool) {
	return deref(s.player1)
}

// Player2 returns the user playing O
func (s *Session) Player2() (string, bool) {
	return deref(s.player2)
}

// Invitee returns the only user allowed to become player2, if any
func (s *Session) Invitee() (string, bool) {
	return deref(s.invitee)
}

// SetInvitee restricts who may bind as player2
func (s *Session) SetInvitee(user string) {
	s.invitee = &user
}

// IsTerminal reports a win, a draw or a concession
func (s *Session) IsTerminal() bool {
	return s.conceded || s.board.IsTerminal()
}

// IsReady reports both players bound and no outcome yet
func (s *Session) IsReady() bool {
	_, hasWinner := s.Winner()
	return s.player1 != nil && s.player2 != nil && !s.IsTerminal() && !hasWinner
}

// Phase derives the lifecycle phase from the session fields
func (s *Session) Phase() Phase {
	switch {
	case s.IsTerminal():
		return PhaseTerminal
	case s.player1 == nil:
		return PhaseEmpty
	case s.player2 == nil:
		return PhaseAwaitingPlayer2
	default:
		return PhaseReady
	}
}

// Outcome reports how the session ended
func (s *Session) Outcome() Outcome {
	switch {
	case s.conceded:
		return OutcomeConcede
	case !s.board.IsTerminal():
		return OutcomeNone
	}
	if _, ok := s.board.Winner(); ok {
		return OutcomeWin
	}
	return OutcomeDraw
}

// Winner returns the winning user. ok is false while running and on a draw.
func (s *Session) Winner() (string, bool) {
	if s.conceded {
		return deref(s.winner)
	}
	mark, ok := s.board.Winner()
	if !ok {
		return "", false
	}
	if mark == MarkX {
		return deref(s.player1)
	}
	return deref(s.player2)
}

// CurrentPlayer returns player1 on X's turn, player2 otherwise
func (s *Session) CurrentPlayer() (string, bool) {
	if s.board.IsXTurn() {
		return deref(s.player1)
	}
	return deref(s.player2)
}

// BindPlayer1 binds user as X. Re-binding the same user is a no-op success.
func (s *Session) BindPlayer1(user string) error {
	if err := s.permit(TriggerBindPlayer1); err != nil {
		return err
	}
	if s.player1 == nil {
		s.player1 = &user
		s.LastActivityTime = time.Now()
		return nil
	}
	if *s.player1 == user {
		return nil
	}
	return ErrSeatTaken
}

// BindPlayer2 binds user as O, honoring the invitee restriction
func (s *Session) BindPlayer2(user string) error {
	if s.player1 != nil && *s.player1 == user {
		return ErrSamePlayer
	}
	if err := s.permit(TriggerBindPlayer2); err != nil {
		return err
	}
	if s.player2 != nil {
		if *s.player2 == user {
			return nil
		}
		return ErrSeatTaken
	}
	if s.invitee != nil && *s.invitee != user {
		return ErrNotInvited
	}
	s.player2 = &user
	s.LastActivityTime = time.Now()
	return nil
}

// MakeMove places the current player's mark at row, col and passes the turn
func (s *Session) MakeMove(user string, row, col int) error {
	if s.IsTerminal() {
		return ErrGameOver
	}
	if err := s.permit(TriggerMove); err != nil {
		return err
	}
	if current, ok := s.CurrentPlayer(); !ok || current != user {
		return ErrNotYourTurn
	}
	if err := s.board.PlaceMark(s.board.ActiveMark(), row, col); err != nil {
		return err
	}
	s.LastActivityTime = time.Now()
	s.board.PassTurn()
	return nil
}

// Concede ends a running game with the other player as winner.
// On a session that is not ready yet the session is reset instead and
// ErrGameAbandoned is returned.
func (s *Session) Concede(user string) error {
	if s.IsTerminal() {
		return ErrGameOver
	}
	if !s.IsReady() {
		if err := s.permit(TriggerAbandon); err != nil {
			return err
		}
		s.Reset()
		return ErrGameAbandoned
	}
	if err := s.permit(TriggerConcede); err != nil {
		return err
	}
	var winner string
	switch user {
	case *s.player1:
		winner = *s.player2
	case *s.player2:
		winner = *s.player1
	default:
		return ErrNotAPlayer
	}
	s.winner = &winner
	s.conceded = true
	s.LastActivityTime = time.Now()
	return nil
}

func (s *Session) permit(trigger LifecycleTrigger) error {
	ok, err := s.lifecycle.CanFire(trigger)
	if err != nil || !ok {
		return ErrTransitionDenied
	}
	return nil
}

func deref(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	return *v, true
}
