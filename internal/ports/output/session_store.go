package output

import "golang-tictactoe/internal/domain"

// ChannelTx interface - View of a single channel while its lock is held.
// Methods must only be called from inside the Transact callback that
// received the view.
type ChannelTx interface {
	// Current returns the channel's current session, terminal or not.
	Current() (*domain.Session, bool)

	// IsActive reports a current session that is not terminal.
	IsActive() bool

	// Replace installs a new current session. It fails when the channel
	// is active; a previous terminal session is appended to history.
	Replace(session *domain.Session) bool

	// Clear drops the current session without archiving it.
	Clear()

	// History returns the channel's terminal sessions, oldest first.
	History() []*domain.Session
}

// SessionStore interface - Output port
// Maps a channel id to at most one current game session and keeps the
// channel's finished sessions. Implementations must be safe for concurrent
// use and serialize every operation on the same channel.
type SessionStore interface {
	// GetCurrent returns the channel's current session, if any.
	GetCurrent(channelID string) (*domain.Session, bool)

	// IsActive reports whether the channel has a non-terminal session.
	IsActive(channelID string) bool

	// Replace atomically checks IsActive and installs session.
	// Returns false without side effects when the channel is active.
	Replace(channelID string, session *domain.Session) bool

	// Clear removes the current session without archiving it.
	// Clearing an empty channel is a no-op.
	Clear(channelID string)

	// History returns a copy of the channel's terminal sessions in
	// insertion order. The result may be empty.
	History(channelID string) []*domain.Session

	// Transact runs fn with the channel locked so that a whole
	// read-modify-write sequence is atomic with respect to other callers.
	Transact(channelID string, fn func(tx ChannelTx))
}
