package memory

import (
	"sync"

	"golang-tictactoe/internal/domain"
	"golang-tictactoe/internal/ports/output"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// channelSlot holds one channel's state behind its own lock, so games in
// different channels never contend.
type channelSlot struct {
	mu      sync.Mutex
	current *domain.Session
	history []*domain.Session
}

// MemorySessionStore struct - Output adapter for in-memory game sessions.
// Uses sync.Map from channel id to a per-channel slot; every operation on a
// channel runs under that slot's mutex.
type MemorySessionStore struct {
	channels   sync.Map
	maxHistory int
}

// NewMemorySessionStore creates a new in-memory session store.
// maxHistory: number of finished sessions kept per channel, 0 keeps all
func NewMemorySessionStore(maxHistory int) *MemorySessionStore {
	return &MemorySessionStore{
		maxHistory: maxHistory,
	}
}

// GetMaxHistory returns the configured per-channel history limit.
func (m *MemorySessionStore) GetMaxHistory() int {
	return m.maxHistory
}

// Transact runs fn while holding the channel's lock.
func (m *MemorySessionStore) Transact(channelID string, fn func(tx output.ChannelTx)) {
	slot := m.slot(channelID)
	slot.mu.Lock()
	defer slot.mu.Unlock()
	fn(&channelTx{slot: slot, maxHistory: m.maxHistory})
}

// GetCurrent returns the channel's current session.
func (m *MemorySessionStore) GetCurrent(channelID string) (session *domain.Session, ok bool) {
	m.Transact(channelID, func(tx output.ChannelTx) {
		session, ok = tx.Current()
	})
	return session, ok
}

// IsActive reports whether the channel has a non-terminal session.
func (m *MemorySessionStore) IsActive(channelID string) (active bool) {
	m.Transact(channelID, func(tx output.ChannelTx) {
		active = tx.IsActive()
	})
	return active
}

// Replace installs session unless the channel's game is still running.
func (m *MemorySessionStore) Replace(channelID string, session *domain.Session) (replaced bool) {
	m.Transact(channelID, func(tx output.ChannelTx) {
		replaced = tx.Replace(session)
	})
	return replaced
}

// Clear removes the current session without archiving it.
func (m *MemorySessionStore) Clear(channelID string) {
	m.Transact(channelID, func(tx output.ChannelTx) {
		tx.Clear()
	})
}

// History returns a copy of the channel's finished sessions.
func (m *MemorySessionStore) History(channelID string) (history []*domain.Session) {
	m.Transact(channelID, func(tx output.ChannelTx) {
		history = tx.History()
	})
	return history
}

func (m *MemorySessionStore) slot(channelID string) *channelSlot {
	if value, exists := m.channels.Load(channelID); exists {
		if slot, ok := value.(*channelSlot); ok {
			return slot
		}
	}
	value, _ := m.channels.LoadOrStore(channelID, &channelSlot{})
	return value.(*channelSlot)
}

// channelTx implements output.ChannelTx on a slot whose lock is held
type channelTx struct {
	slot       *channelSlot
	maxHistory int
}

func (t *channelTx) Current() (*domain.Session, bool) {
	return t.slot.current, t.slot.current != nil
}

func (t *channelTx) IsActive() bool {
	return t.slot.current != nil && !t.slot.current.IsTerminal()
}

func (t *channelTx) Replace(session *domain.Session) bool {
	if t.IsActive() {
		return false
	}
	if t.slot.current != nil {
		t.archive(t.slot.current)
	}
	t.slot.current = session
	return true
}

func (t *channelTx) Clear() {
	t.slot.current = nil
}

func (t *channelTx) History() []*domain.Session {
	history := make([]*domain.Session, len(t.slot.history))
	copy(history, t.slot.history)
	return history
}

// archive appends a finished session, dropping the oldest when at the limit
func (t *channelTx) archive(session *domain.Session) {
	if !session.IsTerminal() {
		return
	}
	if t.maxHistory > 0 && len(t.slot.history) >= t.maxHistory {
		t.slot.history = t.slot.history[1:]
	}
	t.slot.history = append(t.slot.history, session)
}
