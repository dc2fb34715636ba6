package memory

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang-tictactoe/internal/domain"
	"golang-tictactoe/internal/ports/output"
)

// finishedSession returns a session that alice won by concession
func finishedSession(t *testing.T, channelID string) *domain.Session {
	t.Helper()
	s := domain.NewSession(channelID)
	if err := s.BindPlayer1("alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.BindPlayer2("bob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Concede("bob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

// TestNewMemorySessionStore tests store creation
func TestNewMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore(7)

	if store.GetMaxHistory() != 7 {
		t.Errorf("expected max history 7, got %d", store.GetMaxHistory())
	}
	if _, ok := store.GetCurrent("C1"); ok {
		t.Error("expected no current session in a new store")
	}
	if store.IsActive("C1") {
		t.Error("expected new channel to be inactive")
	}
	if len(store.History("C1")) != 0 {
		t.Error("expected empty history")
	}
}

// TestReplaceRefusedWhileActive tests that a running game cannot be replaced
func TestReplaceRefusedWhileActive(t *testing.T) {
	store := NewMemorySessionStore(0)
	first := domain.NewSession("C1")
	_ = first.BindPlayer1("alice")

	if !store.Replace("C1", first) {
		t.Fatal("expected first replace to succeed")
	}
	if !store.IsActive("C1") {
		t.Error("expected channel to be active")
	}
	if store.Replace("C1", domain.NewSession("C1")) {
		t.Error("expected replace to fail while active")
	}
	if current, _ := store.GetCurrent("C1"); current != first {
		t.Error("expected current session unchanged after refused replace")
	}
}

// TestReplaceArchivesTerminalSession tests history after replacing a finished game
func TestReplaceArchivesTerminalSession(t *testing.T) {
	store := NewMemorySessionStore(0)
	done := finishedSession(t, "C1")
	store.Replace("C1", done)

	if store.IsActive("C1") {
		t.Error("expected terminal session to be inactive")
	}
	if !store.Replace("C1", domain.NewSession("C1")) {
		t.Fatal("expected replace over terminal session to succeed")
	}

	history := store.History("C1")
	if len(history) != 1 || history[0] != done {
		t.Errorf("expected finished session in history, got %v", history)
	}
}

// TestReplaceDoesNotArchiveUnfinished tests that an empty session is dropped
func TestReplaceDoesNotArchiveUnfinished(t *testing.T) {
	store := NewMemorySessionStore(0)
	store.Replace("C1", domain.NewSession("C1"))
	store.Replace("C1", domain.NewSession("C1"))

	if len(store.History("C1")) != 0 {
		t.Error("expected unfinished session to not be archived")
	}
}

// TestHistoryLimit tests that the oldest sessions are dropped first
func TestHistoryLimit(t *testing.T) {
	store := NewMemorySessionStore(2)
	sessions := make([]*domain.Session, 4)
	for i := range sessions {
		sessions[i] = finishedSession(t, "C1")
		store.Replace("C1", sessions[i])
	}
	store.Replace("C1", domain.NewSession("C1"))

	history := store.History("C1")
	if len(history) != 2 {
		t.Fatalf("expected 2 sessions in history, got %d", len(history))
	}
	if history[0] != sessions[2] || history[1] != sessions[3] {
		t.Error("expected the two most recent sessions in insertion order")
	}
}

// TestHistoryReturnsCopy tests that callers cannot mutate stored history
func TestHistoryReturnsCopy(t *testing.T) {
	store := NewMemorySessionStore(0)
	store.Replace("C1", finishedSession(t, "C1"))
	store.Replace("C1", domain.NewSession("C1"))

	history := store.History("C1")
	history[0] = nil

	if store.History("C1")[0] == nil {
		t.Error("expected stored history to be unaffected")
	}
}

// TestClear tests removing the current session
func TestClear(t *testing.T) {
	store := NewMemorySessionStore(0)
	store.Clear("C1")

	s := domain.NewSession("C1")
	_ = s.BindPlayer1("alice")
	store.Replace("C1", s)
	store.Clear("C1")

	if _, ok := store.GetCurrent("C1"); ok {
		t.Error("expected no current session after clear")
	}
	if len(store.History("C1")) != 0 {
		t.Error("expected clear to not archive")
	}
}

// TestChannelsAreIsolated tests that channels have independent state
func TestChannelsAreIsolated(t *testing.T) {
	store := NewMemorySessionStore(0)
	s := domain.NewSession("C1")
	_ = s.BindPlayer1("alice")
	store.Replace("C1", s)

	if store.IsActive("C2") {
		t.Error("expected C2 to be unaffected by C1")
	}
	if !store.Replace("C2", domain.NewSession("C2")) {
		t.Error("expected replace on C2 to succeed")
	}
}

// TestConcurrentReplace tests that exactly one racing replace wins
func TestConcurrentReplace(t *testing.T) {
	store := NewMemorySessionStore(0)
	var wins int32
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := domain.NewSession("C1")
			_ = s.BindPlayer1("alice")
			if store.Replace("C1", s) {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("expected exactly 1 successful replace, got %d", wins)
	}
}

// TestTransactSerializesChannel tests that callbacks on one channel never overlap
func TestTransactSerializesChannel(t *testing.T) {
	store := NewMemorySessionStore(0)
	var inside int32
	var overlaps int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Transact("C1", func(tx output.ChannelTx) {
				if atomic.AddInt32(&inside, 1) > 1 {
					atomic.AddInt32(&overlaps, 1)
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
			})
		}()
	}
	wg.Wait()

	if overlaps != 0 {
		t.Errorf("expected no overlapping transactions, got %d", overlaps)
	}
}
