package memory

import (
	"testing"
	"time"

	"golang-tictactoe/internal/domain"

	"github.com/samber/lo"
)

func seedRecord(channelID, player1, player2, winner string, outcome domain.Outcome, moves int, finishedAt time.Time) *domain.GameRecord {
	record := &domain.GameRecord{
		ChannelID:  lo.ToPtr(channelID),
		Player1:    lo.ToPtr(player1),
		Player2:    lo.ToPtr(player2),
		Outcome:    lo.ToPtr(outcome),
		Moves:      lo.ToPtr(moves),
		FinishedAt: lo.ToPtr(finishedAt),
	}
	if winner != "" {
		record.Winner = lo.ToPtr(winner)
	}
	return record
}

func seededRepository(t *testing.T) *GameRecordRepository {
	t.Helper()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := NewGameRecordRepository()
	records := []*domain.GameRecord{
		seedRecord("C1", "alice", "bob", "alice", domain.OutcomeWin, 5, base.Add(2*time.Hour)),
		seedRecord("C1", "carol", "alice", "", domain.OutcomeDraw, 9, base),
		seedRecord("C2", "dave", "erin", "erin", domain.OutcomeConcede, 2, base.Add(time.Hour)),
	}
	for _, record := range records {
		if err := repo.SaveRecord(record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return repo
}

// TestGetRecords_Filters tests channel, player and outcome filters
func TestGetRecords_Filters(t *testing.T) {
	repo := seededRepository(t)

	tests := []struct {
		name      string
		condition domain.QueryGameRecordRequest
		want      int64
	}{
		{name: "all", condition: domain.QueryGameRecordRequest{}, want: 3},
		{name: "channel", condition: domain.QueryGameRecordRequest{ChannelID: lo.ToPtr("C1")}, want: 2},
		{name: "player either seat", condition: domain.QueryGameRecordRequest{Player: lo.ToPtr("alice")}, want: 2},
		{name: "outcome", condition: domain.QueryGameRecordRequest{Outcome: lo.ToPtr("concede")}, want: 1},
		{name: "no match", condition: domain.QueryGameRecordRequest{ChannelID: lo.ToPtr("C9")}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.GetRecords(tt.condition)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *result.TotalItem != tt.want {
				t.Errorf("expected %d records, got %d", tt.want, *result.TotalItem)
			}
		})
	}
}

// TestGetRecords_SortAndPage tests ordering and pagination
func TestGetRecords_SortAndPage(t *testing.T) {
	repo := seededRepository(t)

	result, err := repo.GetRecords(domain.QueryGameRecordRequest{
		Page:       lo.ToPtr(1),
		Pagination: &domain.Pagination{Limit: 2, Offset: 0},
		SortMethod: &domain.SortMethod{Asc: true, OrderBy: "finished_at"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Records) != 2 || *result.TotalItem != 3 {
		t.Fatalf("expected 2 of 3 records, got %d of %d", len(result.Records), *result.TotalItem)
	}
	if *result.Records[0].Player1 != "carol" || *result.Records[1].Player1 != "dave" {
		t.Errorf("expected oldest first, got %s then %s", *result.Records[0].Player1, *result.Records[1].Player1)
	}
	if *result.PerPage != 2 {
		t.Errorf("expected per page 2, got %d", *result.PerPage)
	}

	result, _ = repo.GetRecords(domain.QueryGameRecordRequest{
		Pagination: &domain.Pagination{Limit: 2, Offset: 2},
		SortMethod: &domain.SortMethod{Asc: false, OrderBy: "moves"},
	})
	if len(result.Records) != 1 || *result.Records[0].Moves != 2 {
		t.Errorf("expected the fewest-moves record on the last page, got %+v", result.Records)
	}
}

// TestGetRecords_FinishedAtFormat tests the response timestamp layout
func TestGetRecords_FinishedAtFormat(t *testing.T) {
	repo := seededRepository(t)

	result, _ := repo.GetRecords(domain.QueryGameRecordRequest{ChannelID: lo.ToPtr("C2")})

	if got := *result.Records[0].FinishedAt; got != "2024-03-01T11:00:00Z" {
		t.Errorf("unexpected finished_at %s", got)
	}
}

// TestSaveRecord_Nil tests that nil records are ignored
func TestSaveRecord_Nil(t *testing.T) {
	repo := NewGameRecordRepository()
	if err := repo.SaveRecord(nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := repo.Ping(); err != nil {
		t.Errorf("unexpected ping error: %v", err)
	}
}
