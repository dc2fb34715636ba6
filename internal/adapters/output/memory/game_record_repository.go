package memory

import (
	"sort"
	"sync"

	"golang-tictactoe/internal/domain"
	"golang-tictactoe/internal/ports/output"

	"github.com/samber/lo"
)

// Compile-time check to ensure GameRecordRepository implements the output port
var _ output.GameRecordRepository = (*GameRecordRepository)(nil)

// GameRecordRepository struct - In-memory archive used when no database is configured
type GameRecordRepository struct {
	mu      sync.RWMutex
	records []domain.GameRecord
}

// NewGameRecordRepository creates an empty in-memory archive
func NewGameRecordRepository() *GameRecordRepository {
	return &GameRecordRepository{}
}

// SaveRecord appends a copy of record
func (r *GameRecordRepository) SaveRecord(record *domain.GameRecord) error {
	if record == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

// GetRecords filters, sorts and pages the archive
func (r *GameRecordRepository) GetRecords(condition domain.QueryGameRecordRequest) (*domain.GameRecordListResponse, error) {
	r.mu.RLock()
	matched := lo.Filter(r.records, func(record domain.GameRecord, _ int) bool {
		return matches(record, condition)
	})
	r.mu.RUnlock()

	asc := true
	orderBy := "finished_at"
	if condition.SortMethod != nil {
		asc = condition.SortMethod.Asc
		if condition.SortMethod.OrderBy != "" {
			orderBy = condition.SortMethod.OrderBy
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		less := lessBy(orderBy, matched[i], matched[j])
		if asc {
			return less
		}
		return lessBy(orderBy, matched[j], matched[i])
	})

	total := int64(len(matched))
	if condition.Pagination != nil && condition.Pagination.Limit > 0 {
		start := min(condition.Pagination.Offset, len(matched))
		end := min(start+condition.Pagination.Limit, len(matched))
		matched = matched[start:end]
	}

	result := domain.GameRecordListResponse{
		Records:     lo.Map(matched, func(record domain.GameRecord, _ int) domain.GameRecordResponse { return toResponse(record) }),
		CurrentPage: condition.Page,
		TotalItem:   &total,
	}
	if condition.Pagination != nil {
		result.PerPage = lo.ToPtr(condition.Pagination.Limit)
	}
	return &result, nil
}

// Ping always succeeds for the in-memory archive
func (r *GameRecordRepository) Ping() error {
	return nil
}

func matches(record domain.GameRecord, condition domain.QueryGameRecordRequest) bool {
	if condition.ChannelID != nil && lo.FromPtr(record.ChannelID) != *condition.ChannelID {
		return false
	}
	if condition.Outcome != nil && string(lo.FromPtr(record.Outcome)) != *condition.Outcome {
		return false
	}
	if condition.Player != nil {
		player := *condition.Player
		if lo.FromPtr(record.Player1) != player && lo.FromPtr(record.Player2) != player {
			return false
		}
	}
	return true
}

func lessBy(orderBy string, a, b domain.GameRecord) bool {
	switch orderBy {
	case "moves":
		return lo.FromPtr(a.Moves) < lo.FromPtr(b.Moves)
	case "channel_id":
		return lo.FromPtr(a.ChannelID) < lo.FromPtr(b.ChannelID)
	default:
		return lo.FromPtr(a.FinishedAt).Before(lo.FromPtr(b.FinishedAt))
	}
}

func toResponse(record domain.GameRecord) domain.GameRecordResponse {
	response := domain.GameRecordResponse{
		ID:        record.ID,
		SessionID: record.SessionID,
		ChannelID: record.ChannelID,
		Player1:   record.Player1,
		Player2:   record.Player2,
		Winner:    record.Winner,
		Outcome:   record.Outcome,
		Moves:     record.Moves,
	}
	if record.FinishedAt != nil {
		response.FinishedAt = lo.ToPtr(record.FinishedAt.Format(domain.DatetimeLayout))
	}
	return response
}
