package output

import "golang-tictactoe/internal/domain"

// GameRecordRepository interface - Output port
// Defines what the application needs for archiving finished games
type GameRecordRepository interface {
	SaveRecord(record *domain.GameRecord) error
	GetRecords(condition domain.QueryGameRecordRequest) (*domain.GameRecordListResponse, error)
	Ping() error
}
