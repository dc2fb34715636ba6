package input

import "golang-tictactoe/internal/domain"

// GameRecordService interface - Input port (use case)
// Defines what the application can do with archived games
type GameRecordService interface {
	GetRecords(condition domain.QueryGameRecordRequest) (*domain.GameRecordListResponse, error)
	HealthCheck() error
}
