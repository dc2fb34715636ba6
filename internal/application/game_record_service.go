package application

import (
	"golang-tictactoe/internal/domain"
	"golang-tictactoe/internal/ports/input"
	"golang-tictactoe/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure GameRecordService implements the input port
var _ input.GameRecordService = (*GameRecordService)(nil)

const defaultRecordLimit = 100

// GameRecordService struct - Application service implementing archive use cases
type GameRecordService struct {
	repo output.GameRecordRepository
}

// NewGameRecordService func - Creates new game record service
func NewGameRecordService(repo output.GameRecordRepository) *GameRecordService {
	return &GameRecordService{
		repo: repo,
	}
}

// GetRecords func - Use case: Get archived games with pagination and filtering
func (s *GameRecordService) GetRecords(condition domain.QueryGameRecordRequest) (*domain.GameRecordListResponse, error) {
	var (
		page    int
		perPage int
	)
	if condition.Page != nil && *condition.Page > 0 {
		page = *condition.Page
	} else {
		page = 1
	}
	condition.Page = &page
	if condition.Limit != nil && *condition.Limit > 0 {
		perPage = *condition.Limit
	} else {
		perPage = defaultRecordLimit
	}
	condition.Limit = &perPage
	condition.Pagination = &domain.Pagination{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}

	asc := true
	if condition.Asc != nil {
		asc = *condition.Asc
	}
	orderBy := "finished_at"
	if condition.OrderBy != nil && *condition.OrderBy != "" {
		orderBy = *condition.OrderBy
	}
	condition.SortMethod = &domain.SortMethod{
		Asc:     asc,
		OrderBy: orderBy,
	}

	result, err := s.repo.GetRecords(condition)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}

// HealthCheck func - Use case: Report whether the archive is reachable
func (s *GameRecordService) HealthCheck() error {
	return s.repo.Ping()
}
