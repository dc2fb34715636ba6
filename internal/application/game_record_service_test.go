package application

import (
	"errors"
	"testing"

	"golang-tictactoe/internal/adapters/output/memory"
	"golang-tictactoe/internal/domain"
)

// MockGameRecordRepository implements output.GameRecordRepository for testing
type MockGameRecordRepository struct {
	GetRecordsFunc func(condition domain.QueryGameRecordRequest) (*domain.GameRecordListResponse, error)
	PingFunc       func() error

	// Captured values for assertions
	LastCondition *domain.QueryGameRecordRequest
	Saved         []*domain.GameRecord
}

func (m *MockGameRecordRepository) SaveRecord(record *domain.GameRecord) error {
	m.Saved = append(m.Saved, record)
	return nil
}

func (m *MockGameRecordRepository) GetRecords(condition domain.QueryGameRecordRequest) (*domain.GameRecordListResponse, error) {
	m.LastCondition = &condition
	if m.GetRecordsFunc != nil {
		return m.GetRecordsFunc(condition)
	}
	return &domain.GameRecordListResponse{}, nil
}

func (m *MockGameRecordRepository) Ping() error {
	if m.PingFunc != nil {
		return m.PingFunc()
	}
	return nil
}

// TestGetRecords_Defaults tests the default paging and sort
func TestGetRecords_Defaults(t *testing.T) {
	repo := &MockGameRecordRepository{}
	service := NewGameRecordService(repo)

	if _, err := service.GetRecords(domain.QueryGameRecordRequest{}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	condition := repo.LastCondition
	if *condition.Page != 1 || *condition.Limit != defaultRecordLimit {
		t.Errorf("Expected page 1 limit %d, got page %d limit %d", defaultRecordLimit, *condition.Page, *condition.Limit)
	}
	if condition.Pagination.Offset != 0 || condition.Pagination.Limit != defaultRecordLimit {
		t.Errorf("Unexpected pagination: %+v", *condition.Pagination)
	}
	if !condition.SortMethod.Asc || condition.SortMethod.OrderBy != "finished_at" {
		t.Errorf("Unexpected sort: %+v", *condition.SortMethod)
	}
}

// TestGetRecords_Paging tests offset computation and explicit sort
func TestGetRecords_Paging(t *testing.T) {
	repo := &MockGameRecordRepository{}
	service := NewGameRecordService(repo)
	page, limit, orderBy, asc := 3, 10, "moves", false

	_, _ = service.GetRecords(domain.QueryGameRecordRequest{
		Page:    &page,
		Limit:   &limit,
		OrderBy: &orderBy,
		Asc:     &asc,
	})

	condition := repo.LastCondition
	if condition.Pagination.Offset != 20 || condition.Pagination.Limit != 10 {
		t.Errorf("Expected offset 20 limit 10, got %+v", *condition.Pagination)
	}
	if condition.SortMethod.Asc || condition.SortMethod.OrderBy != "moves" {
		t.Errorf("Unexpected sort: %+v", *condition.SortMethod)
	}
}

// TestGetRecords_RepositoryError tests error propagation
func TestGetRecords_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	service := NewGameRecordService(&MockGameRecordRepository{
		GetRecordsFunc: func(condition domain.QueryGameRecordRequest) (*domain.GameRecordListResponse, error) {
			return nil, repoErr
		},
	})

	if _, err := service.GetRecords(domain.QueryGameRecordRequest{}); !errors.Is(err, repoErr) {
		t.Errorf("Expected repository error, got: %v", err)
	}
}

// TestHealthCheck tests that health reflects the repository
func TestHealthCheck(t *testing.T) {
	down := errors.New("database down")
	service := NewGameRecordService(&MockGameRecordRepository{PingFunc: func() error { return down }})

	if err := service.HealthCheck(); !errors.Is(err, down) {
		t.Errorf("Expected ping error, got: %v", err)
	}
	if err := NewGameRecordService(&MockGameRecordRepository{}).HealthCheck(); err != nil {
		t.Errorf("Expected healthy service, got: %v", err)
	}
}

// TestCommandService_ArchivesThroughRepository tests that finished games reach the archive
func TestCommandService_ArchivesThroughRepository(t *testing.T) {
	repo := &MockGameRecordRepository{}
	store := memory.NewMemorySessionStore(0)
	service := NewCommandService(store, repo, DefaultTrigger, DefaultRestartCooldown)

	send(t, service, "alice", "start")
	send(t, service, "bob", "start")
	send(t, service, "bob", "quit")

	if len(repo.Saved) != 1 {
		t.Fatalf("Expected 1 saved record, got %d", len(repo.Saved))
	}
	if *repo.Saved[0].Winner != "alice" {
		t.Errorf("Expected alice as winner, got %s", *repo.Saved[0].Winner)
	}
}
