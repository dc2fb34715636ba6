package postgres

import (
	"errors"

	"golang-tictactoe/internal/domain"
	"golang-tictactoe/internal/ports/output"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure GameRecordRepository implements the output port
var _ output.GameRecordRepository = (*GameRecordRepository)(nil)

var orderColumns = map[string]string{
	"finished_at": "finished_at",
	"moves":       "moves",
	"channel_id":  "channel_id",
}

// GameRecordRepository struct - Secondary/Driven adapter for PostgreSQL
type GameRecordRepository struct {
	dbGorm *gorm.DB
}

// NewGameRecordRepository func - Creates new PostgreSQL repository
func NewGameRecordRepository(dbGorm *gorm.DB) *GameRecordRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &GameRecordRepository{
		dbGorm: dbGorm,
	}
}

// SaveRecord func - Inserts a finished game
func (p *GameRecordRepository) SaveRecord(record *domain.GameRecord) error {
	if record == nil {
		return errors.New("record is nil")
	}
	if err := p.dbGorm.Create(record).Error; err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

// GetRecords func - Retrieves records with filtering and pagination
func (p *GameRecordRepository) GetRecords(condition domain.QueryGameRecordRequest) (*domain.GameRecordListResponse, error) {
	var (
		record  domain.GameRecord
		records []domain.GameRecord
	)
	tx := p.dbGorm.Model(&record).Where(p.condition(condition))

	if condition.Player != nil {
		tx = tx.Where("player1 = ? OR player2 = ?", *condition.Player, *condition.Player)
	}
	// shared by the count and the page query
	tx = tx.Session(&gorm.Session{})

	var totalItem int64
	if err := tx.Count(&totalItem).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	order := "finished_at"
	asc := true
	if condition.SortMethod != nil {
		if column, ok := orderColumns[condition.SortMethod.OrderBy]; ok {
			order = column
		}
		asc = condition.SortMethod.Asc
	}
	if asc {
		tx = tx.Order(order + " ASC")
	} else {
		tx = tx.Order(order + " DESC")
	}
	if condition.Pagination != nil {
		tx = tx.Limit(condition.Pagination.Limit).Offset(condition.Pagination.Offset)
	}

	if err := tx.Find(&records).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	result := domain.GameRecordListResponse{
		Records:     []domain.GameRecordResponse{},
		CurrentPage: condition.Page,
		TotalItem:   &totalItem,
	}
	if condition.Pagination != nil {
		result.PerPage = lo.ToPtr(condition.Pagination.Limit)
	}
	for _, r := range records {
		data := domain.GameRecordResponse{
			ID:        r.ID,
			SessionID: r.SessionID,
			ChannelID: r.ChannelID,
			Player1:   r.Player1,
			Player2:   r.Player2,
			Winner:    r.Winner,
			Outcome:   r.Outcome,
			Moves:     r.Moves,
		}
		if r.FinishedAt != nil {
			data.FinishedAt = lo.ToPtr(r.FinishedAt.Format(domain.DatetimeLayout))
		}
		result.Records = append(result.Records, data)
	}
	return &result, nil
}

// Ping func - Checks the database connection
func (p *GameRecordRepository) Ping() error {
	sqlDB, err := p.dbGorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (p *GameRecordRepository) condition(condition domain.QueryGameRecordRequest) map[string]interface{} {
	expression := make(map[string]interface{})
	if condition.ChannelID != nil {
		expression["channel_id"] = *condition.ChannelID
	}
	if condition.Outcome != nil {
		expression["outcome"] = *condition.Outcome
	}
	return expression
}
