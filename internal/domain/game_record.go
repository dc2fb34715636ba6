package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DatetimeLayout is the wire format of record timestamps
const DatetimeLayout = "2006-01-02T15:04:05Z"

// GameRecord struct - Archived result of a finished session
type GameRecord struct {
	ID         *uuid.UUID `gorm:"type:uuid;primary_key;"`
	SessionID  *uuid.UUID `gorm:"type:uuid;not null;index"`
	ChannelID  *string    `gorm:"type:varchar(64);not null;index"`
	Player1    *string    `gorm:"type:varchar(100);not null;"`
	Player2    *string    `gorm:"type:varchar(100)"`
	Winner     *string    `gorm:"type:varchar(100)"`
	Outcome    *Outcome   `gorm:"type:varchar(10);not null;"`
	Moves      *int       `gorm:"type:int;not null;"`
	FinishedAt *time.Time `gorm:"type:timestamp;not null;"`
	CreatedAt  *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (r *GameRecord) TableName() string {
	return "game_records"
}

// BeforeCreate hook - generates UUID before creating
func (r *GameRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID != nil {
		return nil
	}
	logrus.Debug("BeforeCreate game record")
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	r.ID = &id
	return nil
}

// NewGameRecord captures a terminal session. It returns nil for a session
// that has not finished.
func NewGameRecord(s *Session) *GameRecord {
	outcome := s.Outcome()
	if outcome == OutcomeNone {
		return nil
	}
	id := uuid.New()
	sessionID := s.ID
	channelID := s.ChannelID
	moves := s.Board().FilledCount()
	finishedAt := s.LastActivityTime.UTC()
	record := &GameRecord{
		ID:         &id,
		SessionID:  &sessionID,
		ChannelID:  &channelID,
		Outcome:    &outcome,
		Moves:      &moves,
		FinishedAt: &finishedAt,
	}
	if p1, ok := s.Player1(); ok {
		record.Player1 = &p1
	}
	if p2, ok := s.Player2(); ok {
		record.Player2 = &p2
	}
	if winner, ok := s.Winner(); ok {
		record.Winner = &winner
	}
	return record
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&GameRecord{})
	if err != nil {
		panic(err)
	}
}
