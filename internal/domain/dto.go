package domain

import (
	"time"

	"github.com/google/uuid"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// QueryGameRecordRequest struct - Domain query request DTO
	QueryGameRecordRequest struct {
		ChannelID *string
		Player    *string
		Outcome   *string

		Limit      *int
		Page       *int
		OrderBy    *string
		Asc        *bool
		Pagination *Pagination
		SortMethod *SortMethod
	}

	// Pagination struct
	Pagination struct {
		Limit  int
		Offset int
	}

	// SortMethod struct
	SortMethod struct {
		Asc     bool
		OrderBy string
	}

	// GameRecordResponse struct - Domain response DTO
	GameRecordResponse struct {
		ID         *uuid.UUID `json:"id,omitempty"`
		SessionID  *uuid.UUID `json:"session_id,omitempty"`
		ChannelID  *string    `json:"channel_id,omitempty"`
		Player1    *string    `json:"player1,omitempty"`
		Player2    *string    `json:"player2,omitempty"`
		Winner     *string    `json:"winner,omitempty"`
		Outcome    *Outcome   `json:"outcome,omitempty"`
		Moves      *int       `json:"moves,omitempty"`
		FinishedAt *string    `json:"finished_at,omitempty"`
	}

	// GameRecordListResponse struct - Domain list response DTO
	GameRecordListResponse struct {
		Records     []GameRecordResponse
		CurrentPage *int
		PerPage     *int
		TotalItem   *int64
	}

	// SessionSummary struct - Read model of a session for history listings
	SessionSummary struct {
		ID         uuid.UUID
		ChannelID  string
		Player1    *string
		Player2    *string
		Winner     *string
		Outcome    Outcome
		Board      string
		CreatedAt  time.Time
		FinishedAt time.Time
	}

	// LineWebhookRequest struct - Domain LINE webhook request DTO
	LineWebhookRequest struct {
		Events []LineWebhookEvent
	}

	// LineReplyMessageRequest struct - Domain LINE reply message request DTO
	LineReplyMessageRequest struct {
		ReplyToken string
		Messages   []LineOutgoingMessage
	}

	// LinePushMessageRequest struct - Domain LINE push message request DTO
	LinePushMessageRequest struct {
		To       string
		Messages []LineOutgoingMessage
	}

	// LineOutgoingMessage struct - Domain LINE outgoing message DTO
	LineOutgoingMessage struct {
		Type LineMessageType
		Text string
	}

	// LineMessageResponse struct - Domain LINE API response DTO
	LineMessageResponse struct {
		Status  string
		Message string
	}
)

// NewSessionSummary builds the read model of a session
func NewSessionSummary(s *Session) SessionSummary {
	summary := SessionSummary{
		ID:         s.ID,
		ChannelID:  s.ChannelID,
		Outcome:    s.Outcome(),
		Board:      s.Board().Render(),
		CreatedAt:  s.CreatedAt,
		FinishedAt: s.LastActivityTime,
	}
	if p1, ok := s.Player1(); ok {
		summary.Player1 = &p1
	}
	if p2, ok := s.Player2(); ok {
		summary.Player2 = &p2
	}
	if winner, ok := s.Winner(); ok {
		summary.Winner = &winner
	}
	return summary
}
