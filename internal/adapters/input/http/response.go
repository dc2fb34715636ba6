package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Unauthorized response
	Unauthorized = Status{Code: http.StatusUnauthorized, Message: []string{"Sorry, We are not able to process your request. Please try again"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
	// ServiceUnavailable response
	ServiceUnavailable = Status{Code: http.StatusServiceUnavailable, Message: []string{"Sorry, Storage is not reachable"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`

	CurrentPage *int   `json:"current_page,omitempty"`
	PerPage     *int   `json:"per_page,omitempty"`
	TotalItem   *int64 `json:"total_item,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// Slack response_type values
const (
	ResponseTypeInChannel = "in_channel"
	ResponseTypeEphemeral = "ephemeral"
)

type (
	// SlashCommandResponse struct - Reply body understood by the chat platform
	SlashCommandResponse struct {
		ResponseType string `json:"response_type"`
		Text         string `json:"text"`
	}

	// SessionSummaryResponse struct - HTTP response DTO for a finished session
	SessionSummaryResponse struct {
		ID         uuid.UUID `json:"id"`
		ChannelID  string    `json:"channel_id"`
		Player1    *string   `json:"player1,omitempty"`
		Player2    *string   `json:"player2,omitempty"`
		Winner     *string   `json:"winner,omitempty"`
		Outcome    string    `json:"outcome"`
		Board      string    `json:"board"`
		CreatedAt  time.Time `json:"created_at"`
		FinishedAt time.Time `json:"finished_at"`
	}
)
