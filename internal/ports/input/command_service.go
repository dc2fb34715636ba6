package input

import "golang-tictactoe/internal/domain"

// CommandService interface - Input port (use case)
// Applies chat commands to the per-channel game sessions
type CommandService interface {
	// Process parses the request parameters and dispatches the command.
	// A nil response means the request was dropped and must not be answered.
	Process(params map[string]string) *domain.Response

	// History lists the finished sessions of a channel, oldest first
	History(channelID string) []domain.SessionSummary
}
