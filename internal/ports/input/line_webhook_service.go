package input

import "golang-tictactoe/internal/domain"

// LineWebhookService interface - Input port for LINE chats.
// Turns trigger messages into game commands and answers in the chat.
type LineWebhookService interface {
	HandleWebhook(request domain.LineWebhookRequest) error
}
