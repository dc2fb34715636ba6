package application

import (
	"fmt"
	"strings"
	"sync"

	"golang-tictactoe/internal/domain"
	"golang-tictactoe/internal/ports/input"
	"golang-tictactoe/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure LineWebhookService implements the input port
var _ input.LineWebhookService = (*LineWebhookService)(nil)

const lineWelcomeText = "Welcome! Add me to a group and challenge your friends to tic-tac-toe.\n\nType %s help to see available commands."

// LineWebhookService struct - Application service playing the game over LINE chats
type LineWebhookService struct {
	lineClient output.LineClient
	commands   input.CommandService
	trigger    string

	namesMu sync.Mutex
	names   map[string]map[string]string // channel id -> seat name -> LINE user id
}

// NewLineWebhookService func - Creates new LINE webhook service
func NewLineWebhookService(lineClient output.LineClient, commands input.CommandService, trigger string) *LineWebhookService {
	if trigger == "" {
		trigger = DefaultTrigger
	}
	return &LineWebhookService{
		lineClient: lineClient,
		commands:   commands,
		trigger:    trigger,
		names:      make(map[string]map[string]string),
	}
}

// HandleWebhook func - Use case: Handle incoming webhook events from LINE
func (s *LineWebhookService) HandleWebhook(request domain.LineWebhookRequest) error {
	for _, event := range request.Events {
		logrus.Debugf("Received LINE event: type=%s, source=%s, channel=%s",
			event.Type, event.Source.Type, event.Source.ChannelID())

		switch event.Type {
		case domain.LineEventTypeMessage:
			if err := s.handleMessageEvent(event); err != nil {
				logrus.Errorf("Failed to handle message event: %v", err)
				return err
			}

		case domain.LineEventTypeFollow:
			if err := s.handleFollowEvent(event); err != nil {
				logrus.Errorf("Failed to handle follow event: %v", err)
				return err
			}

		case domain.LineEventTypeJoin:
			if err := s.handleJoinEvent(event); err != nil {
				logrus.Errorf("Failed to handle join event: %v", err)
				return err
			}

		case domain.LineEventTypeUnfollow:
			logrus.Infof("User unfollowed: userID=%s", event.Source.UserID)

		default:
			logrus.Debugf("Unhandled event type: %s", event.Type)
		}
	}

	return nil
}

// handleMessageEvent - Routes trigger-prefixed text to the game
func (s *LineWebhookService) handleMessageEvent(event domain.LineWebhookEvent) error {
	if event.Message == nil || event.Message.Type != domain.LineMessageTypeText {
		return nil
	}

	parts := strings.Fields(event.Message.Text)
	if len(parts) == 0 || !strings.EqualFold(parts[0], s.trigger) {
		return nil
	}
	text := strings.Join(parts[1:], " ")
	if text == "" {
		text = domain.VerbHelp.String()
	}

	channelID := event.Source.ChannelID()
	params := map[string]string{
		ParamChannelID:   channelID,
		ParamChannelName: channelID,
		ParamUserID:      event.Source.UserID,
		ParamUserName:    s.seatName(channelID, event.Source.UserID),
		ParamCommand:     s.trigger,
		ParamText:        text,
	}

	response := s.commands.Process(params)
	if response == nil {
		return nil
	}
	return s.deliver(event, response)
}

// deliver sends public replies to the chat and private ones to the sender
func (s *LineWebhookService) deliver(event domain.LineWebhookEvent, response *domain.Response) error {
	messages := []domain.LineOutgoingMessage{
		{Type: domain.LineMessageTypeText, Text: response.Text},
	}

	sharedChat := event.Source.Type == domain.LineSourceTypeGroup || event.Source.Type == domain.LineSourceTypeRoom
	if !response.IsPublic() && sharedChat && event.Source.UserID != "" {
		_, err := s.lineClient.PushMessage(domain.LinePushMessageRequest{
			To:       event.Source.UserID,
			Messages: messages,
		})
		if err == nil {
			return nil
		}
		// the sender may not have added the bot as a friend
		logrus.Warnf("Push to %s failed, replying in chat instead: %v", event.Source.UserID, err)
	}

	if event.ReplyToken == "" {
		return nil
	}
	if _, err := s.lineClient.ReplyMessage(domain.LineReplyMessageRequest{
		ReplyToken: event.ReplyToken,
		Messages:   messages,
	}); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}
	return nil
}

// displayName resolves the name players are known by, falling back to the user id
func (s *LineWebhookService) displayName(userID string) string {
	if userID == "" {
		return ""
	}
	name, err := s.lineClient.GetDisplayName(userID)
	if err != nil || name == "" {
		logrus.Warnf("Cannot resolve display name of %s: %v", userID, err)
		return userID
	}
	return name
}

// seatName returns the name a user plays under in a chat. Players are
// matched by name, so a display name already held by another LINE user in
// the same chat gets the tail of the user id appended.
func (s *LineWebhookService) seatName(channelID, userID string) string {
	name := s.displayName(userID)
	if name == "" || name == userID {
		return name
	}

	s.namesMu.Lock()
	defer s.namesMu.Unlock()
	claimed, ok := s.names[channelID]
	if !ok {
		claimed = make(map[string]string)
		s.names[channelID] = claimed
	}

	for _, candidate := range []string{name, name + "#" + idTail(userID), userID} {
		owner, taken := claimed[candidate]
		if !taken || owner == userID {
			claimed[candidate] = userID
			return candidate
		}
	}
	return userID
}

func idTail(userID string) string {
	const tailLen = 4
	if len(userID) <= tailLen {
		return userID
	}
	return userID[len(userID)-tailLen:]
}

// handleFollowEvent - Greets a new friend with the command list
func (s *LineWebhookService) handleFollowEvent(event domain.LineWebhookEvent) error {
	logrus.Infof("User followed: userID=%s", event.Source.UserID)

	welcomeMsg := domain.LinePushMessageRequest{
		To: event.Source.UserID,
		Messages: []domain.LineOutgoingMessage{
			{Type: domain.LineMessageTypeText, Text: fmt.Sprintf(lineWelcomeText, s.trigger)},
			{Type: domain.LineMessageTypeText, Text: HelpText},
		},
	}

	if _, err := s.lineClient.PushMessage(welcomeMsg); err != nil {
		return fmt.Errorf("failed to send welcome message: %w", err)
	}

	return nil
}

// handleJoinEvent - Posts the command list when the bot enters a group or room
func (s *LineWebhookService) handleJoinEvent(event domain.LineWebhookEvent) error {
	logrus.Infof("Joined %s %s", event.Source.Type, event.Source.ChannelID())
	if event.ReplyToken == "" {
		return nil
	}

	replyReq := domain.LineReplyMessageRequest{
		ReplyToken: event.ReplyToken,
		Messages: []domain.LineOutgoingMessage{
			{Type: domain.LineMessageTypeText, Text: HelpText},
		},
	}
	if _, err := s.lineClient.ReplyMessage(replyReq); err != nil {
		return fmt.Errorf("failed to send join message: %w", err)
	}
	return nil
}
