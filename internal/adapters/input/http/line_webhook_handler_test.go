package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang-tictactoe/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const testChannelSecret = "test-channel-secret"

type captureLineService struct {
	err      error
	requests []domain.LineWebhookRequest
}

func (s *captureLineService) HandleWebhook(request domain.LineWebhookRequest) error {
	s.requests = append(s.requests, request)
	return s.err
}

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(testChannelSecret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func postLine(t *testing.T, service *captureLineService, body, signature string) int {
	t.Helper()
	app := fiber.New()
	app.Post("/webhook/line", NewLineWebhookHandler(service, testChannelSecret).HandleWebhook)

	req := httptest.NewRequest(nethttp.MethodPost, "/webhook/line", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Line-Signature", signature)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	return resp.StatusCode
}

const groupTextBody = `{
  "destination": "Ubot",
  "events": [
    {
      "type": "message",
      "mode": "active",
      "timestamp": 1700000000000,
      "webhookEventId": "01HEVENT",
      "deliveryContext": {"isRedelivery": false},
      "replyToken": "reply-token",
      "source": {"type": "group", "groupId": "G1", "userId": "U1"},
      "message": {"type": "text", "id": "1001", "quoteToken": "q", "text": "/ttt start"}
    },
    {
      "type": "join",
      "mode": "active",
      "timestamp": 1700000000001,
      "webhookEventId": "01HJOIN",
      "deliveryContext": {"isRedelivery": false},
      "replyToken": "join-token",
      "source": {"type": "room", "roomId": "R1"}
    }
  ]
}`

// TestLineWebhook_ConvertsEvents tests signature verification and event conversion
func TestLineWebhook_ConvertsEvents(t *testing.T) {
	service := &captureLineService{}

	status := postLine(t, service, groupTextBody, sign(groupTextBody))

	if status != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if len(service.requests) != 1 || len(service.requests[0].Events) != 2 {
		t.Fatalf("Expected 2 converted events, got %+v", service.requests)
	}

	message := service.requests[0].Events[0]
	if message.Type != domain.LineEventTypeMessage || message.Message == nil || message.Message.Text != "/ttt start" {
		t.Errorf("Unexpected message event: %+v", message)
	}
	if message.Source.ChannelID() != "G1" || message.Source.UserID != "U1" {
		t.Errorf("Unexpected source: %+v", message.Source)
	}
	if message.ID != "01HEVENT" || message.Timestamp.UnixMilli() != 1700000000000 {
		t.Errorf("Unexpected id or timestamp: %s %v", message.ID, message.Timestamp)
	}

	join := service.requests[0].Events[1]
	if join.Type != domain.LineEventTypeJoin || join.Source.ChannelID() != "R1" || join.ReplyToken != "join-token" {
		t.Errorf("Unexpected join event: %+v", join)
	}
}

// TestLineWebhook_InvalidSignature tests rejecting unsigned requests
func TestLineWebhook_InvalidSignature(t *testing.T) {
	service := &captureLineService{}

	status := postLine(t, service, groupTextBody, sign("tampered"))

	if status != fiber.StatusBadRequest {
		t.Errorf("Expected 400, got %d", status)
	}
	if len(service.requests) != 0 {
		t.Error("Expected service to not be called")
	}
}

// TestLineWebhook_ServiceError tests error propagation
func TestLineWebhook_ServiceError(t *testing.T) {
	service := &captureLineService{err: errors.New("reply failed")}

	status := postLine(t, service, groupTextBody, sign(groupTextBody))

	if status != fiber.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", status)
	}
}
