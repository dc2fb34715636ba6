package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"golang-tictactoe/internal/adapters/output/memory"
	"golang-tictactoe/internal/application"
	"golang-tictactoe/internal/domain"

	"github.com/gookit/color"
)

func newTestConsole(out *bytes.Buffer) *console {
	service := application.NewCommandService(memory.NewMemorySessionStore(0), nil, application.DefaultTrigger, time.Minute)
	return &console{service: service, channel: "console", out: out}
}

func TestHandle(t *testing.T) {
	c := newTestConsole(&bytes.Buffer{})

	tests := []struct {
		line   string
		status domain.ResponseStatus
		text   string
	}{
		{line: "alice: start", status: domain.StatusOKPrivate, text: "New board created. Pending..."},
		{line: "  bob :  start ", status: domain.StatusOKPublic, text: "Board ready. alice starts..."},
		{line: "alice: put 0 0", status: domain.StatusOKPublic, text: "Next move is for player bob"},
	}
	for _, tt := range tests {
		response := c.handle(tt.line)
		if response == nil {
			t.Fatalf("Expected response for %q, got nil", tt.line)
		}
		if response.Status != tt.status || !strings.Contains(response.Text, tt.text) {
			t.Errorf("Unexpected response for %q: %+v", tt.line, response)
		}
	}

	if response := c.handle("no separator"); response != nil {
		t.Errorf("Expected nil for a malformed line, got %+v", response)
	}
	if response := c.handle("carol:"); response != nil {
		t.Errorf("Expected nil for empty text, got %+v", response)
	}
}

func TestRun(t *testing.T) {
	color.Disable()
	var out bytes.Buffer
	c := newTestConsole(&out)

	input := "alice: start\n\nbob: start\nbob put 1 1\nalice: status\n"
	if err := c.run(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	output := out.String()
	for _, want := range []string{"New board created. Pending...", "Board ready. alice starts...", "(no response)", "Game active. Waiting for player alice"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}
