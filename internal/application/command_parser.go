package application

import (
	"fmt"
	"strconv"
	"strings"

	"golang-tictactoe/internal/domain"
	"golang-tictactoe/pkg/validator"
)

// Request parameter keys, as sent by the chat platform's slash command
const (
	ParamChannelID   = "channel_id"
	ParamChannelName = "channel_name"
	ParamUserName    = "user_name"
	ParamUserID      = "user_id"
	ParamCommand     = "command"
	ParamText        = "text"
)

// DefaultTrigger is the slash command that addresses the game
const DefaultTrigger = "/ttt"

const coordinateRule = "min=0,max=2"

// commandParams is the upstream gate: every key must be present and non-empty
type commandParams struct {
	ChannelID   string `validate:"required"`
	ChannelName string `validate:"required"`
	UserName    string `validate:"required"`
	UserID      string `validate:"required"`
	Command     string `validate:"required"`
	Text        string `validate:"required"`
}

// CommandParser turns a raw parameter map into a domain.Command
type CommandParser struct {
	trigger   string
	validator validator.Validator
}

// NewCommandParser creates a parser that only accepts the given trigger
func NewCommandParser(trigger string) *CommandParser {
	if trigger == "" {
		trigger = DefaultTrigger
	}
	return &CommandParser{
		trigger:   trigger,
		validator: validator.New(),
	}
}

// Trigger returns the slash command the parser accepts
func (p *CommandParser) Trigger() string {
	return p.trigger
}

// Parse validates the parameters and builds the command. Unknown verbs
// become help; wrong arity or bad coordinates are ErrUnparseableCommand.
func (p *CommandParser) Parse(params map[string]string) (*domain.Command, error) {
	req := commandParams{
		ChannelID:   params[ParamChannelID],
		ChannelName: params[ParamChannelName],
		UserName:    params[ParamUserName],
		UserID:      params[ParamUserID],
		Command:     params[ParamCommand],
		Text:        params[ParamText],
	}
	if err := p.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingParameters, err)
	}
	if req.Command != p.trigger {
		return nil, fmt.Errorf("%w: %q", domain.ErrWrongTrigger, req.Command)
	}

	tokens := strings.Fields(req.Text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty text", domain.ErrUnparseableCommand)
	}

	command := &domain.Command{
		UserID:      req.UserID,
		UserName:    req.UserName,
		ChannelID:   req.ChannelID,
		ChannelName: req.ChannelName,
	}

	verb, known := domain.LookupVerb(strings.ToLower(tokens[0]))
	if !known {
		command.Verb = domain.VerbHelp
		return command, nil
	}
	command.Verb = verb

	switch verb {
	case domain.VerbStart:
		if len(tokens) > 2 {
			return nil, unparseable(verb, tokens)
		}
		if len(tokens) == 2 {
			invitee := strings.TrimPrefix(tokens[1], "@")
			if invitee == "" {
				return nil, unparseable(verb, tokens)
			}
			command.Invitee = &invitee
		}

	case domain.VerbPut:
		if len(tokens) != 3 {
			return nil, unparseable(verb, tokens)
		}
		coord, err := p.parseCoord(tokens[1], tokens[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnparseableCommand, err)
		}
		command.Coord = coord

	default:
		if len(tokens) != 1 {
			return nil, unparseable(verb, tokens)
		}
	}

	return command, nil
}

func (p *CommandParser) parseCoord(rowToken, colToken string) (*domain.Coord, error) {
	row, err := strconv.Atoi(rowToken)
	if err != nil {
		return nil, err
	}
	col, err := strconv.Atoi(colToken)
	if err != nil {
		return nil, err
	}
	if err := p.validator.ValidateVar(row, coordinateRule); err != nil {
		return nil, fmt.Errorf("row %d: %w", row, err)
	}
	if err := p.validator.ValidateVar(col, coordinateRule); err != nil {
		return nil, fmt.Errorf("col %d: %w", col, err)
	}
	return &domain.Coord{Row: row, Col: col}, nil
}

func unparseable(verb domain.Verb, tokens []string) error {
	return fmt.Errorf("%w: %s takes a different number of arguments, got %d token(s)", domain.ErrUnparseableCommand, verb, len(tokens))
}
