package application

import (
	"errors"
	"fmt"
	"time"

	"golang-tictactoe/internal/domain"
	"golang-tictactoe/internal/ports/input"
	"golang-tictactoe/internal/ports/output"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure CommandService implements the input port
var _ input.CommandService = (*CommandService)(nil)

// DefaultRestartCooldown is how long a session must be idle before restart
const DefaultRestartCooldown = 120 * time.Second

// HelpText lists the commands understood by the game
const HelpText = "```HELP:\n" +
	"    start [username to invite] // eg start or start user1\n" +
	"    put <row> <col>            // eg put 1 2 for your move\n" +
	"    resign|quit                // resign or quit\n" +
	"    status                     // prints the board state\n" +
	"    restart                    // drops an idle game\n" +
	"    help                       // help\n" +
	"```"

const (
	msgNewBoard         = "New board created. Pending..."
	msgAlreadyPending   = "Board already created. Pending..."
	msgBoardReady       = "Board ready. %s starts..."
	msgCannotJoin       = "Cannot create new board. Board is active..."
	msgBoardExists      = "Board not created. Already existing board..."
	msgNoBoard          = "No board active..."
	msgGameDone         = "Game is done. Start a new one..."
	msgWaitingPlayer2   = "Waiting for a second player..."
	msgCannotPlace      = "Cannot place move on %d %d"
	msgGameOverWinner   = "Game over. Winner is %s"
	msgGameOverDraw     = "Game over. Draw..."
	msgNextMove         = "Next move is for player %s"
	msgNoBoardToQuit    = "Board is null. Cannot quit..."
	msgQuit             = "%s quit. Winner is %s"
	msgCannotQuit       = "Game is done. Cannot quit..."
	msgStatusWinner     = "Game done. Winner is %s"
	msgStatusDraw       = "Game done. Draw..."
	msgStatusWaiting    = "Game active. Waiting for player %s"
	msgStatusNoPlayers  = "Game active. Waiting for players..."
	msgNoNeedToRestart  = "Game over. No need to restart. Type start..."
	msgRestartCooldown  = "Cannot restart. Wait %d seconds"
	msgRestartCompleted = "Board reset. Type start..."
)

// CommandService struct - Application service dispatching chat commands
// against the per-channel sessions
type CommandService struct {
	store           output.SessionStore
	records         output.GameRecordRepository
	parser          *CommandParser
	restartCooldown time.Duration
	now             func() time.Time
}

// NewCommandService func - Creates new command service.
// records may be nil, in which case finished games are not archived.
func NewCommandService(store output.SessionStore, records output.GameRecordRepository, trigger string, restartCooldown time.Duration) *CommandService {
	if restartCooldown <= 0 {
		restartCooldown = DefaultRestartCooldown
	}
	return &CommandService{
		store:           store,
		records:         records,
		parser:          NewCommandParser(trigger),
		restartCooldown: restartCooldown,
		now:             time.Now,
	}
}

// Trigger returns the slash command this service answers to
func (s *CommandService) Trigger() string {
	return s.parser.Trigger()
}

// Process func - Use case: parse a request and apply it
func (s *CommandService) Process(params map[string]string) *domain.Response {
	command, err := s.parser.Parse(params)
	if err != nil {
		logrus.Debugf("Dropping request: %v", err)
		return nil
	}
	return s.Dispatch(*command)
}

// Dispatch func - Use case: apply a parsed command to its channel.
// Everything between reading and writing the channel's session happens
// under the channel lock.
func (s *CommandService) Dispatch(command domain.Command) *domain.Response {
	logrus.Debugf("Dispatching %s from %s in channel %s", command.Verb, command.UserName, command.ChannelID)

	if command.Verb == domain.VerbHelp {
		return domain.NewPrivateResponse(HelpText)
	}

	var (
		response *domain.Response
		finished *domain.GameRecord
	)
	s.store.Transact(command.ChannelID, func(tx output.ChannelTx) {
		switch command.Verb {
		case domain.VerbStart:
			response = s.start(tx, command)
		case domain.VerbPut:
			response, finished = s.put(tx, command)
		case domain.VerbQuit, domain.VerbResign:
			response, finished = s.concede(tx, command)
		case domain.VerbStatus:
			response = s.status(tx)
		case domain.VerbRestart:
			response = s.restart(tx)
		default:
			response = domain.NewPrivateResponse(HelpText)
		}
	})

	if finished != nil {
		s.archive(finished)
	}
	return response
}

// History func - Use case: list a channel's finished sessions
func (s *CommandService) History(channelID string) []domain.SessionSummary {
	return lo.Map(s.store.History(channelID), func(session *domain.Session, _ int) domain.SessionSummary {
		return domain.NewSessionSummary(session)
	})
}

func (s *CommandService) start(tx output.ChannelTx, command domain.Command) *domain.Response {
	current, ok := tx.Current()
	if !ok || current.IsTerminal() {
		session := domain.NewSession(command.ChannelID)
		if err := s.open(session, command); err != nil {
			return domain.NewPrivateResponse(msgBoardExists)
		}
		if !tx.Replace(session) {
			return domain.NewPrivateResponse(msgBoardExists)
		}
		logrus.Infof("Session %s created in channel %s by %s", session.ID, command.ChannelID, command.UserName)
		return domain.NewPrivateResponse(msgNewBoard)
	}

	switch current.Phase() {
	case domain.PhaseEmpty:
		// abandoned or reset session, reclaimed in place
		if err := s.open(current, command); err != nil {
			return domain.NewPrivateResponse(msgBoardExists)
		}
		return domain.NewPrivateResponse(msgNewBoard)

	case domain.PhaseAwaitingPlayer2:
		player1, _ := current.Player1()
		if player1 == command.UserName {
			return domain.NewPrivateResponse(msgAlreadyPending)
		}
		if err := current.BindPlayer2(command.UserName); err != nil {
			logrus.Debugf("Join refused for %s in channel %s: %v", command.UserName, command.ChannelID, err)
			return domain.NewPrivateResponse(msgCannotJoin)
		}
		return domain.NewPublicResponse(fence(current.Board()) + "\n" + fmt.Sprintf(msgBoardReady, player1))

	default:
		return domain.NewPrivateResponse(msgBoardExists)
	}
}

func (s *CommandService) open(session *domain.Session, command domain.Command) error {
	if err := session.BindPlayer1(command.UserName); err != nil {
		return err
	}
	if command.Invitee != nil {
		session.SetInvitee(*command.Invitee)
	}
	return nil
}

func (s *CommandService) put(tx output.ChannelTx, command domain.Command) (*domain.Response, *domain.GameRecord) {
	current, ok := tx.Current()
	switch {
	case !ok:
		return domain.NewPrivateResponse(msgNoBoard), nil
	case current.IsTerminal():
		return domain.NewPrivateResponse(msgGameDone), nil
	case !current.IsReady():
		return domain.NewPrivateResponse(msgWaitingPlayer2), nil
	case command.Coord == nil:
		return nil, nil
	}

	row, col := command.Coord.Row, command.Coord.Col
	if err := current.MakeMove(command.UserName, row, col); err != nil {
		logrus.Debugf("Move %d %d by %s rejected: %v", row, col, command.UserName, err)
		return domain.NewPrivateResponse(fmt.Sprintf(msgCannotPlace, row, col)), nil
	}

	text := fence(current.Board()) + "\n"
	if !current.IsTerminal() {
		next, _ := current.CurrentPlayer()
		return domain.NewPublicResponse(text + fmt.Sprintf(msgNextMove, next)), nil
	}
	if winner, won := current.Winner(); won {
		text += fmt.Sprintf(msgGameOverWinner, winner)
	} else {
		text += msgGameOverDraw
	}
	return domain.NewPublicResponse(text), domain.NewGameRecord(current)
}

func (s *CommandService) concede(tx output.ChannelTx, command domain.Command) (*domain.Response, *domain.GameRecord) {
	current, ok := tx.Current()
	if !ok {
		return domain.NewPrivateResponse(msgNoBoardToQuit), nil
	}
	if err := current.Concede(command.UserName); err != nil {
		if errors.Is(err, domain.ErrGameAbandoned) {
			logrus.Infof("Pending session in channel %s abandoned by %s", command.ChannelID, command.UserName)
		}
		return domain.NewPrivateResponse(msgCannotQuit), nil
	}
	winner, _ := current.Winner()
	text := fence(current.Board()) + "\n" + fmt.Sprintf(msgQuit, command.UserName, winner)
	return domain.NewPublicResponse(text), domain.NewGameRecord(current)
}

func (s *CommandService) status(tx output.ChannelTx) *domain.Response {
	current, ok := tx.Current()
	if !ok {
		return domain.NewPublicResponse(msgNoBoard)
	}
	text := fence(current.Board()) + "\n"
	if winner, won := current.Winner(); won {
		return domain.NewPublicResponse(text + fmt.Sprintf(msgStatusWinner, winner))
	}
	if current.IsTerminal() {
		return domain.NewPublicResponse(text + msgStatusDraw)
	}
	if next, bound := current.CurrentPlayer(); bound {
		return domain.NewPublicResponse(text + fmt.Sprintf(msgStatusWaiting, next))
	}
	return domain.NewPublicResponse(text + msgStatusNoPlayers)
}

func (s *CommandService) restart(tx output.ChannelTx) *domain.Response {
	current, ok := tx.Current()
	if !ok || current.IsTerminal() {
		return domain.NewPrivateResponse(msgNoNeedToRestart)
	}
	idle := s.now().Sub(current.LastActivityTime)
	if idle < s.restartCooldown {
		remaining := int64((s.restartCooldown - idle) / time.Second)
		return domain.NewPrivateResponse(fmt.Sprintf(msgRestartCooldown, remaining))
	}
	current.Reset()
	tx.Clear()
	logrus.Infof("Session %s in channel %s dropped after %s idle", current.ID, current.ChannelID, idle.Truncate(time.Second))
	return domain.NewPrivateResponse(msgRestartCompleted)
}

func (s *CommandService) archive(record *domain.GameRecord) {
	if s.records == nil {
		return
	}
	if err := s.records.SaveRecord(record); err != nil {
		logrus.Errorf("Failed to archive game record for channel %s: %v", lo.FromPtr(record.ChannelID), err)
	}
}

// fence wraps the rendered board in a code block
func fence(board *domain.Board) string {
	return "```\n" + board.Render() + "```"
}
