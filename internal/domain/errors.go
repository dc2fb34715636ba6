package domain

import "errors"

// Game rule errors

var (
	// ErrInvalidMove indicates a coordinate outside the 3x3 grid
	ErrInvalidMove = errors.New("invalid move")

	// ErrCellTaken indicates the target cell already holds a mark
	ErrCellTaken = errors.New("cell already taken")

	// ErrNotYourTurn indicates the user is not the player to move
	ErrNotYourTurn = errors.New("not your turn")

	// ErrGameOver indicates the board or session is terminal
	ErrGameOver = errors.New("game is over")

	// ErrSeatTaken indicates the player slot is bound to another user
	ErrSeatTaken = errors.New("player slot already taken")

	// ErrNotInvited indicates the user is not the invitee of the session
	ErrNotInvited = errors.New("user is not the invited player")

	// ErrSamePlayer indicates player1 tried to join as player2
	ErrSamePlayer = errors.New("player cannot play against themself")

	// ErrNotAPlayer indicates the user is neither player1 nor player2
	ErrNotAPlayer = errors.New("user is not a player of this game")

	// ErrGameAbandoned indicates an unstarted session was reset instead of conceded
	ErrGameAbandoned = errors.New("unstarted game abandoned")

	// ErrTransitionDenied indicates the session phase does not permit the operation
	ErrTransitionDenied = errors.New("operation not permitted in current phase")
)

// Request errors

var (
	// ErrMissingParameters indicates a required request key is absent or empty
	ErrMissingParameters = errors.New("missing required parameters")

	// ErrWrongTrigger indicates the command key is not the configured trigger
	ErrWrongTrigger = errors.New("command is not the game trigger")

	// ErrUnparseableCommand indicates the text does not form a valid command
	ErrUnparseableCommand = errors.New("unparseable command")
)
