package domain

// Verb is the closed set of game commands
type Verb int

const (
	VerbHelp Verb = iota
	VerbStart
	VerbPut
	VerbRestart
	VerbQuit
	VerbResign
	VerbStatus
)

var verbNames = map[Verb]string{
	VerbHelp:    "help",
	VerbStart:   "start",
	VerbPut:     "put",
	VerbRestart: "restart",
	VerbQuit:    "quit",
	VerbResign:  "resign",
	VerbStatus:  "status",
}

// String returns the chat keyword of the verb
func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "unknown"
}

// LookupVerb maps a chat keyword to its verb
func LookupVerb(token string) (Verb, bool) {
	for verb, name := range verbNames {
		if name == token {
			return verb, true
		}
	}
	return VerbHelp, false
}

// Coord is a board position
type Coord struct {
	Row int
	Col int
}

// Command is a parsed chat request, built per request and discarded after dispatch
type Command struct {
	UserID      string
	UserName    string
	ChannelID   string
	ChannelName string
	Verb        Verb
	Coord       *Coord  // put only
	Invitee     *string // start only
}
