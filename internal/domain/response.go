package domain

// ResponseStatus tells the transport who may see a reply
type ResponseStatus int

const (
	// StatusError - request failed, reply only to the sender
	StatusError ResponseStatus = iota
	// StatusOKPrivate - reply only to the sender
	StatusOKPrivate
	// StatusOKPublic - reply visible to the whole channel
	StatusOKPublic
)

// String returns a log-friendly name
func (s ResponseStatus) String() string {
	switch s {
	case StatusOKPrivate:
		return "ok-private"
	case StatusOKPublic:
		return "ok-public"
	default:
		return "error"
	}
}

// Response is the outcome of dispatching one command
type Response struct {
	Status ResponseStatus
	Text   string
}

// IsPublic reports whether the reply should be broadcast to the channel
func (r *Response) IsPublic() bool {
	return r != nil && r.Status == StatusOKPublic
}

// NewPrivateResponse builds a sender-only reply
func NewPrivateResponse(text string) *Response {
	return &Response{Status: StatusOKPrivate, Text: text}
}

// NewPublicResponse builds a channel-wide reply
func NewPublicResponse(text string) *Response {
	return &Response{Status: StatusOKPublic, Text: text}
}
