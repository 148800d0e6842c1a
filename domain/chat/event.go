package chat

// Wire event names shared by every live transport.
const (
	EventPreviousMessages = "previousMessages"
	EventChatMessage      = "chatMessage"
	EventTyping           = "typing"
)

// Event is one outbound frame. Data is a Message, a Typing or a []Message.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

func NewPreviousMessages(history []Message) Event {
	if history == nil {
		history = []Message{}
	}
	return Event{Name: EventPreviousMessages, Data: history}
}

func NewChatMessage(message Message) Event {
	return Event{Name: EventChatMessage, Data: message}
}

func NewTyping(typing Typing) Event {
	return Event{Name: EventTyping, Data: typing}
}

// ConnectionState follows Connecting -> Open -> Closed, Closed being terminal.
type ConnectionState int32

const (
	Connecting ConnectionState = iota
	Open
	Closed
)

func (s ConnectionState) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Open:
		return "open"
	default:
		return "closed"
	}
}

// RoomStats is a point-in-time view of the hub.
type RoomStats struct {
	Connections int `json:"connections"`
	Messages    int `json:"messages"`
}
