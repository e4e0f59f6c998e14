package channelio

import "strings"

// Person types as delivered by the platform's personType field.
const (
	PersonTypeUser    = "user"
	PersonTypeManager = "manager"
	PersonTypeBot     = "bot"
)

// Chat lifecycle states understood by the user-chats endpoint.
const (
	StateOpened  = "opened"
	StateClosed  = "closed"
	StateSnoozed = "snoozed"
)

// UserChat is one chat summary from the user-chats endpoint. ManagerIDs and
// Tags are optional: chats that were never assigned carry no managerIds key.
type UserChat struct {
	ID         string   `json:"id"`
	State      string   `json:"state"`
	UserID     string   `json:"userId"`
	Name       string   `json:"name"`
	ManagerIDs []string `json:"managerIds,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CreatedAt  int64    `json:"createdAt"`
}

// Manager is a roster entry attached to a chat page.
type Manager struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is a customer profile attached to a chat page.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Block is one content block of a message. Only type "text" carries a value
// the report cares about; file, image and form blocks have no plain text.
type Block struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

// Message is one entry of a chat's message history.
type Message struct {
	ID         string  `json:"id"`
	ChatID     string  `json:"chatId"`
	PersonID   string  `json:"personId"`
	PersonType string  `json:"personType"`
	CreatedAt  int64   `json:"createdAt"`
	Blocks     []Block `json:"blocks,omitempty"`
}

// PlainText joins the values of the message's text blocks. The second return
// is false when the message has no text block at all (e.g. file-only messages).
func (m Message) PlainText() (string, bool) {
	var parts []string
	for _, b := range m.Blocks {
		if b.Type == "text" {
			parts = append(parts, b.Value)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "\n"), true
}

// ChatPage is one page of the user-chats listing. Next is the opaque cursor
// for the following page; empty means the listing is exhausted.
type ChatPage struct {
	UserChats []UserChat `json:"userChats"`
	Managers  []Manager  `json:"managers,omitempty"`
	Users     []User     `json:"users,omitempty"`
	Next      string     `json:"next,omitempty"`
}

// MessagePage is the first page of a chat's message history, ascending by
// creation time.
type MessagePage struct {
	Messages []Message `json:"messages"`
	Next     string    `json:"next,omitempty"`
}
