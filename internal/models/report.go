package models

// Participant roles in a conversation.
const (
	RoleUser    = "user"
	RoleManager = "manager"
)

// Participant is one person seen during an aggregation run, keyed by id.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// TranscriptMessage is one cleaned, speaker-resolved message of a chat.
type TranscriptMessage struct {
	Timestamp  string `json:"timestamp"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
}

// ChatRecord is one chat's assembled conversation in a manager report.
// Participants contains only the people who authored a retained message.
type ChatRecord struct {
	ChatID         string              `json:"chat_id"`
	State          string              `json:"state"`
	Tags           []string            `json:"tags,omitempty"`
	ManagerID      string              `json:"manager_id"`
	FirstMessageAt string              `json:"first_message_at"`
	LastMessageAt  string              `json:"last_message_at"`
	Messages       []TranscriptMessage `json:"messages"`
	Dialogue       []string            `json:"dialogue"`
	Participants   []Participant       `json:"participants"`
}

// Report is the per-manager aggregation result. Date echoes the requested
// date filter and is empty when none was given.
type Report struct {
	ReportID    string       `json:"report_id"`
	ManagerID   string       `json:"manager_id"`
	Count       int          `json:"count"`
	Date        string       `json:"date,omitempty"`
	GeneratedAt string       `json:"generated_at"`
	Chats       []ChatRecord `json:"chats"`
}
