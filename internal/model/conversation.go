package model

// Role identifies the speaker of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one message in a session transcript. The
// transcript is append-only and lives only for the session.
type ConversationTurn struct {
	Role Role
	Text string
}
