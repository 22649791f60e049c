package models

import "github.com/dmitrijs2005/expotacna/internal/timex"

// MessageState tracks the local delivery status of a chat message. Fetched
// and pushed messages are always Confirmed; a locally echoed outgoing
// message starts Pending and is marked Failed when the send is known lost,
// so a failed echo can be distinguished and retried instead of silently
// pretending delivery.
type MessageState int

const (
	MessageConfirmed MessageState = iota
	MessagePending
	MessageFailed
)

// Message is one chat message. LocalID identifies a pending local echo so a
// later server copy can confirm it; it never goes on the wire.
type Message struct {
	LocalID     string       `json:"-"`
	State       MessageState `json:"-"`
	SenderID    int          `json:"sender_id"`
	RecipientID int          `json:"recipient_id"`
	Content     string       `json:"content"`
	CreatedAt   timex.Time   `json:"created_at"`
}

// ChatUser identifies a conversation counterpart.
type ChatUser struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// Conversation groups messages with one counterpart, ordered by recency in
// the server's listing.
type Conversation struct {
	Other       ChatUser `json:"other_user"`
	LastMessage Message  `json:"last_message"`
	UnreadCount int      `json:"unread_count"`
}
