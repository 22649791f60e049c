package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/expotacna/internal/client/api"
	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/timex"
)

// MessageSender pushes one outgoing chat message over the realtime channel.
type MessageSender interface {
	SendPrivateMessage(token string, recipientID int, content string) error
}

// ChatService keeps the state of the open conversation. Outgoing messages
// are echoed locally as Pending right away; the server's push of the same
// message confirms the echo. A full transcript refetch always replaces the
// local state, pending echoes included, since the server copy is fresher
// than anything held locally.
type ChatService struct {
	client api.Client
	sender MessageSender

	mu         sync.Mutex
	userID     int
	token      string
	otherID    int
	transcript []models.Message

	now   func() time.Time
	newID func() string
}

func NewChatService(client api.Client, sender MessageSender) *ChatService {
	return &ChatService{
		client: client,
		sender: sender,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// SetSession binds the service to the logged-in user.
func (s *ChatService) SetSession(userID int, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.token = token
}

func (s *ChatService) Conversations(ctx context.Context) ([]models.Conversation, error) {
	return s.client.Conversations(ctx)
}

// Open fetches the transcript with the given user and makes it the active
// conversation.
func (s *ChatService) Open(ctx context.Context, otherUserID int) ([]models.Message, error) {
	messages, err := s.client.Messages(ctx, otherUserID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.otherID = otherUserID
	s.transcript = messages
	return s.snapshotLocked(), nil
}

// Refresh refetches the active transcript wholesale.
func (s *ChatService) Refresh(ctx context.Context) ([]models.Message, error) {
	s.mu.Lock()
	otherID := s.otherID
	s.mu.Unlock()
	if otherID == 0 {
		return nil, nil
	}
	return s.Open(ctx, otherID)
}

// Active returns the counterpart of the open conversation, 0 when none.
func (s *ChatService) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.otherID
}

// Transcript returns a copy of the active conversation's messages.
func (s *ChatService) Transcript() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *ChatService) snapshotLocked() []models.Message {
	out := make([]models.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Send queues one message to the active conversation and appends a Pending
// local echo. When the push fails immediately the echo is marked Failed and
// the error is returned; the echo stays visible either way so the user can
// see what happened to it.
func (s *ChatService) Send(content string) (models.Message, error) {
	s.mu.Lock()
	echo := models.Message{
		LocalID:     s.newID(),
		State:       models.MessagePending,
		SenderID:    s.userID,
		RecipientID: s.otherID,
		Content:     content,
		CreatedAt:   timex.Time{Time: s.now()},
	}
	s.transcript = append(s.transcript, echo)
	token, recipientID := s.token, s.otherID
	s.mu.Unlock()

	if err := s.sender.SendPrivateMessage(token, recipientID, content); err != nil {
		s.MarkFailed(echo.LocalID)
		echo.State = models.MessageFailed
		return echo, err
	}
	return echo, nil
}

// MarkFailed flags a pending echo as lost.
func (s *ChatService) MarkFailed(localID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transcript {
		if s.transcript[i].LocalID == localID && s.transcript[i].State == models.MessagePending {
			s.transcript[i].State = models.MessageFailed
		}
	}
}

// Owns reports whether the message is the user's own outgoing copy coming
// back from the server.
func (s *ChatService) Owns(msg models.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return msg.SenderID == s.userID
}

// HandleIncoming folds one pushed message into the active transcript.
// The server's copy of an own outgoing message confirms the oldest pending
// echo with the same content instead of duplicating it. Messages for other
// conversations are ignored; the reported flag tells the caller whether the
// visible transcript changed.
func (s *ChatService) HandleIncoming(msg models.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.otherID == 0 {
		return false
	}

	fromOther := msg.SenderID == s.otherID && msg.RecipientID == s.userID
	ownEcho := msg.SenderID == s.userID && msg.RecipientID == s.otherID
	if !fromOther && !ownEcho {
		return false
	}

	if ownEcho {
		for i := range s.transcript {
			m := &s.transcript[i]
			if m.State == models.MessagePending && m.Content == msg.Content {
				m.State = models.MessageConfirmed
				m.CreatedAt = msg.CreatedAt
				return true
			}
		}
	}

	msg.State = models.MessageConfirmed
	s.transcript = append(s.transcript, msg)
	return true
}
