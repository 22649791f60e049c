package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/timex"
)

type fakeSender struct {
	Err  error
	Sent []models.Message
}

func (f *fakeSender) SendPrivateMessage(token string, recipientID int, content string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Sent = append(f.Sent, models.Message{RecipientID: recipientID, Content: content})
	return nil
}

func newChatFixture(t *testing.T, sender *fakeSender, serverMessages []models.Message) *ChatService {
	t.Helper()
	client := &fakeClient{
		MessagesFn: func(_ context.Context, otherUserID int) ([]models.Message, error) {
			return serverMessages, nil
		},
	}
	svc := NewChatService(client, sender)
	svc.SetSession(1, "tok")
	svc.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	n := 0
	svc.newID = func() string {
		n++
		return string(rune('a' + n - 1))
	}
	return svc
}

func TestChatService_SendAppendsPendingEcho(t *testing.T) {
	sender := &fakeSender{}
	svc := newChatFixture(t, sender, nil)
	_, err := svc.Open(context.Background(), 2)
	require.NoError(t, err)

	echo, err := svc.Send("hola")
	require.NoError(t, err)
	assert.Equal(t, models.MessagePending, echo.State)
	assert.Equal(t, 1, echo.SenderID)
	assert.Equal(t, 2, echo.RecipientID)
	require.Len(t, sender.Sent, 1)
	assert.Equal(t, "hola", sender.Sent[0].Content)

	transcript := svc.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, models.MessagePending, transcript[0].State)
}

func TestChatService_SendFailureMarksEchoFailed(t *testing.T) {
	sender := &fakeSender{Err: errors.New("socket down")}
	svc := newChatFixture(t, sender, nil)
	_, err := svc.Open(context.Background(), 2)
	require.NoError(t, err)

	echo, err := svc.Send("hola")
	require.Error(t, err)
	assert.Equal(t, models.MessageFailed, echo.State)

	transcript := svc.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, models.MessageFailed, transcript[0].State,
		"the failed echo stays visible instead of silently vanishing")
}

func TestChatService_IncomingConfirmsPendingEcho(t *testing.T) {
	svc := newChatFixture(t, &fakeSender{}, nil)
	_, err := svc.Open(context.Background(), 2)
	require.NoError(t, err)

	_, err = svc.Send("hola")
	require.NoError(t, err)

	serverTime := timex.Time{Time: time.Date(2026, 8, 1, 12, 0, 3, 0, time.UTC)}
	changed := svc.HandleIncoming(models.Message{
		SenderID: 1, RecipientID: 2, Content: "hola", CreatedAt: serverTime,
	})
	assert.True(t, changed)

	transcript := svc.Transcript()
	require.Len(t, transcript, 1, "the server echo confirms instead of duplicating")
	assert.Equal(t, models.MessageConfirmed, transcript[0].State)
	assert.Equal(t, serverTime, transcript[0].CreatedAt)
}

func TestChatService_IncomingFromCounterpartAppends(t *testing.T) {
	svc := newChatFixture(t, &fakeSender{}, nil)
	_, err := svc.Open(context.Background(), 2)
	require.NoError(t, err)

	changed := svc.HandleIncoming(models.Message{SenderID: 2, RecipientID: 1, Content: "buenas"})
	assert.True(t, changed)

	transcript := svc.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, models.MessageConfirmed, transcript[0].State)
	assert.Equal(t, "buenas", transcript[0].Content)
}

func TestChatService_IncomingForOtherConversationIgnored(t *testing.T) {
	svc := newChatFixture(t, &fakeSender{}, nil)
	_, err := svc.Open(context.Background(), 2)
	require.NoError(t, err)

	changed := svc.HandleIncoming(models.Message{SenderID: 9, RecipientID: 1, Content: "psst"})
	assert.False(t, changed)
	assert.Empty(t, svc.Transcript())
}

func TestChatService_RefetchReplacesLocalState(t *testing.T) {
	serverCopy := []models.Message{
		{SenderID: 2, RecipientID: 1, Content: "buenas"},
		{SenderID: 1, RecipientID: 2, Content: "hola"},
	}
	sender := &fakeSender{Err: errors.New("socket down")}
	svc := newChatFixture(t, sender, serverCopy)

	_, err := svc.Open(context.Background(), 2)
	require.NoError(t, err)
	_, _ = svc.Send("perdido")

	transcript, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, transcript, 2, "the fresh server copy wins over local echoes")
	assert.Equal(t, "buenas", transcript[0].Content)
}

func TestChatService_ConversationList(t *testing.T) {
	client := &fakeClient{
		ConversationsFn: func(context.Context) ([]models.Conversation, error) {
			return []models.Conversation{{Other: models.ChatUser{ID: 2, Username: "pedro"}, UnreadCount: 3}}, nil
		},
	}
	svc := NewChatService(client, &fakeSender{})

	conversations, err := svc.Conversations(context.Background())
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "pedro", conversations[0].Other.Username)
	assert.Equal(t, 3, conversations[0].UnreadCount)
}
