package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/client/render"
	"github.com/dmitrijs2005/expotacna/internal/timex"
)

func (a *App) listChats(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	conversations, err := a.chatService.Conversations(ctx)
	if err != nil {
		return err
	}
	if len(conversations) == 0 {
		a.println("No tienes conversaciones.")
		return nil
	}
	for _, c := range conversations {
		a.println(render.ConversationLine(c))
		a.println("  (usa 'chat", c.Other.ID, "' para abrirla)")
	}
	return nil
}

// openChat loads the transcript with one user and remembers the target so
// 'send' has somewhere to go. The deep-link survives restarts.
func (a *App) openChat(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := atoiArg(args, "Uso: chat <id usuario>")
	if err != nil {
		return err
	}

	messages, err := a.chatService.Open(ctx, id)
	if err != nil {
		return err
	}

	if err := a.session.SetChatTarget(ctx, models.ChatUser{ID: id}); err != nil {
		a.logger.Warn(ctx, "failed to persist chat target", "error", err)
	}

	if len(messages) == 0 {
		a.println("Sin mensajes todavía. Escribe 'send <texto>' para empezar.")
		return nil
	}
	a.printTranscript(messages)
	return nil
}

func (a *App) printTranscript(messages []models.Message) {
	now := time.Now()
	var lastDay string
	for _, m := range messages {
		day := m.CreatedAt.Format("2006-01-02")
		if day != lastDay && !m.CreatedAt.IsZero() {
			a.println("--", day, "--")
			lastDay = day
		}
		line := render.TranscriptLine(m, int(a.user.ID))
		if !m.CreatedAt.IsZero() {
			line += "  (" + timex.FormatTimeAgo(m.CreatedAt.Time, now) + ")"
		}
		a.println(line)
	}
}

func (a *App) sendMessage(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) == 0 {
		return errors.New("Uso: send <texto>")
	}

	if a.chatService.Active() == 0 {
		// A restart keeps the persisted deep-link but loses the open
		// transcript; reopen it transparently.
		target, err := a.session.ChatTarget(ctx)
		if err != nil {
			return err
		}
		if target == nil {
			a.println("Abre primero una conversación con 'chat <id usuario>'.")
			return nil
		}
		if _, err := a.chatService.Open(ctx, target.ID); err != nil {
			return err
		}
	}

	content := strings.Join(args, " ")
	if _, err := a.chatService.Send(content); err != nil {
		a.toasts.Error("El mensaje no se pudo entregar; aparece marcado en la conversación.")
	}

	a.printTranscript(a.chatService.Transcript())
	return nil
}
