package cli

import (
	"fmt"

	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/client/render"
)

// onNewMessage runs on the realtime read loop. Messages for the open
// conversation fold into the transcript; a toast above the next prompt
// announces everything except the echo of an own outgoing message.
func (a *App) onNewMessage(msg models.Message) {
	folded := a.chatService.HandleIncoming(msg)
	if a.chatService.Owns(msg) {
		return
	}
	if folded {
		a.toasts.Success(fmt.Sprintf("Mensaje nuevo en la conversación: %s", render.Sanitize(msg.Content)))
		return
	}
	a.toasts.Success(fmt.Sprintf("Nuevo mensaje: %s", render.Sanitize(msg.Content)))
}

func (a *App) onUserStatusChanged(userID int, isActive bool) {
	a.presenceMu.Lock()
	a.presence[userID] = isActive
	a.presenceMu.Unlock()
}

func (a *App) onChannelLost(err error) {
	a.toasts.Error("Se perdió la conexión en tiempo real.")
}

func (a *App) isOnline(userID int) bool {
	a.presenceMu.Lock()
	defer a.presenceMu.Unlock()
	return a.presence[userID]
}

// applyPresence overlays the realtime flags on a fetched admin user list.
func (a *App) applyPresence(users []models.AdminUser) {
	a.presenceMu.Lock()
	defer a.presenceMu.Unlock()
	for i := range users {
		if active, ok := a.presence[users[i].ID]; ok {
			users[i].IsActive = active
		}
	}
}
