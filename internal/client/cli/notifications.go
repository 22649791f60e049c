package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/client/render"
)

func (a *App) showNotifications(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	notifications, err := a.apiClient.Notifications(ctx)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		a.println("No tienes notificaciones.")
		return nil
	}

	if unread := models.UnreadCount(notifications); unread > 0 {
		a.println(fmt.Sprintf("Tienes %d notificaciones sin leer. Usa 'readall' para marcarlas.", unread))
	}
	now := time.Now()
	for _, n := range notifications {
		a.println(render.NotificationLine(n, now))
	}
	return nil
}

func (a *App) markNotificationsRead(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.apiClient.MarkNotificationsRead(ctx); err != nil {
		return err
	}
	a.toasts.Success("Notificaciones marcadas como leídas.")
	return nil
}
