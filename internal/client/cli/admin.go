package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/client/render"
	"github.com/dmitrijs2005/expotacna/internal/client/ui"
)

var errAdminOnly = errors.New("este comando es solo para administradores")

func (a *App) requireAdmin() error {
	if !a.isLoggedIn() || !a.user.IsAdmin {
		return errAdminOnly
	}
	return nil
}

// adminPanel shows the pending and approved user tables with realtime
// presence dots.
func (a *App) adminPanel(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}

	users, err := a.apiClient.AdminUsers(ctx)
	if err != nil {
		return err
	}
	a.applyPresence(users)

	var pending, approved []models.AdminUser
	for _, u := range users {
		if u.IsApproved {
			approved = append(approved, u)
		} else {
			pending = append(pending, u)
		}
	}

	a.println("Usuarios pendientes de aprobación:")
	a.println(render.AdminUserTable(pending))
	a.println("\nUsuarios aprobados:")
	a.println(render.AdminUserTable(approved))
	return nil
}

func (a *App) approveUser(ctx context.Context, args []string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	id, err := atoiArg(args, "Uso: approve <id usuario>")
	if err != nil {
		return err
	}

	if err := a.apiClient.ApproveUser(ctx, id); err != nil {
		return err
	}
	a.toasts.Success("Usuario aprobado.")
	return a.adminPanel(ctx)
}

func (a *App) deleteUser(ctx context.Context, args []string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	id, err := atoiArg(args, "Uso: deluser <id usuario>")
	if err != nil {
		return err
	}

	if !ui.Confirm(a.reader, a.out, "¿Eliminar este usuario y todo su contenido?", false) {
		return nil
	}
	if err := a.apiClient.DeleteUser(ctx, id); err != nil {
		return err
	}
	a.toasts.Success("Usuario eliminado.")
	return a.adminPanel(ctx)
}
