package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/expotacna/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// register prompts for the new account fields. Accounts start unapproved,
// so success only means the request went in.
func (a *App) register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Nombre de usuario", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, username, email, string(password)); err != nil {
		return err
	}

	a.toasts.Success("Cuenta creada. Un administrador debe aprobarla antes de que puedas entrar.")
	return nil
}

// login asks for credentials, persists the session and brings the realtime
// channel up.
func (a *App) login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Nombre de usuario", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.toasts.Error("Credenciales incorrectas o cuenta sin aprobar.")
			return nil
		}
		return err
	}

	a.startSession(ctx, user)
	a.toasts.Success("Bienvenido, " + user.Username)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.channel.Close()
	a.user = nil
	a.toasts.Success("Sesión cerrada.")
	return nil
}
