package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/expotacna/internal/client/api"
	"github.com/dmitrijs2005/expotacna/internal/client/render"
	"github.com/dmitrijs2005/expotacna/internal/client/ui"
)

// showProfile renders a user's profile and albums. Without an argument it
// shows the logged-in user's own profile.
func (a *App) showProfile(ctx context.Context, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		if !a.requireLogin() {
			return nil
		}
		username = a.user.Username
	}

	profile, err := a.apiClient.Profile(ctx, username)
	if err != nil {
		return err
	}

	a.println(render.ProfileHeader(profile))
	if len(profile.Albums) > 0 {
		a.println("\nÁlbumes:")
		a.println(render.AlbumList(profile.Albums))
	}
	return nil
}

func (a *App) editBio(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	bio, err := GetMultiline(a.reader, "Nueva biografía", a.out)
	if err != nil {
		return err
	}

	if err := a.apiClient.UpdateBio(ctx, bio); err != nil {
		return err
	}
	a.toasts.Success("Perfil actualizado.")
	return nil
}

func (a *App) uploadProfileImage(ctx context.Context, args []string, banner bool) error {
	if !a.requireLogin() {
		return nil
	}
	kind, usage := api.ProfileImagePicture, "Uso: avatar <archivo>"
	if banner {
		kind, usage = api.ProfileImageBanner, "Uso: banner <archivo>"
	}
	if len(args) == 0 {
		return errors.New(usage)
	}

	path := args[0]
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("no se pudo abrir %s: %w", path, err)
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	url, err := a.apiClient.UploadProfileImage(ctx, kind, filepath.Base(path), contentType, file)
	if err != nil {
		return err
	}

	if banner {
		a.toasts.Success("Banner actualizado: " + render.Sanitize(url))
	} else {
		a.toasts.Success("Foto de perfil actualizada: " + render.Sanitize(url))
	}
	return nil
}

func (a *App) deleteProfileImage(ctx context.Context, banner bool) error {
	if !a.requireLogin() {
		return nil
	}
	kind, question := api.ProfileImagePicture, "¿Eliminar tu foto de perfil?"
	if banner {
		kind, question = api.ProfileImageBanner, "¿Eliminar tu banner?"
	}

	if !ui.Confirm(a.reader, a.out, question, false) {
		return nil
	}
	if err := a.apiClient.DeleteProfileImage(ctx, kind); err != nil {
		return err
	}
	a.toasts.Success("Imagen eliminada.")
	return nil
}
