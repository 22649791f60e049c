package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dmitrijs2005/expotacna/internal/client/render"
	"github.com/dmitrijs2005/expotacna/internal/client/ui"
)

// showAlbum renders the album view: details, media, comments.
func (a *App) showAlbum(ctx context.Context, args []string) error {
	id, err := atoiArg(args, "Uso: album <id>")
	if err != nil {
		return err
	}

	album, err := a.apiClient.Album(ctx, id)
	if err != nil {
		return err
	}

	a.println(render.AlbumDetails(album))
	if len(album.Media) > 0 {
		a.println("\nContenido:")
		for i, m := range album.Media {
			a.println(render.MediaLine(i+1, m))
		}
	}
	if len(album.Comments) > 0 {
		a.println("\nComentarios:")
		now := time.Now()
		for _, c := range album.Comments {
			a.println(render.CommentLine(c, now))
		}
	}
	return nil
}

// like toggles the album like. The response's counter is authoritative, so
// whatever the server answers is what gets shown.
func (a *App) like(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := atoiArg(args, "Uso: like <id álbum>")
	if err != nil {
		return err
	}

	liked, count, err := a.apiClient.ToggleLike(ctx, id)
	if err != nil {
		return err
	}
	if liked {
		a.toasts.Success(fmt.Sprintf("Te gusta este álbum (%d me gusta).", count))
	} else {
		a.toasts.Success(fmt.Sprintf("Ya no te gusta este álbum (%d me gusta).", count))
	}
	return nil
}

func (a *App) saveAlbum(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := atoiArg(args, "Uso: save <id álbum>")
	if err != nil {
		return err
	}

	saved, count, err := a.apiClient.ToggleSave(ctx, id)
	if err != nil {
		return err
	}
	if saved {
		a.toasts.Success(fmt.Sprintf("Álbum guardado (%d guardados).", count))
	} else {
		a.toasts.Success(fmt.Sprintf("Álbum quitado de guardados (%d guardados).", count))
	}
	return nil
}

func (a *App) follow(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := atoiArg(args, "Uso: follow <id usuario>")
	if err != nil {
		return err
	}

	followed, err := a.apiClient.ToggleFollow(ctx, id)
	if err != nil {
		return err
	}
	if followed {
		a.toasts.Success("Ahora sigues a este usuario.")
	} else {
		a.toasts.Success("Has dejado de seguir a este usuario.")
	}
	return nil
}

func (a *App) comment(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := atoiArg(args, "Uso: comment <id álbum>")
	if err != nil {
		return err
	}

	text, err := getSimpleText(a.reader, "Comentario", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		a.println("El comentario no puede estar vacío.")
		return nil
	}

	if err := a.apiClient.AddComment(ctx, id, text); err != nil {
		return err
	}
	a.toasts.Success("Comentario añadido.")
	return a.showAlbum(ctx, args[:1])
}

func (a *App) deleteComment(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := atoiArg(args, "Uso: delcomment <id comentario>")
	if err != nil {
		return err
	}

	if !ui.Confirm(a.reader, a.out, "¿Eliminar este comentario?", false) {
		return nil
	}
	if err := a.apiClient.DeleteComment(ctx, id); err != nil {
		return err
	}
	a.toasts.Success("Comentario eliminado.")
	return nil
}

func (a *App) reportComment(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := atoiArg(args, "Uso: reportcomment <id comentario>")
	if err != nil {
		return err
	}

	if !ui.Confirm(a.reader, a.out, "¿Reportar este comentario por contenido inapropiado?", false) {
		return nil
	}
	if err := a.apiClient.ReportComment(ctx, id, "Contenido inapropiado"); err != nil {
		return err
	}
	a.toasts.Success("Comentario reportado. Gracias por tu ayuda.")
	return nil
}

func (a *App) reportAlbum(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := atoiArg(args, "Uso: report <id álbum>")
	if err != nil {
		return err
	}

	reason, err := getSimpleText(a.reader, "Razón del reporte", a.out)
	if err != nil {
		return err
	}
	if reason == "" {
		a.println("Debes indicar una razón para el reporte.")
		return nil
	}
	description, err := getSimpleText(a.reader, "Descripción (opcional)", a.out)
	if err != nil {
		return err
	}

	if err := a.apiClient.ReportAlbum(ctx, id, reason, description); err != nil {
		return err
	}
	a.toasts.Success("Álbum reportado. Gracias por tu ayuda.")
	return nil
}

func (a *App) newAlbum(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	title, err := getSimpleText(a.reader, "Título", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		a.println("El título es obligatorio.")
		return nil
	}
	description, err := GetMultiline(a.reader, "Descripción", a.out)
	if err != nil {
		return err
	}

	id, err := a.apiClient.CreateAlbum(ctx, title, description)
	if err != nil {
		return err
	}
	a.toasts.Success(fmt.Sprintf("Álbum creado (#%d). Usa 'upload %d <archivo>' para añadir contenido.", id, id))
	return nil
}

func (a *App) editAlbum(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := atoiArg(args, "Uso: editalbum <id>")
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Nuevo título", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Nueva descripción", a.out)
	if err != nil {
		return err
	}

	if err := a.apiClient.UpdateAlbum(ctx, id, title, description); err != nil {
		return err
	}
	a.toasts.Success("Álbum actualizado.")
	return a.showAlbum(ctx, args[:1])
}

func (a *App) deleteAlbum(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := atoiArg(args, "Uso: delalbum <id>")
	if err != nil {
		return err
	}

	if !ui.Confirm(a.reader, a.out, "¿Eliminar este álbum y todo su contenido?", false) {
		return nil
	}
	if err := a.apiClient.DeleteAlbum(ctx, id); err != nil {
		return err
	}
	a.toasts.Success("Álbum eliminado.")
	return nil
}

// uploadMedia pushes one local file into an album.
func (a *App) uploadMedia(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) < 2 {
		return errors.New("Uso: upload <id álbum> <archivo>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("Uso: upload <id álbum> <archivo>")
	}

	path := args[1]
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("no se pudo abrir %s: %w", path, err)
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if err := a.apiClient.UploadMedia(ctx, id, filepath.Base(path), contentType, file); err != nil {
		return err
	}
	a.toasts.Success("Archivo subido exitosamente.")
	return nil
}

func (a *App) deleteMedia(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := atoiArg(args, "Uso: delmedia <id media>")
	if err != nil {
		return err
	}

	if !ui.Confirm(a.reader, a.out, "¿Eliminar este archivo del álbum?", false) {
		return nil
	}
	if err := a.apiClient.DeleteMedia(ctx, id); err != nil {
		return err
	}
	a.toasts.Success("Archivo multimedia eliminado.")
	return nil
}

func (a *App) setCover(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) < 2 {
		return errors.New("Uso: cover <id álbum> <id media>")
	}
	albumID, err1 := strconv.Atoi(args[0])
	mediaID, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return errors.New("Uso: cover <id álbum> <id media>")
	}

	if err := a.apiClient.SetCover(ctx, albumID, mediaID); err != nil {
		return err
	}
	a.toasts.Success("Portada actualizada.")
	return nil
}

func (a *App) reorderMedia(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) < 2 {
		return errors.New("Uso: reorder <id álbum> <ids de media en orden>")
	}
	albumID, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("Uso: reorder <id álbum> <ids de media en orden>")
	}

	ids := make([]int, 0, len(args)-1)
	for _, raw := range args[1:] {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return errors.New("Uso: reorder <id álbum> <ids de media en orden>")
		}
		ids = append(ids, id)
	}

	if err := a.apiClient.ReorderMedia(ctx, albumID, ids); err != nil {
		return err
	}
	a.toasts.Success("Orden del contenido actualizado.")
	return nil
}
