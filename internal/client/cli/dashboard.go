package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/expotacna/internal/client/render"
)

// explore shows one page of the public album grid. Without an argument it
// reloads the page the user is on.
func (a *App) explore(ctx context.Context, args []string) error {
	page := a.currentPage
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			a.println("Uso: explore [página]")
			return nil
		}
		page = n
	}

	result, err := a.apiClient.Albums(ctx, page, a.config.PageSize)
	if err != nil {
		return err
	}
	a.currentPage = result.CurrentPage

	a.println(render.AlbumList(result.Albums))
	if strip := render.Pagination(result.CurrentPage, result.TotalPages); strip != "" {
		a.println("Páginas:", strip)
	}
	return nil
}

// savedAlbums lists the albums the user bookmarked.
func (a *App) savedAlbums(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	albums, err := a.apiClient.SavedAlbums(ctx)
	if err != nil {
		return err
	}
	a.println(render.AlbumList(albums))
	return nil
}
