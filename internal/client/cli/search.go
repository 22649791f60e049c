package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/expotacna/internal/client/render"
)

// search queries users and albums. The two-character minimum mirrors the
// server's own cutoff, so shorter queries never hit the network.
func (a *App) search(ctx context.Context, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if len([]rune(query)) < 2 {
		a.println("Escribe al menos 2 caracteres para buscar.")
		return nil
	}

	results, err := a.apiClient.Search(ctx, query)
	if err != nil {
		return err
	}
	a.println(render.SearchResults(results))
	return nil
}
