package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/timex"
)

// AlbumCard renders one grid entry of the explore view.
func AlbumCard(a models.AlbumSummary) string {
	return fmt.Sprintf("#%d  %s  por @%s  (%d vistas)",
		a.ID, Title(a.Title), Username(a.OwnerUsername), a.ViewsCount)
}

// AlbumList renders a grid of album cards, one per line.
func AlbumList(albums []models.AlbumSummary) string {
	if len(albums) == 0 {
		return "No hay álbumes para mostrar."
	}
	lines := make([]string, 0, len(albums))
	for _, a := range albums {
		lines = append(lines, AlbumCard(a))
	}
	return strings.Join(lines, "\n")
}

// AlbumDetails renders the header block of the album view.
func AlbumDetails(a *models.Album) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Title(a.Title))
	fmt.Fprintf(&b, "por @%s  ·  %d seguidores\n", Username(a.OwnerUsername), a.OwnerFollowersCount)
	if a.Description != "" {
		fmt.Fprintf(&b, "%s\n", Sanitize(a.Description))
	}
	if len(a.Tags) > 0 {
		tags := make([]string, 0, len(a.Tags))
		for _, tag := range a.Tags {
			tags = append(tags, "#"+Sanitize(tag))
		}
		fmt.Fprintf(&b, "%s\n", strings.Join(tags, " "))
	}
	fmt.Fprintf(&b, "%d fotos  %d videos  %d vistas\n", a.PhotosCount, a.VideosCount, a.ViewsCount)

	like := " "
	if a.IsLiked {
		like = "♥"
	}
	save := " "
	if a.IsSaved {
		save = "◆"
	}
	fmt.Fprintf(&b, "[%s] %d me gusta   [%s] %d guardados   %d comentarios",
		like, a.LikesCount, save, a.SavesCount, a.CommentsCount)
	return b.String()
}

// MediaLine renders one media row with its index inside the album.
func MediaLine(index int, m models.Media) string {
	return fmt.Sprintf("%2d. [%s] %s", index, Sanitize(m.FileType), Sanitize(m.FilePath))
}

// CommentLine renders one album comment.
func CommentLine(c models.Comment, now time.Time) string {
	return fmt.Sprintf("@%s (%s): %s",
		Username(c.AuthorUsername), timex.FormatTimeAgo(c.CreatedAt.Time, now), Sanitize(c.Text))
}

// NotificationLine renders one notifications-panel entry.
func NotificationLine(n models.Notification, now time.Time) string {
	unread := " "
	if !n.IsRead {
		unread = "*"
	}

	actor := Username(n.ActorUsername)
	var text string
	switch n.Type {
	case models.NotificationNewFollower:
		text = fmt.Sprintf("@%s ha comenzado a seguirte.", actor)
	case models.NotificationNewLike:
		text = fmt.Sprintf("A @%s le ha gustado tu álbum %s.", actor, Title(n.AlbumTitle))
	case models.NotificationNewComment:
		text = fmt.Sprintf("@%s ha comentado tu álbum %s.", actor, Title(n.AlbumTitle))
	case models.NotificationNewReply:
		text = fmt.Sprintf("@%s ha respondido a tu comentario.", actor)
	case models.NotificationNewMessage:
		text = fmt.Sprintf("@%s te ha enviado un mensaje.", actor)
	case models.NotificationReportReceived:
		text = "Se ha recibido un nuevo reporte."
	default:
		text = fmt.Sprintf("@%s ha hecho algo nuevo.", actor)
	}

	return fmt.Sprintf("%s %s %s (%s)", unread, n.Type.Icon(), text, timex.FormatTimeAgo(n.CreatedAt.Time, now))
}

// ConversationLine renders one chat list entry.
func ConversationLine(c models.Conversation) string {
	badge := ""
	if c.UnreadCount > 0 {
		badge = fmt.Sprintf("  (%d sin leer)", c.UnreadCount)
	}
	return fmt.Sprintf("@%s: %s%s", Username(c.Other.Username), Sanitize(c.LastMessage.Content), badge)
}

// TranscriptLine renders one chat message from the viewpoint of ownUserID.
// Own messages are marked with their delivery state.
func TranscriptLine(m models.Message, ownUserID int) string {
	if m.SenderID != ownUserID {
		return fmt.Sprintf("  ellos: %s", Sanitize(m.Content))
	}
	switch m.State {
	case models.MessagePending:
		return fmt.Sprintf("  tú: %s (enviando...)", Sanitize(m.Content))
	case models.MessageFailed:
		return fmt.Sprintf("  tú: %s (NO ENTREGADO)", Sanitize(m.Content))
	default:
		return fmt.Sprintf("  tú: %s", Sanitize(m.Content))
	}
}

// ProfileHeader renders the top block of a profile view.
func ProfileHeader(p *models.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%s\n", Username(p.Username))
	if p.Bio != "" {
		fmt.Fprintf(&b, "%s\n", Sanitize(p.Bio))
	}
	fmt.Fprintf(&b, "foto: %s\n", Avatar(p.ProfilePictureURL))
	fmt.Fprintf(&b, "%d seguidores  ·  %d seguidos", p.FollowersCount, p.FollowingCount)
	if p.IsFollowed {
		b.WriteString("  ·  lo sigues")
	}
	return b.String()
}

// AdminUserTable renders one of the admin panel tables. Presence shows as a
// dot in front of the username.
func AdminUserTable(users []models.AdminUser) string {
	if len(users) == 0 {
		return "No hay usuarios en esta categoría."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-5s %-22s %-30s\n", "ID", "Usuario", "Email")
	for _, u := range users {
		dot := "○"
		if u.IsActive {
			dot = "●"
		}
		fmt.Fprintf(&b, "%-5d %s %-20s %-30s\n", u.ID, dot, Username(u.Username), Sanitize(u.Email))
	}
	return strings.TrimRight(b.String(), "\n")
}

// SearchResults renders the grouped user and album matches.
func SearchResults(r *models.SearchResults) string {
	if len(r.Users) == 0 && len(r.Albums) == 0 {
		return "No se encontraron resultados."
	}
	var b strings.Builder
	if len(r.Users) > 0 {
		b.WriteString("Usuarios:\n")
		for _, u := range r.Users {
			fmt.Fprintf(&b, "  @%s\n", Username(u.Username))
		}
	}
	if len(r.Albums) > 0 {
		b.WriteString("Álbumes:\n")
		for _, a := range r.Albums {
			fmt.Fprintf(&b, "  #%d %s por @%s\n", a.ID, Title(a.Title), Username(a.OwnerUsername))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
