package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/expotacna/internal/client/services"
	"github.com/dmitrijs2005/expotacna/internal/common"
)

func (a *App) getStatus() string {
	s := "invitado"
	if a.user != nil {
		s = a.user.Username
		if a.user.IsAdmin {
			s += " admin"
		}
	}
	if a.currentMode() == ModeOffline {
		s += " sin conexión"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) printHelp() {
	if !a.isLoggedIn() {
		a.println("Comandos: explore [pág], album <id>, profile <usuario>, search <texto>, login, register, help, exit")
		return
	}
	a.println("Comandos: explore [pág], album <id>, profile <usuario>, search <texto>, saved,")
	a.println("  like/save/report <id álbum>, comment <id álbum>, follow <id usuario>,")
	a.println("  newalbum, editalbum/delalbum <id>, upload <id> <archivo>, delmedia <id>, cover <id álbum> <id media>, reorder <id álbum> <ids...>,")
	a.println("  bio, avatar/banner <archivo>, delavatar, delbanner,")
	a.println("  chats, chat <id usuario>, send <texto>, notifications, readall, logout, exit")
	if a.user.IsAdmin {
		a.println("  admin, approve <id>, deluser <id>")
	}
}

// Root runs the command loop. The stored session is restored first, so a
// restart lands the user where the last run left them; a malformed token is
// wiped and the loop starts as a guest.
func (a *App) Root(ctx context.Context) {
	a.println("Exponiendo Tacna (escribe 'help' para ver los comandos)")

	a.restoreSession(ctx)

	go a.startOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	for {
		a.toasts.Flush(a.out)
		fmt.Fprintf(a.out, "expotacna %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if err := a.dispatch(ctx, cmd, args); err != nil {
			if errors.Is(err, errQuit) {
				a.println("¡Hasta luego!")
				return
			}
			a.toasts.Error(err.Error())
		}
	}
}

var errQuit = errors.New("quit")

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.printHelp()
	case "exit", "quit":
		return errQuit

	case "login":
		return a.login(ctx)
	case "register":
		return a.register(ctx)
	case "logout":
		return a.logout(ctx)

	case "explore":
		return a.explore(ctx, args)
	case "album":
		return a.showAlbum(ctx, args)
	case "profile":
		return a.showProfile(ctx, args)
	case "search":
		return a.search(ctx, args)
	case "saved":
		return a.savedAlbums(ctx)

	case "like":
		return a.like(ctx, args)
	case "save":
		return a.saveAlbum(ctx, args)
	case "follow":
		return a.follow(ctx, args)
	case "comment":
		return a.comment(ctx, args)
	case "delcomment":
		return a.deleteComment(ctx, args)
	case "reportcomment":
		return a.reportComment(ctx, args)
	case "report":
		return a.reportAlbum(ctx, args)

	case "newalbum":
		return a.newAlbum(ctx)
	case "editalbum":
		return a.editAlbum(ctx, args)
	case "delalbum":
		return a.deleteAlbum(ctx, args)
	case "upload":
		return a.uploadMedia(ctx, args)
	case "delmedia":
		return a.deleteMedia(ctx, args)
	case "cover":
		return a.setCover(ctx, args)
	case "reorder":
		return a.reorderMedia(ctx, args)

	case "bio":
		return a.editBio(ctx)
	case "avatar":
		return a.uploadProfileImage(ctx, args, false)
	case "banner":
		return a.uploadProfileImage(ctx, args, true)
	case "delavatar":
		return a.deleteProfileImage(ctx, false)
	case "delbanner":
		return a.deleteProfileImage(ctx, true)

	case "chats":
		return a.listChats(ctx)
	case "chat":
		return a.openChat(ctx, args)
	case "send":
		return a.sendMessage(ctx, args)

	case "notifications":
		return a.showNotifications(ctx)
	case "readall":
		return a.markNotificationsRead(ctx)

	case "admin":
		return a.adminPanel(ctx)
	case "approve":
		return a.approveUser(ctx, args)
	case "deluser":
		return a.deleteUser(ctx, args)

	default:
		a.println("Comando desconocido:", cmd)
	}
	return nil
}

// restoreSession validates the stored token before the first prompt.
func (a *App) restoreSession(ctx context.Context) {
	user, err := a.authService.Restore(ctx)
	if err != nil {
		if errors.Is(err, common.ErrMalformedToken) {
			a.toasts.Error("La sesión guardada no era válida y se ha cerrado.")
		}
		return
	}
	a.startSession(ctx, user)
	a.println("Sesión restaurada como", user.Username)
}

// startSession binds the restored or freshly logged-in user to the chat
// service and the realtime channel.
func (a *App) startSession(ctx context.Context, user *services.CurrentUser) {
	a.user = user
	a.chatService.SetSession(int(user.ID), user.Token)
	if err := a.channel.Connect(ctx, user.Token, user.IsAdmin); err != nil {
		a.logger.Warn(ctx, "realtime channel unavailable", "error", err)
		a.toasts.Error("Sin conexión en tiempo real; el chat queda deshabilitado.")
	}
}

func atoiArg(args []string, usage string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New(usage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.New(usage)
	}
	return n, nil
}
