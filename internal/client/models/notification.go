package models

import (
	"encoding/json"

	"github.com/dmitrijs2005/expotacna/internal/timex"
)

// NotificationType is the closed set of notification kinds the client
// understands. The wire format is a free string; anything outside the set
// decodes to NotificationUnknown so an unexpected type can never break a
// render, it just falls through to the default presentation.
type NotificationType int

const (
	NotificationUnknown NotificationType = iota
	NotificationNewFollower
	NotificationNewLike
	NotificationNewComment
	NotificationNewReply
	NotificationNewMessage
	NotificationReportReceived
)

var notificationTypeNames = map[NotificationType]string{
	NotificationNewFollower:    "new_follower",
	NotificationNewLike:        "new_like",
	NotificationNewComment:     "new_comment",
	NotificationNewReply:       "new_reply",
	NotificationNewMessage:     "new_message",
	NotificationReportReceived: "report_received",
}

func (t NotificationType) String() string {
	if s, ok := notificationTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

func (t NotificationType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *NotificationType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for k, v := range notificationTypeNames {
		if v == s {
			*t = k
			return nil
		}
	}
	*t = NotificationUnknown
	return nil
}

// Icon returns the marker rendered next to a notification. Every arm is
// covered; unknown types get a neutral dot.
func (t NotificationType) Icon() string {
	switch t {
	case NotificationNewFollower:
		return "[+]"
	case NotificationNewLike:
		return "[♥]"
	case NotificationNewComment, NotificationNewReply:
		return "[✎]"
	case NotificationNewMessage:
		return "[✉]"
	case NotificationReportReceived:
		return "[!]"
	default:
		return "[·]"
	}
}

// Notification is one entry in the notifications panel. Entries are fetched
// on demand when the panel opens and mutated (read/deleted) via explicit
// calls; the client never synthesizes them except for the unread badge.
type Notification struct {
	ID                  int              `json:"id"`
	Type                NotificationType `json:"type"`
	ActorUsername       string           `json:"actor_username"`
	ActorProfilePicture string           `json:"actor_profile_picture"`
	AlbumTitle          string           `json:"album_title"`
	RelatedEntityID     int              `json:"related_entity_id"`
	IsRead              bool             `json:"is_read"`
	CreatedAt           timex.Time       `json:"created_at"`
}

// UnreadCount returns how many notifications in the list are unread.
func UnreadCount(list []Notification) int {
	n := 0
	for _, item := range list {
		if !item.IsRead {
			n++
		}
	}
	return n
}
