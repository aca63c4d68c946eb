package domain

// NotificationBadge unread-count badge kept in sync with the remote
// authority for the lifetime of the viewer's active session
type NotificationBadge struct {
	UnreadCount int `json:"unread_count"`
}
