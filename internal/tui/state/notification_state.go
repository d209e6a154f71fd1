package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo is shown on the info colors
	LevelInfo NotificationLevel = iota
	// LevelError is shown on the error colors
	LevelError
)

// Notification is a single message shown in the status bar.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the messages shown until the next key press.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add adds a new notification with the specified level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// HasErrors returns true if any notification is an error.
func (s *NotificationState) HasErrors() bool {
	for _, n := range s.notifications {
		if n.Level == LevelError {
			return true
		}
	}
	return false
}
