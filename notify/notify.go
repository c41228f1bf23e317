// notify/notify.go

package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	logger "github.com/buildtrack/epc-console/logging"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one user-visible outcome. Every failure in the console is
// surfaced through one of these; silent failure is treated as a defect.
type Notification struct {
	ID      uuid.UUID
	Level   Level
	Message string
	Time    time.Time
}

// Notifier fans notifications out to subscribers (the CLI prints them, tests
// record them) and logs each one for developer diagnosis.
type Notifier struct {
	mu   sync.RWMutex
	subs []func(Notification)
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a sink for notifications.
func (n *Notifier) Subscribe(fn func(Notification)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

// Success reports a completed operation.
func (n *Notifier) Success(message string) {
	logger.Info("NOTIFICATION: success", zap.String("message", message))
	n.publish(Notification{
		ID:      uuid.New(),
		Level:   LevelSuccess,
		Message: message,
		Time:    time.Now(),
	})
}

// Error reports a failed operation. The message shown is the envelope's
// message when the server provided one, otherwise a generic fallback chosen
// by the caller.
func (n *Notifier) Error(message string) {
	logger.Error("NOTIFICATION: error", zap.String("message", message))
	n.publish(Notification{
		ID:      uuid.New(),
		Level:   LevelError,
		Message: message,
		Time:    time.Now(),
	})
}

func (n *Notifier) publish(notification Notification) {
	n.mu.RLock()
	subs := make([]func(Notification), len(n.subs))
	copy(subs, n.subs)
	n.mu.RUnlock()

	for _, fn := range subs {
		fn(notification)
	}
}
