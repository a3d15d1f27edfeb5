package notify

import "go.uber.org/zap"

// Message is a short user-facing confirmation, e.g. "Item added to cart".
type Message struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Notifier delivers fire-and-forget confirmation messages. There is no
// acknowledgment and no delivery guarantee.
type Notifier interface {
	Push(msg Message)
}

type logNotifier struct{ log *zap.Logger }

// NewLogNotifier returns a Notifier that emits each message as a structured
// log line.
func NewLogNotifier(log *zap.Logger) Notifier { return &logNotifier{log: log} }

func (n *logNotifier) Push(msg Message) {
	n.log.Info("notification",
		zap.String("title", msg.Title),
		zap.String("description", msg.Description))
}

type nopNotifier struct{}

// NewNop returns a Notifier that discards every message.
func NewNop() Notifier { return nopNotifier{} }

func (nopNotifier) Push(Message) {}
