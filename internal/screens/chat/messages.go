package chat

import (
	tutor "github.com/omnitutor/omnitutor/internal/chat"
)

// channelEventMsg is one protocol event lifted off the session's event
// stream. ok is false once the stream has closed.
type channelEventMsg struct {
	ev tutor.Event
	ok bool
}
