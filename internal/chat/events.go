package chat

// EventType tags one protocol event on a session channel.
type EventType string

const (
	// EventHistory carries the full transcript. Always the first event a
	// channel emits, so a reconnecting client can rebuild its view before
	// any live traffic arrives.
	EventHistory EventType = "history"

	// EventStudentMessage confirms a student turn was persisted.
	EventStudentMessage EventType = "student_message"

	// EventAssistantMessage carries the assistant reply.
	EventAssistantMessage EventType = "assistant_message"

	// EventError reports a failed turn. The student message stays in the
	// transcript; the channel remains open for retry.
	EventError EventType = "error"
)

// Event is one protocol event delivered on a channel's event stream.
type Event struct {
	Type EventType

	// Messages holds the transcript for history events.
	Messages []*Message

	// Message holds the persisted message for student/assistant events.
	Message *Message

	// Err holds the failure for error events.
	Err error
}
