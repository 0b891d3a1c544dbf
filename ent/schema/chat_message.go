package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage is one persisted transcript entry. Append-only; the
// EventMixin sequence orders the transcript across the whole store.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Unique(),
		field.String("session_id").
			Immutable(),
		field.String("sender").
			Immutable().
			Comment("student or assistant"),
		field.String("content_type").
			Immutable().
			Comment("text or image"),
		field.Text("text").
			Default("").
			Immutable(),
		field.String("image_url").
			Default("").
			Immutable(),
		field.String("audio_path").
			Default("").
			Immutable().
			Comment("Local path of the synthesized reply audio, if any"),
		field.JSON("render_formats", []string{}).
			Optional().
			Immutable(),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "sequence"),
	}
}
