package gateway

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestBuildAnthropicMessages(t *testing.T) {
	msgs := buildAnthropicMessages([]Message{
		{Role: RoleUser, Content: "What kind of rock is this?", ImageURL: "https://example.com/rock.jpg"},
		{Role: RoleAssistant, Content: "That looks like basalt."},
	})
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}

	blocks := msgs[0].Content
	if len(blocks) != 2 {
		t.Fatalf("image turn blocks = %d, want text + image", len(blocks))
	}
	if blocks[0].OfText == nil || blocks[0].OfText.Text != "What kind of rock is this?" {
		t.Errorf("text block = %+v", blocks[0])
	}
	img := blocks[1].OfImage
	if img == nil || img.Source.OfURL == nil || img.Source.OfURL.URL != "https://example.com/rock.jpg" {
		t.Errorf("image block = %+v", blocks[1])
	}

	if len(msgs[1].Content) != 1 || msgs[1].Content[0].OfText == nil {
		t.Errorf("text-only turn = %+v", msgs[1].Content)
	}
}

func TestBuildOpenAIMessages(t *testing.T) {
	msgs := buildOpenAIMessages(Request{
		System: "You are a tutor.",
		Messages: []Message{
			{Role: RoleUser, Content: "What kind of rock is this?", ImageURL: "https://example.com/rock.jpg"},
			{Role: RoleAssistant, Content: "That looks like basalt."},
		},
	})
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want system + 2 turns", len(msgs))
	}

	// Image turns use content parts; Content must stay empty since the SDK
	// treats the two fields as mutually exclusive.
	turn := msgs[1]
	if turn.Content != "" {
		t.Errorf("image turn Content = %q, want empty", turn.Content)
	}
	if len(turn.MultiContent) != 2 {
		t.Fatalf("image turn parts = %d, want text + image", len(turn.MultiContent))
	}
	if turn.MultiContent[0].Type != openai.ChatMessagePartTypeText {
		t.Errorf("first part = %+v", turn.MultiContent[0])
	}
	img := turn.MultiContent[1]
	if img.Type != openai.ChatMessagePartTypeImageURL || img.ImageURL == nil || img.ImageURL.URL != "https://example.com/rock.jpg" {
		t.Errorf("image part = %+v", img)
	}

	if msgs[2].Content == "" || msgs[2].MultiContent != nil {
		t.Errorf("text-only turn = %+v", msgs[2])
	}
}

func TestBuildGeminiContents(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "What kind of rock is this?", ImageURL: "https://example.com/rock.png"},
		{Role: RoleAssistant, Content: "That looks like basalt."},
	})
	if len(contents) != 2 {
		t.Fatalf("contents = %d, want 2", len(contents))
	}

	parts := contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("image turn parts = %d, want text + file", len(parts))
	}
	if parts[0].Text != "What kind of rock is this?" {
		t.Errorf("text part = %+v", parts[0])
	}
	if parts[1].FileData == nil || parts[1].FileData.FileURI != "https://example.com/rock.png" {
		t.Errorf("file part = %+v", parts[1])
	}
	if parts[1].FileData.MIMEType != "image/png" {
		t.Errorf("mime = %q", parts[1].FileData.MIMEType)
	}

	if contents[1].Role != "model" || len(contents[1].Parts) != 1 {
		t.Errorf("assistant turn = %+v", contents[1])
	}
}

func TestImageMIMEType(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/a.png", "image/png"},
		{"https://example.com/a.webp", "image/webp"},
		{"https://example.com/a.gif?width=200", "image/gif"},
		{"https://example.com/photo", "image/jpeg"},
	}
	for _, tt := range tests {
		if got := imageMIMEType(tt.url); got != tt.want {
			t.Errorf("imageMIMEType(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
