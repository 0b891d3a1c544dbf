package voice

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OMNITUTOR_OPENAI_API_KEY", "sk-test")
	t.Setenv("OMNITUTOR_TTS_MODEL", "")
	t.Setenv("OMNITUTOR_TTS_VOICE", "")

	cfg := ConfigFromEnv("/tmp/data")
	if cfg.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
	if cfg.Model != defaultModel || cfg.Voice != defaultVoice {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Dir != filepath.Join("/tmp/data", "audio") {
		t.Errorf("dir = %q", cfg.Dir)
	}

	t.Setenv("OMNITUTOR_TTS_VOICE", "nova")
	cfg = ConfigFromEnv("/tmp/data")
	if cfg.Voice != "nova" {
		t.Errorf("voice override = %q", cfg.Voice)
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestWriteAudio(t *testing.T) {
	dir := t.TempDir()

	path, err := writeAudio(dir, "session-1", strings.NewReader("fake mp3 bytes"))
	if err != nil {
		t.Fatalf("writeAudio: %v", err)
	}

	if !strings.HasPrefix(path, filepath.Join(dir, "sessions", "session-1")) {
		t.Errorf("path = %q", path)
	}
	if !strings.HasSuffix(path, ".mp3") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "fake mp3 bytes" {
		t.Errorf("content = %q", data)
	}
}
