// Package voice renders assistant replies to speech. Synthesis is always
// best-effort from the caller's perspective: the chat channel drops audio
// on failure rather than failing the turn.
package voice

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel = "gpt-4o-mini-tts"
	defaultVoice = "alloy"
)

// Config configures the speech synthesizer.
type Config struct {
	APIKey string
	Model  string
	Voice  string

	// Dir is the root directory audio files are written under.
	Dir string
}

// ConfigFromEnv loads synthesis settings from OMNITUTOR_* variables. The
// API key is shared with the OpenAI gateway provider.
func ConfigFromEnv(dataDir string) Config {
	cfg := Config{
		APIKey: os.Getenv("OMNITUTOR_OPENAI_API_KEY"),
		Model:  os.Getenv("OMNITUTOR_TTS_MODEL"),
		Voice:  os.Getenv("OMNITUTOR_TTS_VOICE"),
		Dir:    filepath.Join(dataDir, "audio"),
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Voice == "" {
		cfg.Voice = defaultVoice
	}
	return cfg
}

// Synthesizer implements chat.Synthesizer over the OpenAI speech API,
// writing MP3 files under Dir.
type Synthesizer struct {
	client *openai.Client
	cfg    Config
}

// New creates a Synthesizer. Returns an error when no API key is set so
// callers can wire voice only when it is actually usable.
func New(cfg Config) (*Synthesizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required for speech synthesis")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Voice == "" {
		cfg.Voice = defaultVoice
	}
	return &Synthesizer{
		client: openai.NewClient(cfg.APIKey),
		cfg:    cfg,
	}, nil
}

// Synthesize renders text to an MP3 under Dir/sessions/<sessionID>/ and
// returns the file path.
func (s *Synthesizer) Synthesize(ctx context.Context, sessionID, text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("nothing to synthesize")
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.cfg.Model),
		Input:          text,
		Voice:          openai.SpeechVoice(s.cfg.Voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return "", fmt.Errorf("create speech: %w", err)
	}
	defer resp.Close()

	return writeAudio(s.cfg.Dir, sessionID, resp)
}

// writeAudio streams one audio payload to Dir/sessions/<sessionID>/<uuid>.mp3.
func writeAudio(dir, sessionID string, r io.Reader) (string, error) {
	sessionDir := filepath.Join(dir, "sessions", sessionID)
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	path := filepath.Join(sessionDir, uuid.New().String()+".mp3")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write audio: %w", err)
	}
	return path, nil
}
