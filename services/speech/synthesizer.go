package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// Synthesizer renders reply text into a retrievable audio artifact and
// returns its public URL.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

// GoogleSynthesizer implements Synthesizer over Google Cloud Text-to-Speech,
// writing MP3 files into the directory served under /audio.
type GoogleSynthesizer struct {
	client   *texttospeech.Client
	language string
	audioDir string
	baseURL  string
}

func NewGoogleSynthesizer(ctx context.Context, credentialsFile, language, audioDir, baseURL string) (*GoogleSynthesizer, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize text-to-speech client: %w", err)
	}
	if err := os.MkdirAll(audioDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &GoogleSynthesizer{
		client:   client,
		language: language,
		audioDir: audioDir,
		baseURL:  baseURL,
	}, nil
}

func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text string) (string, error) {
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: s.language,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := s.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech synthesis failed: %w", err)
	}

	fileName := fmt.Sprintf("response_%s.mp3", uuid.New().String())
	filePath := filepath.Join(s.audioDir, fileName)
	if err := os.WriteFile(filePath, resp.AudioContent, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audio artifact: %w", err)
	}

	return s.baseURL + "/audio/" + fileName, nil
}

func (s *GoogleSynthesizer) Close() error {
	return s.client.Close()
}
