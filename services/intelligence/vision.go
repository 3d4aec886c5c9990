package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"frontdesk/models"

	genai "github.com/google/generative-ai-go/genai"
)

// ErrExtractionFailed wraps every failure to read an ID card image.
var ErrExtractionFailed = errors.New("identity extraction failed")

// Extractor pulls structured identity fields out of an ID card photo.
type Extractor interface {
	ExtractIdentity(ctx context.Context, image []byte, format string) (*models.IdentityDocument, error)
}

// GeminiExtractor implements Extractor with a vision prompt.
type GeminiExtractor struct {
	gen generator
}

func NewGeminiExtractor(gen *GeminiClient) *GeminiExtractor {
	return &GeminiExtractor{gen: gen}
}

const extractInstruction = `Extract the "full_name" and "document_number" from this ID card. Return ONLY a valid JSON object with exactly those two keys.`

func (e *GeminiExtractor) ExtractIdentity(ctx context.Context, image []byte, format string) (*models.IdentityDocument, error) {
	if format == "" {
		format = "jpeg"
	}

	raw, err := e.gen.GenerateContent(ctx,
		genai.Text(extractInstruction),
		genai.ImageData(format, image),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	var doc models.IdentityDocument
	if err := json.Unmarshal([]byte(strings.TrimSpace(cleaned)), &doc); err != nil {
		return nil, fmt.Errorf("%w: malformed model output: %v", ErrExtractionFailed, err)
	}
	return &doc, nil
}
