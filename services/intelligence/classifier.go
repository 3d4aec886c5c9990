package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"frontdesk/models"

	genai "github.com/google/generative-ai-go/genai"
)

// ErrClassificationFailed wraps every failure to obtain a well-formed intent
// from the language model, including malformed structured output.
var ErrClassificationFailed = errors.New("intent classification failed")

// Classifier derives a structured intent from a transcript.
type Classifier interface {
	Classify(ctx context.Context, transcript, contextPrompt string) (*models.Intent, error)
}

// generator is the slice of GeminiClient the classifier needs.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (string, error)
}

// GeminiClassifier implements Classifier with a fixed instruction prompt
// embedding the current date and hotel context.
type GeminiClassifier struct {
	gen       generator
	hotelName string
	now       func() time.Time
}

func NewGeminiClassifier(gen *GeminiClient, defaultHotelName string) *GeminiClassifier {
	return &GeminiClassifier{gen: gen, hotelName: defaultHotelName, now: time.Now}
}

const intentInstruction = `You are the voice assistant of the self-service kiosk at %s. Today's date is %s.
Classify the guest's utterance into exactly one action:
- "check_in": the guest wants to check in. Requires data.bookingId, the 4-digit booking code.
- "create_booking": the guest wants a new booking. Requires data.name; data.date is the requested date in YYYY-MM-DD, resolved against today's date ("today", "tomorrow").
- "cancel_booking": the guest wants to cancel a booking. Requires data.bookingId.
- "chat": anything else. Put a short, friendly reply (max 2 sentences) in "response".
Omit parameters the guest did not provide. Return ONLY a JSON object of the form
{"action": "...", "data": {"bookingId": "...", "name": "...", "date": "..."}, "response": "..."}.
%s
Guest said: %q`

func (c *GeminiClassifier) Classify(ctx context.Context, transcript, contextPrompt string) (*models.Intent, error) {
	prompt := fmt.Sprintf(intentInstruction,
		c.hotelName,
		c.now().Format("2006-01-02"),
		contextPrompt,
		transcript,
	)

	raw, err := c.gen.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassificationFailed, err)
	}
	return decodeIntent(raw)
}

// decodeIntent parses the model output into an Intent, surfacing malformed
// output as ErrClassificationFailed rather than a raw parse error.
func decodeIntent(raw string) (*models.Intent, error) {
	cleaned := strings.TrimSpace(raw)
	// Some models wrap JSON in markdown fences despite the response MIME type.
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var intent models.Intent
	if err := json.Unmarshal([]byte(cleaned), &intent); err != nil {
		return nil, fmt.Errorf("%w: malformed model output: %v", ErrClassificationFailed, err)
	}
	if !intent.Action.Known() {
		return nil, fmt.Errorf("%w: unrecognized action %q", ErrClassificationFailed, intent.Action)
	}
	return &intent, nil
}
