package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"frontdesk/models"
	"frontdesk/services/concierge"
	"frontdesk/services/device"
	"frontdesk/services/intelligence"
	"frontdesk/services/speech"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxUploadSize = 5 * 1024 * 1024 // 5MB (conservative buffer)

// ContextStore is the slice of the conversation store the voice handler uses.
type ContextStore interface {
	Get(ctx context.Context, serial string) (*models.SessionContext, error)
	Set(ctx context.Context, serial string, sc *models.SessionContext) error
}

// VoiceHandler sequences one voice round trip: authorize → transcribe →
// classify → dispatch → synthesize.
type VoiceHandler struct {
	Directory        device.Directory
	Transcriber      speech.Transcriber
	Classifier       intelligence.Classifier
	Dispatcher       concierge.Dispatcher
	Synthesizer      speech.Synthesizer
	Context          ContextStore
	DefaultHotelName string
	Logger           *zap.Logger
}

func NewVoiceHandler(
	directory device.Directory,
	transcriber speech.Transcriber,
	classifier intelligence.Classifier,
	dispatcher concierge.Dispatcher,
	synthesizer speech.Synthesizer,
	contextStore ContextStore,
	defaultHotelName string,
	logger *zap.Logger,
) *VoiceHandler {
	return &VoiceHandler{
		Directory:        directory,
		Transcriber:      transcriber,
		Classifier:       classifier,
		Dispatcher:       dispatcher,
		Synthesizer:      synthesizer,
		Context:          contextStore,
		DefaultHotelName: defaultHotelName,
		Logger:           logger,
	}
}

// ProcessVoice handles POST /api/v1/voice.
func (h *VoiceHandler) ProcessVoice(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Security gate: the kiosk must identify itself.
	serial := c.PostForm("serial_number")
	if serial == "" {
		utils.JSONError(c, http.StatusBadRequest, "serial_number is required", "")
		return
	}
	auth := h.Directory.Authorize(ctx, serial)
	if !auth.Authorized {
		utils.JSONError(c, http.StatusForbidden, auth.Reason, "")
		return
	}

	// 2. Validate and stage the upload.
	file, _, err := c.Request.FormFile("audio")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "No audio file received", err.Error())
		return
	}
	defer file.Close()

	tempInput, err := os.CreateTemp("", "kiosk-upload-*.wav")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal Processing Error", err.Error())
		return
	}
	// The temporary upload is removed on every exit path.
	defer os.Remove(tempInput.Name())
	defer tempInput.Close()

	// Read one byte past the limit so an oversized clip is rejected rather
	// than silently truncated and partially transcribed.
	written, err := io.Copy(tempInput, io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal Processing Error", err.Error())
		return
	}
	if written > maxUploadSize {
		utils.JSONError(c, http.StatusBadRequest, "Audio file too large", "")
		return
	}
	audioData, err := os.ReadFile(tempInput.Name())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal Processing Error", err.Error())
		return
	}

	// 3. Speech to text.
	transcript, err := h.Transcriber.Transcribe(ctx, audioData)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal Processing Error", err.Error())
		return
	}
	h.Logger.Info("guest said", zap.String("serial", serial), zap.String("transcript", transcript))

	// 4. Classify intent, with hotel and conversational context.
	hotelName := auth.Device.HotelName()
	if hotelName == "" {
		hotelName = h.DefaultHotelName
	}
	contextPrompt := fmt.Sprintf("The hotel is %s.", hotelName)
	if h.Context != nil {
		if sc, err := h.Context.Get(ctx, serial); err != nil {
			h.Logger.Debug("context load failed", zap.Error(err))
		} else if sc != nil && sc.LastTranscript != "" {
			contextPrompt += fmt.Sprintf(" Previous exchange — guest: %q, assistant: %q.", sc.LastTranscript, sc.LastReply)
		}
	}

	intent, err := h.Classifier.Classify(ctx, transcript, contextPrompt)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal Processing Error", err.Error())
		return
	}

	// 5. Dispatch against the booking store.
	reply, err := h.Dispatcher.Dispatch(ctx, intent, auth.Device.HotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal Processing Error", err.Error())
		return
	}
	h.Logger.Info("assistant replied", zap.String("serial", serial), zap.String("reply", reply))

	// 6. Speech synthesis is best-effort: a failure degrades to a null
	// audio_url, never to a failed request.
	var audioURL *string
	if url, err := h.Synthesizer.Synthesize(ctx, reply); err != nil {
		h.Logger.Warn("speech synthesis failed", zap.Error(err))
	} else {
		audioURL = &url
	}

	if h.Context != nil {
		if err := h.Context.Set(ctx, serial, &models.SessionContext{
			LastTranscript: transcript,
			LastReply:      reply,
		}); err != nil {
			h.Logger.Debug("context save failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": models.VoiceSessionData{
			Transcript:   transcript,
			TextResponse: reply,
			AudioURL:     audioURL,
			Hotel:        hotelName,
		},
	})
}
