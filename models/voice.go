package models

// VoiceSessionData is the payload of a successful voice round trip.
// AudioURL is nil when speech synthesis failed; the text reply still stands.
type VoiceSessionData struct {
	Transcript   string  `json:"transcript"`
	TextResponse string  `json:"text_response"`
	AudioURL     *string `json:"audio_url"`
	Hotel        string  `json:"hotel,omitempty"`
}

// SessionContext is the short-lived conversational memory kept per kiosk
// between voice requests, fed back to the intent classifier as context.
type SessionContext struct {
	LastTranscript string `json:"lastTranscript"`
	LastReply      string `json:"lastReply"`
}
