package models

// IntentAction is the classified action behind a guest utterance.
type IntentAction string

const (
	ActionCheckIn       IntentAction = "check_in"
	ActionCreateBooking IntentAction = "create_booking"
	ActionCancelBooking IntentAction = "cancel_booking"
	ActionChat          IntentAction = "chat"
)

// Known reports whether the action is one the dispatcher understands.
func (a IntentAction) Known() bool {
	switch a {
	case ActionCheckIn, ActionCreateBooking, ActionCancelBooking, ActionChat:
		return true
	}
	return false
}

// IntentData carries the action-specific parameters extracted from the
// transcript. Fields are empty when the guest did not provide them.
type IntentData struct {
	BookingID string `json:"bookingId,omitempty"`
	Name      string `json:"name,omitempty"`
	Date      string `json:"date,omitempty"` // "YYYY-MM-DD"
}

// Intent is the structured result of classifying one transcript. It lives for
// exactly one request: built by the classifier, consumed by the dispatcher.
type Intent struct {
	Action IntentAction `json:"action"`
	Data   IntentData   `json:"data"`
	// Response is the pre-formed reply text, populated only for chat.
	Response string `json:"response,omitempty"`
}
