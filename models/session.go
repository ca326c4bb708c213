package models

import "time"

// Step identifies where a contact is in the guided booking dialogue.
type Step string

const (
	StepMainMenu      Step = "main_menu"
	StepChooseService Step = "choose_service"
	StepAskName       Step = "ask_name"
	StepChooseDate    Step = "choose_date"
	StepChooseTime    Step = "choose_time"
	StepConfirm       Step = "confirm"
	StepCompleted     Step = "completed"
)

// Session holds the dialogue state for one contact. Fields fill in
// progressively as the conversation advances; the conversation service is the
// only writer.
type Session struct {
	Contact           string    `json:"contact"`
	Step              Step      `json:"step"`
	Service           string    `json:"service,omitempty"`
	Name              string    `json:"name,omitempty"`
	Date              string    `json:"date,omitempty"`
	Time              string    `json:"time,omitempty"`
	LastInteractionAt time.Time `json:"lastInteractionAt"`
	Completed         bool      `json:"completed"`
}

// NewSession returns a fresh session at the main menu for the given contact.
func NewSession(contact string, now time.Time) *Session {
	return &Session{
		Contact:           contact,
		Step:              StepMainMenu,
		LastInteractionAt: now,
	}
}
