// File: services/conversation/machine.go
package conversation

import "bookline/models"

// EventKind distinguishes the two inbound message shapes the dialogue reacts
// to.
type EventKind string

const (
	// EventSelection is an interactive list reply carrying an option id.
	EventSelection EventKind = "selection"
	// EventText is a free-text message.
	EventText EventKind = "text"
)

// Event is one inbound user message, already extracted from the provider
// envelope.
type Event struct {
	Contact   string
	Kind      EventKind
	Selection string
	Text      string
}

// ReplyKind names the outbound message a transition asks for. Menu replies are
// descriptors only; the service materializes them (possibly via the slot
// finder) outside the per-contact critical section.
type ReplyKind int

const (
	ReplyNone ReplyKind = iota
	ReplyText
	ReplyMainMenu
	ReplyServiceList
	ReplyDateMenu
	ReplyTimeMenu
	ReplyConfirmation
)

// Reply describes the at-most-one outbound message for a processed event.
type Reply struct {
	Kind ReplyKind
	Text string
}

// Outcome tags reported back through the webhook response.
const (
	OutcomeHandled = "handled"
	OutcomeIgnored = "ignored"
	OutcomeReset   = "reset"
)

// Action is the result of one transition: what to send and how to report it.
type Action struct {
	Reply   Reply
	Outcome string
}

// Main menu option ids.
const (
	OptionBook     = "d1"
	OptionHours    = "d2"
	OptionLanguage = "d3"
)

// Transition applies one inbound event to a session and returns the reply to
// send. It performs no I/O; the caller owns persistence and delivery.
// Unrecognized input at any step re-sends that step's prompt without touching
// the session.
func Transition(sess *models.Session, ev Event) Action {
	switch sess.Step {
	case models.StepMainMenu:
		if ev.Kind == EventSelection {
			switch ev.Selection {
			case OptionBook:
				sess.Step = models.StepChooseService
				return Action{Reply: Reply{Kind: ReplyServiceList}, Outcome: OutcomeHandled}
			case OptionHours:
				return Action{Reply: Reply{Kind: ReplyText, Text: workingHoursText}, Outcome: OutcomeHandled}
			case OptionLanguage:
				return Action{Reply: Reply{Kind: ReplyText, Text: languageChangedText}, Outcome: OutcomeHandled}
			}
		}
		return Action{Reply: Reply{Kind: ReplyMainMenu}, Outcome: OutcomeIgnored}

	case models.StepChooseService:
		if ev.Kind == EventSelection {
			sess.Service = ServiceLabel(ev.Selection)
			sess.Step = models.StepAskName
			return Action{Reply: Reply{Kind: ReplyText, Text: askNamePrompt}, Outcome: OutcomeHandled}
		}
		return Action{Reply: Reply{Kind: ReplyServiceList}, Outcome: OutcomeIgnored}

	case models.StepAskName:
		if ev.Kind == EventText {
			sess.Name = ev.Text
			sess.Step = models.StepChooseDate
			return Action{Reply: Reply{Kind: ReplyDateMenu}, Outcome: OutcomeHandled}
		}
		return Action{Reply: Reply{Kind: ReplyText, Text: askNamePrompt}, Outcome: OutcomeIgnored}

	case models.StepChooseDate:
		if ev.Kind == EventSelection {
			sess.Date = ev.Selection
			sess.Step = models.StepChooseTime
			return Action{Reply: Reply{Kind: ReplyTimeMenu}, Outcome: OutcomeHandled}
		}
		return Action{Reply: Reply{Kind: ReplyDateMenu}, Outcome: OutcomeIgnored}

	case models.StepChooseTime:
		if ev.Kind == EventSelection {
			sess.Time = ev.Selection
			sess.Step = models.StepConfirm
			return Action{Reply: Reply{Kind: ReplyConfirmation}, Outcome: OutcomeHandled}
		}
		return Action{Reply: Reply{Kind: ReplyTimeMenu}, Outcome: OutcomeIgnored}

	case models.StepConfirm:
		// The booking flow is done; whatever arrives next starts the contact
		// over at the main menu.
		sess.Completed = true
		sess.Step = models.StepCompleted
		return Action{Reply: Reply{Kind: ReplyMainMenu}, Outcome: OutcomeReset}
	}

	// StepCompleted sessions are reset before they reach Transition.
	sess.Completed = true
	return Action{Reply: Reply{Kind: ReplyMainMenu}, Outcome: OutcomeReset}
}
