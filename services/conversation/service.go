// File: services/conversation/service.go
package conversation

import (
	"context"
	"fmt"
	"time"

	"bookline/models"
	"bookline/services/messaging"
	"bookline/utils"

	"go.uber.org/zap"
)

// SlotFinder supplies the date and time menus. Failures surface as empty
// menus, never as errors — the dialogue must not dead-end on an upstream
// hiccup.
type SlotFinder interface {
	FindAvailableDates(ctx context.Context, limit, horizonDays int) []models.DateOption
	FindAvailableTimes(ctx context.Context, date string) []models.TimeOption
}

// Handler processes one inbound event and reports the outcome tag for the
// webhook response.
type Handler interface {
	HandleEvent(ctx context.Context, ev Event) (string, error)
}

// Service drives the guided booking dialogue: it serializes per-contact
// session access, applies the transition, persists the session, and delivers
// the reply outside the critical section.
type Service struct {
	Store       Store
	Sender      messaging.Sender
	Finder      SlotFinder
	Clock       utils.Clock
	Logger      *zap.Logger
	IdleTimeout time.Duration
	DateLimit   int
	HorizonDays int

	locks *keyedMutex
}

// NewService wires the dialogue service.
func NewService(store Store, sender messaging.Sender, finder SlotFinder, clock utils.Clock,
	logger *zap.Logger, idleTimeout time.Duration, dateLimit, horizonDays int) *Service {
	return &Service{
		Store:       store,
		Sender:      sender,
		Finder:      finder,
		Clock:       clock,
		Logger:      logger,
		IdleTimeout: idleTimeout,
		DateLimit:   dateLimit,
		HorizonDays: horizonDays,
		locks:       newKeyedMutex(),
	}
}

// HandleEvent applies one inbound event to the contact's session and sends at
// most one outbound message. The session mutation commits even when the send
// later fails.
func (s *Service) HandleEvent(ctx context.Context, ev Event) (string, error) {
	if ev.Contact == "" {
		return "", fmt.Errorf("%w: missing contact id", ErrMalformedEvent)
	}

	sess, action, err := s.advance(ctx, ev)
	if err != nil {
		return "", err
	}

	// Delivery happens outside the per-contact lock: menu content may need an
	// upstream availability fetch and must not serialize other users.
	s.deliver(ctx, sess, action)
	return action.Outcome, nil
}

// advance holds the per-contact critical section: read session, decide, write
// session.
func (s *Service) advance(ctx context.Context, ev Event) (models.Session, Action, error) {
	unlock := s.locks.Lock(ev.Contact)
	defer unlock()

	sess, created, err := s.Store.GetOrCreate(ctx, ev.Contact)
	if err != nil {
		return models.Session{}, Action{}, err
	}

	if created {
		return *sess, Action{Reply: Reply{Kind: ReplyMainMenu}, Outcome: OutcomeHandled}, nil
	}

	if sess.Completed || s.expired(sess) {
		fresh, err := s.Store.Reset(ctx, ev.Contact)
		if err != nil {
			return models.Session{}, Action{}, err
		}
		return *fresh, Action{Reply: Reply{Kind: ReplyMainMenu}, Outcome: OutcomeReset}, nil
	}

	s.Store.Touch(sess)
	action := Transition(sess, ev)

	if sess.Completed {
		// Post-confirmation: the stored record becomes a fresh main-menu
		// session, the reply already points there.
		if _, err := s.Store.Reset(ctx, ev.Contact); err != nil {
			return models.Session{}, Action{}, err
		}
	} else if err := s.Store.Save(ctx, sess); err != nil {
		return models.Session{}, Action{}, err
	}
	return *sess, action, nil
}

func (s *Service) expired(sess *models.Session) bool {
	return s.Clock.Now().Sub(sess.LastInteractionAt) > s.IdleTimeout
}

// deliver materializes and sends the reply. Send failures are logged and
// swallowed; the session has already advanced and no automatic retry is
// attempted.
func (s *Service) deliver(ctx context.Context, sess models.Session, action Action) {
	var err error
	switch action.Reply.Kind {
	case ReplyNone:
		return
	case ReplyText:
		err = s.Sender.SendText(ctx, sess.Contact, action.Reply.Text)
	case ReplyMainMenu:
		err = s.Sender.SendList(ctx, sess.Contact, MainMenu())
	case ReplyServiceList:
		err = s.Sender.SendList(ctx, sess.Contact, ServiceList())
	case ReplyDateMenu:
		dates := s.Finder.FindAvailableDates(ctx, s.DateLimit, s.HorizonDays)
		err = s.Sender.SendList(ctx, sess.Contact, DateMenu(dates))
	case ReplyTimeMenu:
		times := s.Finder.FindAvailableTimes(ctx, sess.Date)
		err = s.Sender.SendList(ctx, sess.Contact, TimeMenu(times))
	case ReplyConfirmation:
		err = s.Sender.SendText(ctx, sess.Contact, ConfirmationText(&sess))
	}
	if err != nil {
		s.Logger.Warn("outbound send failed",
			zap.String("contact", sess.Contact), zap.Error(err))
	}
}
