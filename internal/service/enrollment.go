package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/Theluxegrp/Theluxegrp/internal/phone"
	"github.com/Theluxegrp/Theluxegrp/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type codeGenerator interface {
	Generate() string
}

type EnrollmentConfig struct {
	// ResendCooldown is the number of countdown seconds between resends.
	ResendCooldown int
	// CooldownTick is the countdown step; one second in production.
	CooldownTick time.Duration
	// SessionTTL is how long an idle session survives before the reaper
	// closes it.
	SessionTTL time.Duration
}

// enrollmentSession is the server-side state of one guest-list sign-up flow.
// All fields are guarded by EnrollmentService.mu.
type enrollmentSession struct {
	id        string
	eventID   string
	eventName string

	state   domain.EnrollmentState
	entryID string
	phone   string
	warning string

	cooldown       int
	cooldownGen    uint64
	cancelCooldown context.CancelFunc

	closed     bool
	lastActive time.Time
}

// EnrollmentService drives the form -> verification -> success sign-up flow:
// it owns the in-memory sessions, the resend cooldown countdowns, and the
// guest_list_entries rows they produce.
type EnrollmentService struct {
	entries ports.GuestListRepo
	events  ports.EventRepo
	sms     ports.CodeSender
	codes   codeGenerator
	logger  logger.Logger
	cfg     EnrollmentConfig

	mu       sync.Mutex
	sessions map[string]*enrollmentSession
}

func NewEnrollmentService(
	entries ports.GuestListRepo,
	events ports.EventRepo,
	sms ports.CodeSender,
	codes codeGenerator,
	cfg EnrollmentConfig,
	logger logger.Logger,
) *EnrollmentService {
	if cfg.ResendCooldown <= 0 {
		cfg.ResendCooldown = 30
	}
	if cfg.CooldownTick <= 0 {
		cfg.CooldownTick = time.Second
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 15 * time.Minute
	}

	return &EnrollmentService{
		entries:  entries,
		events:   events,
		sms:      sms,
		codes:    codes,
		logger:   logger,
		cfg:      cfg,
		sessions: make(map[string]*enrollmentSession),
	}
}

// Start opens a new sign-up session for an event. The same call backs the
// ?guestlist=<event_id> share link.
func (s *EnrollmentService) Start(ctx context.Context, eventID string) (*domain.Enrollment, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}

	sess := &enrollmentSession{
		id:         uuid.New().String(),
		eventID:    event.ID,
		eventName:  event.Name,
		state:      domain.EnrollmentStateForm,
		lastActive: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	snap := snapshot(sess)
	s.mu.Unlock()

	return snap, nil
}

// Submit validates the form, creates the guest list entry and sends the
// verification code. A gateway transport failure keeps the session in the form
// state (the entry stays behind; the visitor resubmits). A provider-level
// refusal still advances to verification with a warning.
// Submit has no state guard: submitting again from verification creates a
// fresh entry and points the session at it, same as Back-then-resubmit. The
// abandoned entry stays unconfirmed until an admin deletes it.
func (s *EnrollmentService) Submit(ctx context.Context, sessionID string, input domain.EnrollmentSubmitInput) (*domain.Enrollment, error) {
	eventID, eventName, err := s.sessionInfo(sessionID)
	if err != nil {
		return nil, err
	}

	normalized, err := phone.Normalize(input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	code := s.codes.Generate()
	entry := &domain.GuestListEntry{
		ID:               uuid.New().String(),
		EventID:          eventID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		PhoneNumber:      normalized,
		ConfirmationCode: code,
		IsConfirmed:      false,
		CreatedAt:        time.Now().UTC(),
	}
	if err = s.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create guest list entry: %w", err)
	}

	result, err := s.sms.SendCode(ctx, normalized, code, eventName)
	if err != nil {
		s.logger.Error("verification SMS failed",
			logger.String("session_id", sessionID),
			logger.String("entry_id", entry.ID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("send verification code: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.closed {
		// The visitor left while the SMS call was in flight; drop the result.
		return nil, domain.ErrSessionNotFound
	}

	sess.entryID = entry.ID
	sess.phone = normalized
	sess.state = domain.EnrollmentStateVerification
	sess.warning = ""
	if !result.Success {
		sess.warning = "SMS not sent: " + result.Message
		s.logger.Warn("verification SMS declined by provider",
			logger.String("session_id", sessionID),
			logger.String("message", result.Message),
		)
	}
	sess.lastActive = time.Now()
	s.startCooldownLocked(sess)

	return snapshot(sess), nil
}

// Resend rotates the confirmation code and sends it again. While the cooldown
// is above zero the call is a no-op; the old code dies the moment the row is
// updated, with no grace window.
func (s *EnrollmentService) Resend(ctx context.Context, sessionID string) (*domain.Enrollment, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	if sess.cooldown > 0 {
		snap := snapshot(sess)
		s.mu.Unlock()
		return snap, nil
	}
	entryID, phoneNumber, eventName := sess.entryID, sess.phone, sess.eventName
	sess.lastActive = time.Now()
	s.mu.Unlock()

	if entryID == "" {
		return nil, domain.ErrEntryNotFound
	}

	code := s.codes.Generate()
	if err := s.entries.UpdateCode(ctx, entryID, code); err != nil {
		return nil, fmt.Errorf("rotate confirmation code: %w", err)
	}

	result, err := s.sms.SendCode(ctx, phoneNumber, code, eventName)
	if err != nil {
		// Transport failure: the code is already rotated in the store but the
		// cooldown is not restarted, so the visitor can retry right away.
		s.logger.Error("resend SMS failed",
			logger.String("session_id", sessionID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("resend verification code: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok = s.sessions[sessionID]
	if !ok || sess.closed {
		return nil, domain.ErrSessionNotFound
	}

	sess.warning = ""
	if !result.Success {
		sess.warning = "SMS not sent: " + result.Message
	}
	sess.lastActive = time.Now()
	s.startCooldownLocked(sess)

	return snapshot(sess), nil
}

// Verify compares the submitted code with the entry's current stored code and
// confirms the entry on an exact match. A resend that lands between fetch and
// compare makes a legitimate attempt fail; the visitor just retries.
func (s *EnrollmentService) Verify(ctx context.Context, sessionID, code string) (*domain.Enrollment, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	entryID := sess.entryID
	sess.lastActive = time.Now()
	s.mu.Unlock()

	if entryID == "" {
		return nil, domain.ErrEntryNotFound
	}

	code = phone.SanitizeCode(code)
	if len(code) != 6 {
		return nil, domain.ErrInvalidCode
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("load guest list entry: %w", err)
	}
	if entry.ConfirmationCode != code {
		return nil, domain.ErrInvalidCode
	}

	if err = s.entries.Confirm(ctx, entryID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("confirm guest list entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok = s.sessions[sessionID]
	if !ok || sess.closed {
		return nil, domain.ErrSessionNotFound
	}

	sess.state = domain.EnrollmentStateSuccess
	sess.warning = ""
	sess.lastActive = time.Now()

	s.logger.Info("guest list entry confirmed",
		logger.String("entry_id", entryID),
		logger.String("event_id", sess.eventID),
	)

	return snapshot(sess), nil
}

// Back returns the session to the form. The cooldown countdown keeps running:
// re-entering verification respects whatever is left of it.
func (s *EnrollmentService) Back(sessionID string) (*domain.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if sess.state == domain.EnrollmentStateVerification {
		sess.state = domain.EnrollmentStateForm
	}
	sess.warning = ""
	sess.lastActive = time.Now()

	return snapshot(sess), nil
}

// Close tears the session down and stops its countdown goroutine.
func (s *EnrollmentService) Close(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}

	s.closeLocked(sess)

	return nil
}

// ExpireIdle closes sessions whose last activity is older than the session
// TTL. The scheduler calls it periodically.
func (s *EnrollmentService) ExpireIdle(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.cfg.SessionTTL)
	expired := 0
	for _, sess := range s.sessions {
		if sess.lastActive.Before(cutoff) {
			s.closeLocked(sess)
			expired++
		}
	}

	return expired
}

// ListEntries returns an event's guest list for the back office.
func (s *EnrollmentService) ListEntries(ctx context.Context, eventID string) ([]*domain.GuestListEntry, error) {
	return s.entries.ListByEvent(ctx, eventID)
}

// DeleteEntry removes an entry. Admin-only; the sign-up flow itself never deletes.
func (s *EnrollmentService) DeleteEntry(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}

func (s *EnrollmentService) sessionInfo(sessionID string) (eventID, eventName string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return "", "", domain.ErrSessionNotFound
	}
	sess.lastActive = time.Now()

	return sess.eventID, sess.eventName, nil
}

func (s *EnrollmentService) closeLocked(sess *enrollmentSession) {
	sess.closed = true
	if sess.cancelCooldown != nil {
		sess.cancelCooldown()
	}
	delete(s.sessions, sess.id)
}

// startCooldownLocked restarts the countdown. Callers hold s.mu.
func (s *EnrollmentService) startCooldownLocked(sess *enrollmentSession) {
	if sess.cancelCooldown != nil {
		sess.cancelCooldown()
	}

	ctx, cancel := context.WithCancel(context.Background())
	sess.cancelCooldown = cancel
	sess.cooldown = s.cfg.ResendCooldown
	sess.cooldownGen++
	gen := sess.cooldownGen

	go s.runCooldown(ctx, sess, gen)
}

// runCooldown decrements the countdown once per tick until it reaches zero.
// The generation guard keeps a superseded run from touching a restarted
// countdown.
func (s *EnrollmentService) runCooldown(ctx context.Context, sess *enrollmentSession, gen uint64) {
	ticker := time.NewTicker(s.cfg.CooldownTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			if sess.closed || sess.cooldownGen != gen {
				s.mu.Unlock()
				return
			}
			if sess.cooldown > 0 {
				sess.cooldown--
			}
			done := sess.cooldown == 0
			s.mu.Unlock()

			if done {
				return
			}
		}
	}
}

func snapshot(sess *enrollmentSession) *domain.Enrollment {
	return &domain.Enrollment{
		ID:             sess.id,
		EventID:        sess.eventID,
		EventName:      sess.eventName,
		State:          sess.state,
		EntryID:        sess.entryID,
		PhoneNumber:    sess.phone,
		ResendCooldown: sess.cooldown,
		Warning:        sess.warning,
	}
}
