package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/Theluxegrp/Theluxegrp/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, publishedOnly bool) ([]*domain.Event, error)
}

type BookingSvc interface {
	Submit(ctx context.Context, eventID string, input domain.SubmitReservationInput) (*domain.Reservation, error)
	ListByStatus(ctx context.Context, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
	Approve(ctx context.Context, id string) error
	Deny(ctx context.Context, id string) error
}

type EnrollmentSvc interface {
	Start(ctx context.Context, eventID string) (*domain.Enrollment, error)
	Submit(ctx context.Context, sessionID string, input domain.EnrollmentSubmitInput) (*domain.Enrollment, error)
	Resend(ctx context.Context, sessionID string) (*domain.Enrollment, error)
	Verify(ctx context.Context, sessionID, code string) (*domain.Enrollment, error)
	Back(sessionID string) (*domain.Enrollment, error)
	Close(sessionID string) error
	ListEntries(ctx context.Context, eventID string) ([]*domain.GuestListEntry, error)
	DeleteEntry(ctx context.Context, id string) error
}

type SettingsSvc interface {
	Get(ctx context.Context) (*domain.AdminSettings, error)
	Update(ctx context.Context, input domain.UpdateSettingsInput) (*domain.AdminSettings, error)
}

type Handler struct {
	eventService      EventSvc
	bookingService    BookingSvc
	enrollmentService EnrollmentSvc
	settingsService   SettingsSvc
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, enrollmentService EnrollmentSvc, settingsService SettingsSvc) *Handler {
	return &Handler{
		eventService:      eventService,
		bookingService:    bookingService,
		enrollmentService: enrollmentService,
		settingsService:   settingsService,
	}
}

// Root backs the storefront origin. A ?guestlist=<event_id> query is the
// share-link entry point: it resolves the event and opens a sign-up session.
func (h *Handler) Root(c *ginext.Context) {
	eventID := c.Query("guestlist")
	if eventID == "" {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
		return
	}

	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	enrollment, err := h.enrollmentService.Start(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentResponse(enrollment))
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		VenueID:                  req.VenueID,
		Name:                     req.Name,
		Description:              req.Description,
		EventDate:                eventDate,
		DressCode:                req.DressCode,
		MusicGenre:               req.MusicGenre,
		MinAge:                   req.MinAge,
		GuestListAvailable:       req.GuestListAvailable,
		SectionsAvailable:        req.SectionsAvailable,
		SpecialEventsAvailable:   req.SpecialEventsAvailable,
		SectionsBookingMode:      domain.BookingMode(req.SectionsBookingMode),
		SpecialEventsBookingMode: domain.BookingMode(req.SpecialEventsBookingMode),
		IsPublished:              req.IsPublished,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	publishedOnly := c.Query("include_unpublished") != "true"

	events, err := h.eventService.List(c.Request.Context(), publishedOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) SubmitReservation(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.SubmitReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// Party bounds for special events are an input-layer rule; the engine
	// only enforces the universal minimum of one.
	if domain.ReservationType(req.Type) == domain.ReservationSpecialEvent &&
		(req.PartySize < 5 || req.PartySize > 200) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "special event party size must be between 5 and 200",
		})
		return
	}

	input := domain.SubmitReservationInput{
		Type:            domain.ReservationType(req.Type),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
		Occasion:        req.Occasion,
		TableOptionID:   req.TableOptionID,
		SectionID:       req.SectionID,
		BottlePackageID: req.BottlePackageID,
		TotalAmount:     req.TotalAmount,
	}

	reservation, err := h.bookingService.Submit(c.Request.Context(), eventID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	var statuses []domain.ReservationStatus
	if raw := c.Query("status"); raw != "" {
		statuses = append(statuses, domain.ReservationStatus(raw))
	}

	reservations, err := h.bookingService.ListByStatus(c.Request.Context(), statuses)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveReservation(c *ginext.Context) {
	h.decideReservation(c, h.bookingService.Approve, "approved")
}

func (h *Handler) DenyReservation(c *ginext.Context) {
	h.decideReservation(c, h.bookingService.Deny, "denied")
}

func (h *Handler) decideReservation(c *ginext.Context, decide func(context.Context, string) error, status string) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := decide(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": status})
}

// Guest list enrollment

func (h *Handler) StartEnrollment(c *ginext.Context) {
	var req dto.StartEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.Start(c.Request.Context(), req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) SubmitEnrollment(c *ginext.Context) {
	var req dto.EnrollmentSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.EnrollmentSubmitInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	enrollment, err := h.enrollmentService.Submit(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) ResendCode(c *ginext.Context) {
	enrollment, err := h.enrollmentService.Resend(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) VerifyCode(c *ginext.Context) {
	var req dto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.Verify(c.Request.Context(), c.Param("id"), req.Code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) BackEnrollment(c *ginext.Context) {
	enrollment, err := h.enrollmentService.Back(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) CloseEnrollment(c *ginext.Context) {
	if err := h.enrollmentService.Close(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "closed"})
}

func (h *Handler) ListGuestList(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	entries, err := h.enrollmentService.ListEntries(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GuestListEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToGuestListEntryResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteGuestListEntry(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid entry id"})
		return
	}

	if err := h.enrollmentService.DeleteEntry(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Settings

func (h *Handler) GetSettings(c *ginext.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

func (h *Handler) UpdateSettings(c *ginext.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateSettingsInput{
		NotificationEnabled: req.NotificationEnabled,
		NotificationPhone:   req.NotificationPhone,
		TwilioAccountSID:    req.TwilioAccountSID,
		TwilioAuthToken:     req.TwilioAuthToken,
		TwilioFromPhone:     req.TwilioFromPhone,
	}

	settings, err := h.settingsService.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSettingsNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrReservationNotPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrInvalidCode):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
