package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Root(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	SubmitReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	ApproveReservation(c *ginext.Context)
	DenyReservation(c *ginext.Context)
	StartEnrollment(c *ginext.Context)
	SubmitEnrollment(c *ginext.Context)
	ResendCode(c *ginext.Context)
	VerifyCode(c *ginext.Context)
	BackEnrollment(c *ginext.Context)
	CloseEnrollment(c *ginext.Context)
	ListGuestList(c *ginext.Context)
	DeleteGuestListEntry(c *ginext.Context)
	GetSettings(c *ginext.Context)
	UpdateSettings(c *ginext.Context)
}

// InitRouter wires the public storefront and admin routes. rateLimit guards
// the SMS-sending guest-list endpoints and may be nil when disabled.
func InitRouter(mode string, h Handler, rateLimit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		// Reservations
		api.POST("/events/:id/reservations", h.SubmitReservation)
		api.GET("/reservations", h.ListReservations)
		api.POST("/reservations/:id/approve", h.ApproveReservation)
		api.POST("/reservations/:id/deny", h.DenyReservation)

		// Guest list enrollment
		sessions := api.Group("/guestlist/sessions")
		if rateLimit != nil {
			sessions.Use(rateLimit)
		}
		sessions.POST("", h.StartEnrollment)
		sessions.POST("/:id/submit", h.SubmitEnrollment)
		sessions.POST("/:id/resend", h.ResendCode)
		sessions.POST("/:id/verify", h.VerifyCode)
		sessions.POST("/:id/back", h.BackEnrollment)
		sessions.DELETE("/:id", h.CloseEnrollment)

		// Guest list back office
		api.GET("/events/:id/guestlist", h.ListGuestList)
		api.DELETE("/guestlist/entries/:id", h.DeleteGuestListEntry)

		// Settings
		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", h.UpdateSettings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	// Share-link entry point lives at the origin root.
	router.GET("/", h.Root)

	return router
}
