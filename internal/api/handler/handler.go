package handler

import (
	"bloodconnect/backend/internal/service"
	"bloodconnect/backend/internal/ws"
)

// Handler is the aggregate entry point for all handlers.
type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Request   *RequestHandler
	Search    *SearchHandler
	Dashboard *DashboardHandler
	Fund      *FundHandler
	Export    *ExportHandler
	Refdata   *RefdataHandler
	WS        *WSHandler
}

// NewHandler creates the handler aggregate. hub may be nil when the live
// feed is disabled.
func NewHandler(svc *service.Service, hub *ws.Hub) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		User:      NewUserHandler(svc.User),
		Request:   NewRequestHandler(svc.Request),
		Search:    NewSearchHandler(svc.Search, svc.Export),
		Dashboard: NewDashboardHandler(svc.Dashboard, svc.Request),
		Fund:      NewFundHandler(svc.Fund),
		Export:    NewExportHandler(svc.Export),
		Refdata:   NewRefdataHandler(),
		WS:        NewWSHandler(hub),
	}
}
