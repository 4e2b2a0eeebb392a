package router

import (
	"hotelhills/internal/handlers/banquet"
	"hotelhills/internal/handlers/banquetbooking"
	"hotelhills/internal/handlers/bill"
	"hotelhills/internal/handlers/booking"
	"hotelhills/internal/handlers/guest"
	"hotelhills/internal/handlers/kot"
	"hotelhills/internal/handlers/menu"
	"hotelhills/internal/handlers/quotation"
	"hotelhills/internal/handlers/room"
	"hotelhills/internal/handlers/table"
	"hotelhills/internal/handlers/tablebooking"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room           room.Handler
	Guest          guest.Handler
	Booking        booking.Handler
	Table          table.Handler
	TableBooking   tablebooking.Handler
	KOT            kot.Handler
	Menu           menu.Handler
	Banquet        banquet.Handler
	BanquetBooking banquetbooking.Handler
	Quotation      quotation.Handler
	Bill           bill.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Table.Router(routerGroup)
		r.DomainHandlers.TableBooking.Router(routerGroup)
		r.DomainHandlers.KOT.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Banquet.Router(routerGroup)
		r.DomainHandlers.BanquetBooking.Router(routerGroup)
		r.DomainHandlers.Quotation.Router(routerGroup)
		r.DomainHandlers.Bill.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
