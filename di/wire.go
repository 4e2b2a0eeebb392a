//go:build wireinject
// +build wireinject

package di

import (
	"hotelhills/config"
	"hotelhills/infras/kafka"
	"hotelhills/infras/otel"
	"hotelhills/infras/postgres"
	"hotelhills/infras/redis"
	"hotelhills/infras/s3"
	"hotelhills/shared/cache"
	"hotelhills/transport/http"
	"hotelhills/transport/http/middleware"
	"hotelhills/transport/http/router"

	banquetRepository "hotelhills/internal/domains/banquet/repository"
	banquetService "hotelhills/internal/domains/banquet/service"
	banquetBookingRepository "hotelhills/internal/domains/banquetbooking/repository"
	banquetBookingService "hotelhills/internal/domains/banquetbooking/service"
	billRepository "hotelhills/internal/domains/bill/repository"
	billService "hotelhills/internal/domains/bill/service"
	bookingRepository "hotelhills/internal/domains/booking/repository"
	bookingService "hotelhills/internal/domains/booking/service"
	guestRepository "hotelhills/internal/domains/guest/repository"
	guestService "hotelhills/internal/domains/guest/service"
	kotRepository "hotelhills/internal/domains/kot/repository"
	kotService "hotelhills/internal/domains/kot/service"
	menuRepository "hotelhills/internal/domains/menu/repository"
	menuService "hotelhills/internal/domains/menu/service"
	quotationRepository "hotelhills/internal/domains/quotation/repository"
	quotationService "hotelhills/internal/domains/quotation/service"
	roomRepository "hotelhills/internal/domains/room/repository"
	roomService "hotelhills/internal/domains/room/service"
	tableRepository "hotelhills/internal/domains/table/repository"
	tableService "hotelhills/internal/domains/table/service"
	tableBookingRepository "hotelhills/internal/domains/tablebooking/repository"
	tableBookingService "hotelhills/internal/domains/tablebooking/service"

	banquetHandler "hotelhills/internal/handlers/banquet"
	banquetBookingHandler "hotelhills/internal/handlers/banquetbooking"
	billHandler "hotelhills/internal/handlers/bill"
	bookingHandler "hotelhills/internal/handlers/booking"
	guestHandler "hotelhills/internal/handlers/guest"
	kotHandler "hotelhills/internal/handlers/kot"
	menuHandler "hotelhills/internal/handlers/menu"
	quotationHandler "hotelhills/internal/handlers/quotation"
	roomHandler "hotelhills/internal/handlers/room"
	tableHandler "hotelhills/internal/handlers/table"
	tableBookingHandler "hotelhills/internal/handlers/tablebooking"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var tableBookingDomain = wire.NewSet(
	tableBookingRepository.New,
	tableBookingService.New,
)

var kotDomain = wire.NewSet(
	kotRepository.New,
	kotService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var banquetDomain = wire.NewSet(
	banquetRepository.New,
	banquetService.New,
)

var banquetBookingDomain = wire.NewSet(
	banquetBookingRepository.New,
	banquetBookingService.New,
)

var quotationDomain = wire.NewSet(
	quotationRepository.New,
	quotationService.New,
)

var billDomain = wire.NewSet(
	billRepository.New,
	billService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
	tableDomain,
	tableBookingDomain,
	kotDomain,
	menuDomain,
	banquetDomain,
	banquetBookingDomain,
	quotationDomain,
	billDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	tableHandler.New,
	tableBookingHandler.New,
	kotHandler.New,
	menuHandler.New,
	banquetHandler.New,
	banquetBookingHandler.New,
	quotationHandler.New,
	billHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
