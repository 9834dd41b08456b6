package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"

	"metroll_cms/cache"
	"metroll_cms/client"
	"metroll_cms/config"
	"metroll_cms/handler"
	"metroll_cms/helper"
	"metroll_cms/model"
	"metroll_cms/router"
	"metroll_cms/service"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})

	sessions := helper.NewRedisSessionStore(rdb)
	queries := cache.NewQuery(rdb)

	api := client.New(config.ConfigOr("API_BASE_URL", "http://localhost:8080/api/v1"))
	api.OnUnauthorized = func(ctx context.Context, sess *model.Session) {
		if sess == nil {
			return
		}
		if err := sessions.Destroy(ctx, sess.ID); err != nil {
			log.Printf("destroy session %s: %v", sess.ID, err)
		}
	}

	sessionHours, err := strconv.Atoi(config.ConfigOr("SESSION_TTL_HOURS", "12"))
	if err != nil || sessionHours <= 0 {
		sessionHours = 12
	}

	accounts := service.NewAccountService(api, queries)
	stations := service.NewStationService(api, queries)
	lines := service.NewLineService(api, queries)
	tickets := service.NewTicketService(api, queries)
	vouchers := service.NewVoucherService(api, queries)
	discounts := service.NewDiscountService(api, queries)
	orders := service.NewOrderService(api, queries)
	auth := service.NewAuthService(api, sessions, time.Duration(sessionHours)*time.Hour)

	stats := &handler.StatisticHandler{
		Accounts: accounts,
		Stations: stations,
		Lines:    lines,
		Tickets:  tickets,
		Vouchers: vouchers,
		Orders:   orders,
	}

	handlers := router.Handlers{
		Auth:      &handler.AuthHandler{Auth: auth, Accounts: accounts},
		Accounts:  &handler.AccountHandler{Accounts: accounts},
		Stations:  &handler.StationHandler{Stations: stations},
		Lines:     &handler.LineHandler{Lines: lines, Stations: stations},
		Tickets:   &handler.TicketHandler{Tickets: tickets},
		Vouchers:  &handler.VoucherHandler{Vouchers: vouchers},
		Discounts: &handler.DiscountHandler{Discounts: discounts},
		Orders:    &handler.OrderHandler{Orders: orders},
		Stats:     stats,
		Dashboard: handler.NewDashboardWebsocket(rdb),
	}

	refresher := &helper.DashboardRefresher{
		Redis:   rdb,
		Collect: stats.Collect,
		Channel: handler.DashboardChannel,
	}
	if err := refresher.Start(); err != nil {
		log.Fatal(err)
	}
	defer refresher.Stop()

	router.SetupRoutes(app, handlers, sessions)

	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
