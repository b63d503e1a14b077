package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tripdesk/internal/config"
	"tripdesk/internal/database"
	"tripdesk/internal/middleware"
	"tripdesk/internal/modules/auth"
	"tripdesk/internal/modules/booking"
	"tripdesk/internal/modules/catalog"
	"tripdesk/internal/modules/search"
	jwtsvc "tripdesk/internal/pkg/jwt"
	"tripdesk/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DB.URL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	flightRepo := repository.NewFlightRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	transitRepo := repository.NewTransitRepository(db)
	packageRepo := repository.NewPackageRepository(db)

	j := jwtsvc.New(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	searchHandler := search.NewHandler(search.NewService(flightRepo, hotelRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, flightRepo, hotelRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(flightRepo, transitRepo, packageRepo))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.HTTP.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}))

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		searchHandler.RegisterRoutes(api)
		catalogHandler.RegisterRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("%s listening on :%s", cfg.App.Name, cfg.HTTP.Port)
	if err := r.Run(":" + cfg.HTTP.Port); err != nil {
		log.Fatal(err)
	}
}
