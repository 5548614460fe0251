// Package sandbox assembles a local ParkNow backend that speaks the same
// REST contract as production. It backs the e2e suite and lets the CLI run
// without network access; it is not a production server.
package sandbox

import (
	"time"

	"github.com/DucPPhan/parknow/internal/domain"
	"github.com/DucPPhan/parknow/internal/middleware"
	"github.com/DucPPhan/parknow/internal/modules/auth"
	"github.com/DucPPhan/parknow/internal/modules/booking"
	"github.com/DucPPhan/parknow/internal/modules/favorite"
	"github.com/DucPPhan/parknow/internal/modules/parking"
	"github.com/DucPPhan/parknow/internal/modules/vehicle"
	jwtsvc "github.com/DucPPhan/parknow/internal/pkg/jwt"
	"github.com/DucPPhan/parknow/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates the sandbox schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.ParkingLot{},
		&domain.Floor{},
		&domain.ParkingSlot{},
		&domain.PricingRule{},
		&domain.Vehicle{},
		&domain.FavoriteAddress{},
		&domain.Booking{},
	)
}

// NewRouter wires repositories, services and handlers onto a gin engine.
// All routes live under /api.
func NewRouter(db *gorm.DB, jwtSecret string, log *zap.Logger) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	parkingRepo := repository.NewParkingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(jwtSecret, 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	parkingHandler := parking.NewHandler(parking.NewService(parkingRepo, bookingRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, parkingRepo, vehicleRepo))
	vehicleHandler := vehicle.NewHandler(vehicle.NewService(vehicleRepo))
	favoriteHandler := favorite.NewHandler(favoriteRepo)

	r := gin.New()
	r.Use(middleware.RequestLogger(log))

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		parkingHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			vehicleHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterProtectedRoutes(protected)
		}
	}

	return r
}
