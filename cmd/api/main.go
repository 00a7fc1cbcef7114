package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayquote/internal/database"
	"stayquote/internal/middleware"
	"stayquote/internal/modules/property"
	"stayquote/internal/modules/quote"
	"stayquote/internal/pkg/pricing"
	"stayquote/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "stayquote.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	propertyRepo := repository.NewPropertyRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)

	quoteService := quote.NewService(propertyRepo, calendarRepo, availabilityRepo, pricing.NewAggregator())
	quoteHandler := quote.NewHandler(quoteService)

	propertyService := property.NewService(propertyRepo, calendarRepo)
	propertyHandler := property.NewHandler(propertyService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		quoteHandler.RegisterRoutes(v1)
		propertyHandler.RegisterRoutes(v1)

		internal := v1.Group("/internal")
		internal.Use(middleware.InternalTokenAuth())
		{
			propertyHandler.RegisterInternalRoutes(internal)
		}
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
