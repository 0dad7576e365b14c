package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-admin/controllers"
	_ "hotel-admin/docs"
	"hotel-admin/middleware"
	"hotel-admin/services/logger"
)

// SetupRouter wires the gateway's surface: CORS for the browser UI,
// request logging, the manage/search/stats/employee route groups and
// the swagger UI.
func SetupRouter(
	mc *controllers.ManageController,
	ec *controllers.EmployeeController,
	sc *controllers.SearchController,
	stc *controllers.StatsController,
	corsOrigins []string,
	log logger.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		manage := api.Group("/manage")
		{
			manage.GET("/:kind", mc.ListEntities)
			manage.POST("/:kind", mc.CreateEntity)
			manage.PUT("/:kind", mc.UpdateEntity)
			manage.DELETE("/:kind", mc.DeleteEntity)
		}

		employee := api.Group("/employee")
		{
			employee.GET("/portal", ec.Portal)
			employee.POST("/bookings/:id/convert", ec.ConvertBooking)
		}

		search := api.Group("/search")
		{
			search.POST("/rooms", sc.SearchRooms)
			search.GET("/hotel-chains", sc.HotelChains)
			search.POST("/book", sc.BookRoom)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/overview", stc.Overview)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
