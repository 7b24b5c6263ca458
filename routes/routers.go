package routes

import (
	"context"
	"net/http"

	"quickstay/config"
	"quickstay/constants"
	"quickstay/controllers"
	middlewares "quickstay/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	hotelController := controllers.NewHotelController(db, redisCli)
	roomController := controllers.NewRoomController(db, redisCli)
	bookingController := controllers.NewBookingController(db, redisCli, m)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.POST("/hotel", middlewares.AuthMiddleware(constants.RoleHotelOwner), hotelController.RegisterHotel)
	v1.GET("/hotel", middlewares.AuthMiddleware(constants.RoleHotelOwner), hotelController.GetOwnerHotel)
	v1.GET("/cities", hotelController.GetCities)

	v1.GET("/room", roomController.GetRooms)
	v1.GET("/room/:id", roomController.GetRoomDetail)
	v1.POST("/room", middlewares.AuthMiddleware(constants.RoleHotelOwner), roomController.CreateRoom)
	v1.GET("/ownerRooms", middlewares.AuthMiddleware(constants.RoleHotelOwner), roomController.GetOwnerRooms)
	v1.PUT("/room/:id/availability", middlewares.AuthMiddleware(constants.RoleHotelOwner), roomController.ToggleRoomAvailability)

	v1.POST("/checkAvailability", bookingController.CheckAvailabilityAPI)
	v1.POST("/booking", middlewares.OptionalAuthMiddleware(), bookingController.CreateBooking)
	v1.GET("/bookingHistory", middlewares.AuthMiddleware(), bookingController.GetUserBookings)
	v1.GET("/dashboard", middlewares.AuthMiddleware(constants.RoleHotelOwner), bookingController.GetHotelBookings)
	v1.POST("/sendpay", bookingController.StripePayment)
	v1.PUT("/paymentStatus", bookingController.UpdatePaymentStatus)

	v1.POST("/optimizeBooking", middlewares.OptionalAuthMiddleware(), bookingController.OptimizeBooking)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})
}
