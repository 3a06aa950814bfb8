package router

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetCurrentUser(c *ginext.Context)

	ListSpots(c *ginext.Context)
	ListCurrentUserSpots(c *ginext.Context)
	GetSpot(c *ginext.Context)
	CreateSpot(c *ginext.Context)
	UpdateSpot(c *ginext.Context)
	DeleteSpot(c *ginext.Context)
	AddSpotImage(c *ginext.Context)
	DeleteSpotImage(c *ginext.Context)

	ListCurrentUserBookings(c *ginext.Context)
	ListSpotBookings(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)

	ListSpotReviews(c *ginext.Context)
	ListCurrentUserReviews(c *ginext.Context)
	CreateReview(c *ginext.Context)
	UpdateReview(c *ginext.Context)
	DeleteReview(c *ginext.Context)
	AddReviewImage(c *ginext.Context)
	DeleteReviewImage(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)
	router.Use(middleware.CurrentUser())

	auth := middleware.RequireUser()

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/current", auth, h.GetCurrentUser)

		// Spots
		api.GET("/spots", h.ListSpots)
		api.GET("/spots/current", auth, h.ListCurrentUserSpots)
		api.GET("/spots/:spotId", h.GetSpot)
		api.POST("/spots", auth, h.CreateSpot)
		api.PUT("/spots/:spotId", auth, h.UpdateSpot)
		api.DELETE("/spots/:spotId", auth, h.DeleteSpot)
		api.POST("/spots/:spotId/images", auth, h.AddSpotImage)
		api.DELETE("/spot-images/:imageId", auth, h.DeleteSpotImage)

		// Bookings
		api.GET("/bookings/current", auth, h.ListCurrentUserBookings)
		api.GET("/spots/:spotId/bookings", auth, h.ListSpotBookings)
		api.POST("/spots/:spotId/bookings", auth, h.CreateBooking)
		api.PUT("/bookings/:bookingId", auth, h.UpdateBooking)
		api.DELETE("/bookings/:bookingId", auth, h.DeleteBooking)

		// Reviews
		api.GET("/spots/:spotId/reviews", h.ListSpotReviews)
		api.GET("/reviews/current", auth, h.ListCurrentUserReviews)
		api.POST("/spots/:spotId/reviews", auth, h.CreateReview)
		api.PUT("/reviews/:reviewId", auth, h.UpdateReview)
		api.DELETE("/reviews/:reviewId", auth, h.DeleteReview)
		api.POST("/reviews/:reviewId/images", auth, h.AddReviewImage)
		api.DELETE("/review-images/:imageId", auth, h.DeleteReviewImage)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
