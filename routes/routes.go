package routes

import (
	"time"

	"doctorportal/handlers"
	"doctorportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public availability endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.Appointments.GetAppointmentOptions)
	r.GET("/appointmentSpecialty", hb.Appointments.GetSpecialties)
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, g *middleware.Guards) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", hb.Bookings.CreateBooking)
		bookings.GET("", g.Authenticated(hb.Bookings.ListBookings))
		bookings.GET("/:id", hb.Bookings.GetBooking)
	}
}

// RegisterUserRoutes registers user, token and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, g *middleware.Guards) {
	r.GET("/jwt", hb.Users.IssueToken)

	users := r.Group("/users")
	{
		users.POST("", hb.Users.SaveUser)
		users.GET("", hb.Users.GetAllUsers)
		users.GET("/admin/:email", hb.Users.IsAdmin)
		users.PUT("/admin/:id", g.Admin(hb.Users.MakeAdmin))
	}
}

// RegisterDoctorRoutes registers the admin-only doctor endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle, g *middleware.Guards) {
	doctors := r.Group("/doctors")
	{
		doctors.POST("", g.Admin(hb.Doctors.AddDoctor))
		doctors.GET("", g.Admin(hb.Doctors.ListDoctors))
		doctors.DELETE("/:id", g.Admin(hb.Doctors.DeleteDoctor))
	}
}

// RegisterPaymentRoutes registers the checkout endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, g *middleware.Guards) {
	r.POST("/create-payment-intent", g.Authenticated(hb.Payments.CreatePaymentIntent))
}

// RegisterHealthRoutes registers the greeting and health-check endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", handlers.Root)
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, g *middleware.Guards) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb, g)
	RegisterUserRoutes(r, hb, g)
	RegisterDoctorRoutes(r, hb, g)
	RegisterPaymentRoutes(r, hb, g)
}
