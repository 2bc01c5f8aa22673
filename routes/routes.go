package routes

import (
	"health-connect/authentication"
	"health-connect/controllers"

	"github.com/gin-gonic/gin"
)

// PortalRoutes mounts the patient portal API onto the engine
func PortalRoutes(r *gin.Engine) {

	// public auth routes
	r.POST("/api/auth/register", controllers.PatientRegister)
	r.POST("/api/auth/login", controllers.PatientLogin)

	api := r.Group("/api")
	api.Use(authentication.PatientAuthMiddleware())
	{
		api.GET("/auth", controllers.CurrentPatient)

		api.GET("/users/profile", controllers.GetProfile)
		api.PUT("/users/profile", controllers.UpdateProfile)

		api.GET("/consultations", controllers.GetConsultations)
		api.POST("/consultations/:id/cancel", controllers.CancelConsultation)
		api.GET("/consultations/specialties", controllers.GetSpecialties)
		api.GET("/consultations/doctors/:specialty", controllers.GetDoctorsBySpecialty)
		api.GET("/consultations/calendar", controllers.GetBookingCalendar)
		api.GET("/consultations/slots/:doctor_id", controllers.GetAvailableTimeSlots)
		api.GET("/consultations/booking", controllers.GetBookingSession)
		api.POST("/consultations/booking/specialty", controllers.SelectBookingSpecialty)
		api.POST("/consultations/booking/doctor", controllers.SelectBookingDoctor)
		api.POST("/consultations/booking/slot", controllers.SelectBookingSlot)
		api.POST("/consultations/booking/confirm", controllers.ConfirmBooking)
		api.DELETE("/consultations/booking", controllers.AbandonBooking)

		api.GET("/medications", controllers.GetMedications)
		api.POST("/medications", controllers.AddMedication)
		api.PUT("/medications/:id", controllers.UpdateMedication)
		api.DELETE("/medications/:id", controllers.DeleteMedication)
		api.GET("/medications/:id/adherence", controllers.GetAdherence)
		api.POST("/medications/:id/adherence", controllers.ToggleAdherence)

		api.GET("/metrics", controllers.GetHealthMetrics)
		api.POST("/metrics", controllers.AddHealthMetric)
		api.DELETE("/metrics/:id", controllers.DeleteHealthMetric)

		api.GET("/resources", controllers.GetResources)

		api.GET("/symptoms", controllers.SearchSymptoms)
		api.POST("/symptoms/assess", controllers.AssessSymptoms)

		api.GET("/dashboard", controllers.GetDashboard)
	}
}
