package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digiclass/backend/internal/app/authz"
	"github.com/digiclass/backend/internal/app/controllers"
	"github.com/digiclass/backend/internal/middleware"
	"github.com/digiclass/backend/internal/pkg/auth"
)

// Setup registers all API routes on the engine
func Setup(engine *gin.Engine, ctrls *controllers.Controllers, jwtService *auth.JWTService) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")

	// Public authentication routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", ctrls.Auth.Register)
		authGroup.POST("/login", ctrls.Auth.Login)
		authGroup.POST("/refresh", ctrls.Auth.Refresh)
		authGroup.POST("/logout", ctrls.Auth.Logout)
		authGroup.POST("/forgot-password", ctrls.Auth.ForgotPassword)
		authGroup.POST("/reset-password", ctrls.Auth.ResetPassword)
	}

	// Everything below requires a valid access token
	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService))

	users := protected.Group("/users")
	{
		users.GET("/me", ctrls.User.GetProfile)
		users.PUT("/me", ctrls.User.UpdateProfile)
		users.GET("/teachers", middleware.RequireCapability(authz.ManageUsers), ctrls.User.ListTeachers)
	}

	students := protected.Group("/students")
	{
		// A student reads their own linked profile without the
		// management capability
		students.GET("/me", ctrls.Student.Me)

		manage := students.Group("")
		manage.Use(middleware.RequireCapability(authz.ManageStudents))
		{
			manage.POST("", ctrls.Student.Register)
			manage.GET("", ctrls.Student.List)
			manage.GET("/:id", ctrls.Student.Get)
			manage.PUT("/:id", ctrls.Student.Update)
			manage.DELETE("/:id", ctrls.Student.Delete)
		}
	}

	batches := protected.Group("/class-batches")
	batches.Use(middleware.RequireCapability(authz.ManageBatches))
	{
		batches.POST("", ctrls.ClassBatch.Create)
		batches.GET("", ctrls.ClassBatch.List)
		batches.GET("/:id", ctrls.ClassBatch.Get)
		batches.PUT("/:id", ctrls.ClassBatch.Update)
		batches.DELETE("/:id", ctrls.ClassBatch.Delete)

		batches.GET("/:id/students", ctrls.ClassBatch.Roster)
		batches.POST("/:id/students", ctrls.ClassBatch.AssignStudent)
		batches.DELETE("/:id/students/:studentId", ctrls.ClassBatch.RemoveStudent)

		batches.GET("/:id/timetable", ctrls.Timetable.Get)
		batches.PUT("/:id/timetable", ctrls.Timetable.Upsert)
		batches.DELETE("/:id/timetable", ctrls.Timetable.Delete)
	}

	catalog := protected.Group("/catalog")
	catalog.Use(middleware.RequireCapability(authz.ManageCatalog))
	{
		catalog.GET("/standards", ctrls.Catalog.ListStandards)
		catalog.POST("/standards", ctrls.Catalog.AssignStandards)
		catalog.POST("/standards/remove", ctrls.Catalog.RemoveStandards)
		catalog.GET("/subjects", ctrls.Catalog.ListSubjects)
		catalog.POST("/subjects", ctrls.Catalog.AssignSubjects)
		catalog.POST("/subjects/remove", ctrls.Catalog.RemoveSubjects)
	}

	attendance := protected.Group("/attendance")
	attendance.Use(middleware.RequireCapability(authz.RecordAttendance))
	{
		attendance.POST("", ctrls.Attendance.Record)
		attendance.GET("", ctrls.Attendance.List)
		attendance.PATCH("/:id", ctrls.Attendance.Update)
	}

	exams := protected.Group("/exams")
	exams.Use(middleware.RequireCapability(authz.ManageExams))
	{
		exams.POST("", ctrls.Exam.Create)
		exams.GET("", ctrls.Exam.List)
		exams.GET("/:id", ctrls.Exam.Get)
		exams.PUT("/:id", ctrls.Exam.Update)
		exams.DELETE("/:id", ctrls.Exam.Delete)
	}

	fees := protected.Group("/fees")
	{
		manage := fees.Group("")
		manage.Use(middleware.RequireCapability(authz.ManageFees))
		{
			manage.POST("/structures", ctrls.Fee.CreateStructure)
			manage.GET("/structures", ctrls.Fee.ListStructures)
			manage.PUT("/structures/:id", ctrls.Fee.UpdateStructure)
			manage.DELETE("/structures/:id", ctrls.Fee.DeleteStructure)

			manage.POST("/payments", ctrls.Fee.RecordPayment)
			manage.GET("/payments", ctrls.Fee.ListPayments)
			manage.DELETE("/payments/:id", ctrls.Fee.DeletePayment)
		}

		// Fee status is a report, so teachers can read it without the
		// fee management capability
		fees.GET("/students/:id/status", middleware.RequireCapability(authz.ViewReports), ctrls.Fee.StudentStatus)
	}

	ledger := protected.Group("/ledger")
	ledger.Use(middleware.RequireCapability(authz.ManageLedger))
	{
		ledger.POST("", ctrls.Ledger.Create)
		ledger.GET("", ctrls.Ledger.List)
		ledger.GET("/summary", ctrls.Ledger.Summary)
		ledger.GET("/:id", ctrls.Ledger.Get)
		ledger.PUT("/:id", ctrls.Ledger.Update)
		ledger.DELETE("/:id", ctrls.Ledger.Delete)
	}

	inquiries := protected.Group("/inquiries")
	inquiries.Use(middleware.RequireCapability(authz.ManageInquiries))
	{
		inquiries.POST("", ctrls.Inquiry.Create)
		inquiries.GET("", ctrls.Inquiry.List)
		inquiries.GET("/:id", ctrls.Inquiry.Get)
		inquiries.PUT("/:id", ctrls.Inquiry.Update)
		inquiries.DELETE("/:id", ctrls.Inquiry.Delete)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("/settings", ctrls.Notification.Get)
		notifications.PUT("/settings", ctrls.Notification.Update)
	}
}
