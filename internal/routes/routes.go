package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nutrition-app-server/internal/config"
	"nutrition-app-server/internal/handlers"
	"nutrition-app-server/internal/middleware"
	"nutrition-app-server/internal/models"
	"nutrition-app-server/internal/services"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize services
	assocService := services.NewAssociationService(db, cfg.AppURL)
	authService := services.NewAuthService(db)
	scheduleService := services.NewScheduleService(db)
	catalogService := services.NewCatalogService(db)
	diaryService := services.NewDiaryService(db)
	planService := services.NewPlanService(db, assocService)
	courseService := services.NewCourseService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, assocService, cfg)
	dashboardHandler := handlers.NewDashboardHandler(assocService)
	patientHandler := handlers.NewPatientHandler(assocService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	appointmentHandler := handlers.NewAppointmentHandler(scheduleService)
	diaryHandler := handlers.NewDiaryHandler(diaryService, catalogService)
	planHandler := handlers.NewPlanHandler(planService, assocService, catalogService)
	courseHandler := handlers.NewCourseHandler(courseService)

	// Public routes
	router.GET("/", authHandler.Index)

	// Anonymous-only routes: logged-in users bounce to their dashboard
	anonymous := router.Group("")
	anonymous.Use(middleware.RedirectIfAuthenticated(authService))
	{
		anonymous.GET("/register", authHandler.RegisterForm)
		anonymous.POST("/register", authHandler.Register)
		anonymous.GET("/login", authHandler.LoginForm)
		anonymous.POST("/login", authHandler.Login)
	}

	// Authenticated routes
	private := router.Group("")
	private.Use(middleware.RequireLogin(authService))
	{
		private.GET("/logout", authHandler.Logout)
		private.GET("/food_items", catalogHandler.List)
		private.GET("/appointments",
			middleware.RequireRole(models.RolePatient, models.RoleNutritionist),
			appointmentHandler.List)

		// Patient routes
		patient := private.Group("")
		patient.Use(middleware.RequireRole(models.RolePatient))
		{
			patient.GET("/patient_dashboard", dashboardHandler.PatientDashboard)
			patient.GET("/schedule_appointment", appointmentHandler.ScheduleForm)
			patient.POST("/schedule_appointment", appointmentHandler.Create)
			patient.GET("/food_diary", diaryHandler.Show)
			patient.POST("/food_diary", diaryHandler.Add)
			patient.GET("/meal_plans", planHandler.MyPlans)
		}

		// Nutritionist routes
		nutritionist := private.Group("")
		nutritionist.Use(middleware.RequireRole(models.RoleNutritionist))
		{
			nutritionist.GET("/nutritionist_dashboard", dashboardHandler.NutritionistDashboard)
			nutritionist.GET("/patients", patientHandler.List)
			nutritionist.GET("/add_patient", patientHandler.AddForm)
			nutritionist.POST("/add_patient", patientHandler.Add)
			nutritionist.GET("/add_food_item", catalogHandler.AddForm)
			nutritionist.POST("/add_food_item", catalogHandler.Add)
			nutritionist.GET("/patients/:id/meal_plans", planHandler.PatientPlans)
			nutritionist.POST("/patients/:id/meal_plans", planHandler.CreatePlan)
			nutritionist.POST("/meal_plans/:id/meals", planHandler.AddMeal)
			nutritionist.POST("/meals/:id/items", planHandler.AddMealItem)
			nutritionist.GET("/courses", courseHandler.List)
			nutritionist.POST("/courses", courseHandler.Create)
			nutritionist.POST("/courses/:id/modules", courseHandler.AddModule)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
