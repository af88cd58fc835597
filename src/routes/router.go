package routes

import (
	"Backend-Career-Advisor/src/controllers"
	"Backend-Career-Advisor/src/jobs"
	"Backend-Career-Advisor/src/logger"
	"Backend-Career-Advisor/src/middleware"
	"Backend-Career-Advisor/src/services/assessment"
	"Backend-Career-Advisor/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries everything the HTTP layer needs.
type Deps struct {
	Assessment     *assessment.Service
	Dispatcher     *jobs.Dispatcher
	Issuer         *utils.TokenIssuer
	Blacklist      *utils.TokenBlacklist
	Admin          controllers.AdminCredentials
	Validate       *validator.Validate
	Logger         logger.Logger
	AllowedOrigins string
	StaticDir      string
}

// NewApp builds the Fiber app with middleware and every route mounted.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "career-advisor"})

	origins := deps.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))
	app.Use(middleware.Metrics())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	InitRoutes(app, deps)
	return app
}

func InitRoutes(app *fiber.App, deps Deps) {
	if deps.Validate == nil {
		deps.Validate = validator.New()
	}

	healthRoutes(app, deps)
	assessmentRoutes(app, deps)
	authRoutes(app, deps)
	adminRoutes(app, deps)

	if deps.StaticDir != "" {
		app.Static("/app", deps.StaticDir, fiber.Static{Index: "index.html"})
	}
}

func healthRoutes(app *fiber.App, deps Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		info, err := deps.Assessment.ModelInfo()
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "modelVersion": info.Version, "algorithm": info.Algorithm})
	})
}

func assessmentRoutes(app *fiber.App, deps Deps) {
	ctrl := controllers.NewAssessmentController(deps.Assessment, deps.Validate)

	api := app.Group("/api")
	api.Get("/questions", ctrl.GetQuestions)
	api.Get("/careers", ctrl.GetCareers)

	assessments := api.Group("/assessments")
	assessments.Post("/", ctrl.CreateAssessment)
	assessments.Get("/:id", ctrl.GetAssessment)
	assessments.Get("/:id/qrcode", ctrl.GetAssessmentQRCode)
}
