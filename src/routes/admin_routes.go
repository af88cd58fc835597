package routes

import (
	"Backend-Career-Advisor/src/controllers"
	"Backend-Career-Advisor/src/middleware"
	"Backend-Career-Advisor/src/utils"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes requires an admin JWT on every route and is closed while no
// JWT secret is configured.
func adminRoutes(app *fiber.App, deps Deps) {
	ctrl := controllers.NewAdminController(deps.Assessment, deps.Dispatcher)

	admin := app.Group("/api/admin",
		middleware.AuthEnabled(deps.Issuer),
		middleware.AuthJWT(deps.Issuer, deps.Blacklist),
		middleware.RequireRole(utils.RoleAdmin),
	)
	admin.Get("/submissions", ctrl.ListSubmissions)
	admin.Get("/stats", ctrl.Stats)
	admin.Get("/model", ctrl.ModelInfo)
	admin.Post("/model/retrain", ctrl.Retrain)
}
