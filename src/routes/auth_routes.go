package routes

import (
	"Backend-Career-Advisor/src/controllers"
	"Backend-Career-Advisor/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes mounts admin login and logout.
func authRoutes(app *fiber.App, deps Deps) {
	ctrl := controllers.NewAuthController(deps.Issuer, deps.Blacklist, deps.Admin, deps.Validate)

	auth := app.Group("/auth", middleware.AuthEnabled(deps.Issuer))
	auth.Post("/login", ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
}
