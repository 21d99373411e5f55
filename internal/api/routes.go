package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Get("/me", handler.AuthRequired, handler.Me)
	api.Get("/quote", handler.AuthRequired, handler.DailyQuote)
	api.Get("/resources", handler.AuthRequired, handler.RecoveryResources)

	shifts := api.Group("/shifts", handler.AuthRequired)
	shifts.Post("", handler.SaveShift)
	shifts.Delete("/:id", handler.DeleteShift)

	meetings := api.Group("/meetings", handler.AuthRequired)
	meetings.Get("", handler.ListMeetings)
	meetings.Post("", handler.SaveMeeting)
	meetings.Delete("/:id", handler.DeleteMeeting)

	goals := api.Group("/goals", handler.AuthRequired)
	goals.Post("/:goalID/milestones/:milestoneID/toggle", handler.ToggleMilestone)

	residents := api.Group("/residents", handler.AuthRequired, handler.ManagerOnly)
	residents.Get("", handler.ListResidents)
	residents.Post("", handler.AddResident)
	residents.Delete("/:id", handler.DeleteResident)
	residents.Patch("/:id/finance", handler.UpdateResidentFinance)

	schedule := api.Group("/schedule", handler.AuthRequired, handler.ManagerOnly)
	schedule.Get("/overview", handler.ScheduleOverview)
}
