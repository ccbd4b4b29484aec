package routers

import (
	"Packed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupListRouter(app *fiber.App, server *cmd.Server) {
	listHandler := server.ListHandler
	app.Get("/lists", listHandler.ListLists)
	app.Post("/lists", listHandler.CreateList)
	app.Get("/lists/:listId", listHandler.GetListByID)
	app.Put("/lists/:listId", listHandler.UpdateList)
	app.Delete("/lists/:listId", listHandler.DeleteList)
}
