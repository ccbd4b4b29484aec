package routers

import (
	"Packed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(app *fiber.App, server *cmd.Server) {
	itemHandler := server.ItemHandler
	app.Get("/lists/:listId/items", itemHandler.ListItems)
	app.Post("/lists/:listId/items", itemHandler.CreateItem)
	app.Get("/lists/:listId/items/:itemId", itemHandler.GetItemByID)
	app.Put("/lists/:listId/items/:itemId", itemHandler.UpdateItem)
	app.Delete("/lists/:listId/items/:itemId", itemHandler.DeleteItem)
}
