package handlers

import (
	"Packed/internal/mapper"
	"Packed/internal/problem"
	"Packed/internal/services"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	service services.ItemService
}

func NewItemHandler(service services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}

	items, err := h.service.GetItems(uint(listID))
	if err != nil {
		return problem.Render(c, err)
	}
	return c.JSON(mapper.ToItemGetDTOs(items))
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}

	var req struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return problem.BadRequest(c, "name is required")
	}
	if req.Quantity < 1 {
		return problem.BadRequest(c, "quantity must be at least 1")
	}

	item, err := h.service.CreateItem(uint(listID), req.Name, req.Quantity)
	if err != nil {
		return problem.Render(c, err)
	}

	c.Location(fmt.Sprintf("/lists/%d/items/%d", listID, item.ID))
	return c.Status(http.StatusCreated).JSON(mapper.ToItemGetDTO(item))
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid item ID")
	}

	item, err := h.service.GetItemByID(uint(listID), uint(itemID))
	if err != nil {
		return problem.Render(c, err)
	}
	return c.JSON(mapper.ToItemGetDTO(item))
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid item ID")
	}

	var req struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return problem.BadRequest(c, "name is required")
	}
	if req.Quantity < 1 {
		return problem.BadRequest(c, "quantity must be at least 1")
	}

	item, err := h.service.UpdateItem(uint(listID), uint(itemID), req.Name, req.Quantity)
	if err != nil {
		return problem.Render(c, err)
	}
	return c.JSON(mapper.ToItemGetDTO(item))
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid item ID")
	}

	if err := h.service.DeleteItem(uint(listID), uint(itemID)); err != nil {
		return problem.Render(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
