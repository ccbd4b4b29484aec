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

type ListHandler struct {
	service services.ListService
}

func NewListHandler(service services.ListService) *ListHandler {
	return &ListHandler{service: service}
}

func (h *ListHandler) ListLists(c *fiber.Ctx) error {
	lists, err := h.service.GetLists()
	if err != nil {
		return problem.Render(c, err)
	}
	return c.JSON(mapper.ToListGetDTOs(lists))
}

func (h *ListHandler) CreateList(c *fiber.Ctx) error {
	var req struct {
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, "invalid request body")
	}
	if req.Description == "" {
		return problem.BadRequest(c, "description is required")
	}

	list, err := h.service.CreateList(req.Description)
	if err != nil {
		return problem.Render(c, err)
	}

	c.Location(fmt.Sprintf("/lists/%d", list.ID))
	return c.Status(http.StatusCreated).JSON(mapper.ToListGetDTO(list))
}

func (h *ListHandler) GetListByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}

	list, err := h.service.GetListByID(uint(id))
	if err != nil {
		return problem.Render(c, err)
	}
	return c.JSON(mapper.ToListGetDTO(list))
}

func (h *ListHandler) UpdateList(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}

	var req struct {
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, "invalid request body")
	}
	if req.Description == "" {
		return problem.BadRequest(c, "description is required")
	}

	list, err := h.service.UpdateList(uint(id), req.Description)
	if err != nil {
		return problem.Render(c, err)
	}
	return c.JSON(mapper.ToListGetDTO(list))
}

func (h *ListHandler) DeleteList(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}

	if err := h.service.DeleteList(uint(id)); err != nil {
		return problem.Render(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
