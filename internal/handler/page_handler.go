package handler

import (
	"go-warehouse-sheets/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PageHandler struct {
	service service.InventoryService
}

func NewPageHandler(s service.InventoryService) *PageHandler {
	return &PageHandler{service: s}
}

// Index renders the warehouse page with the department list pre-filled.
// GET /
func (h *PageHandler) Index(c *fiber.Ctx) error {
	departments, err := h.service.ListDepartments()
	if err != nil {
		return c.Status(statusForError(err)).Render("index", fiber.Map{
			"Title": "Virtual Warehouse Pro",
			"Error": err.Error(),
		})
	}
	return c.Render("index", fiber.Map{
		"Title":       "Virtual Warehouse Pro",
		"Departments": departments,
	})
}
