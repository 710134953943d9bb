package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/adoptafacil/internal/api/dto"
	"github.com/spec-kit/adoptafacil/internal/service"
)

// AdoptersHandler exposes the /Adopter endpoints.
type AdoptersHandler struct {
	adopters *service.AdopterService
}

func NewAdoptersHandler(adopters *service.AdopterService) *AdoptersHandler {
	return &AdoptersHandler{adopters: adopters}
}

// Save handles POST /Adopter/save.
func (h *AdoptersHandler) Save(c *fiber.Ctx) error {
	var req dto.AdopterSaveRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	adopter, err := req.ToDomain()
	if err != nil {
		return err
	}
	if err := h.adopters.Register(c.UserContext(), adopter); err != nil {
		return err
	}
	return c.JSON(registered)
}

// Query handles GET /Adopter/query.
func (h *AdoptersHandler) Query(c *fiber.Ctx) error {
	adopters, err := h.adopters.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, dto.NewAdopterResponses(adopters))
}

// Get handles GET /Adopter/:id.
func (h *AdoptersHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	adopter, err := h.adopters.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return data(c, dto.NewAdopterResponse(*adopter))
}
