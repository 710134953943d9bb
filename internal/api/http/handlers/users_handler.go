package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/adoptafacil/internal/api/dto"
	"github.com/spec-kit/adoptafacil/internal/service"
)

// UsersHandler exposes the /User endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Save handles POST /User/save.
func (h *UsersHandler) Save(c *fiber.Ctx) error {
	var req dto.UserSaveRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := req.ToDomain()
	if err != nil {
		return err
	}
	if err := h.users.Register(c.UserContext(), user); err != nil {
		return err
	}
	return c.JSON(registered)
}

// Query handles GET /User/query.
func (h *UsersHandler) Query(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, dto.NewUserResponses(users))
}

// Get handles GET /User/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	user, err := h.users.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return data(c, dto.NewUserResponse(*user))
}
