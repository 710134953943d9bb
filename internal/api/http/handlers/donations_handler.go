package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/adoptafacil/internal/api/dto"
	"github.com/spec-kit/adoptafacil/internal/service"
)

// DonationsHandler exposes the /Donation endpoints.
type DonationsHandler struct {
	donations *service.DonationService
}

func NewDonationsHandler(donations *service.DonationService) *DonationsHandler {
	return &DonationsHandler{donations: donations}
}

// Save handles POST /Donation/save.
func (h *DonationsHandler) Save(c *fiber.Ctx) error {
	var req dto.DonationSaveRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	donation, err := req.ToDomain()
	if err != nil {
		return err
	}
	if err := h.donations.Register(c.UserContext(), donation); err != nil {
		return err
	}
	return c.JSON(registered)
}

// Query handles GET /Donation/query.
func (h *DonationsHandler) Query(c *fiber.Ctx) error {
	donations, err := h.donations.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, dto.NewDonationResponses(donations))
}

// Stats handles GET /Donation/stats.
func (h *DonationsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.donations.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, dto.NewDonationStatsResponse(stats))
}

// Get handles GET /Donation/:id.
func (h *DonationsHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	donation, err := h.donations.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return data(c, dto.NewDonationResponse(*donation))
}
