package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/coworker-service/internal/api/dto"
	"github.com/spec-kit/coworker-service/internal/domain"
	"github.com/spec-kit/coworker-service/internal/service"
	apperrors "github.com/spec-kit/coworker-service/pkg/util/errorutil"
)

// CoworkersHandler exposes coworker and department endpoints.
type CoworkersHandler struct {
	service *service.CoworkerService
}

// NewCoworkersHandler constructs handler.
func NewCoworkersHandler(coworkerService *service.CoworkerService) *CoworkersHandler {
	return &CoworkersHandler{service: coworkerService}
}

// CreateCoworker POST /coworkers.
func (h *CoworkersHandler) CreateCoworker(c *fiber.Ctx) error {
	var req dto.CreateCoworkerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Salary == nil {
		return apperrors.NewValidationError("salary required", nil)
	}

	coworker, err := h.service.CreateCoworker(c.UserContext(), service.CoworkerCreateInput{
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Salary:     *req.Salary,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(coworkerResponse(coworker))
}

// ListCoworkers GET /coworkers.
func (h *CoworkersHandler) ListCoworkers(c *fiber.Ctx) error {
	coworkers, err := h.service.ListCoworkers(c.UserContext(), service.CoworkerListFilter{
		Search:     c.Query("search"),
		Department: c.Query("department"),
	})
	if err != nil {
		return err
	}
	items := make([]dto.CoworkerResponse, 0, len(coworkers))
	for i := range coworkers {
		items = append(items, coworkerResponse(&coworkers[i]))
	}
	return c.JSON(items)
}

// GetCoworker GET /coworkers/:id.
func (h *CoworkersHandler) GetCoworker(c *fiber.Ctx) error {
	coworker, err := h.service.GetCoworker(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(coworkerResponse(coworker))
}

// ListDepartments GET /departments.
func (h *CoworkersHandler) ListDepartments(c *fiber.Ctx) error {
	names, err := h.service.ListDepartmentNames(c.UserContext())
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(dto.DepartmentsResponse{Departments: names})
}

func coworkerResponse(cw *domain.Coworker) dto.CoworkerResponse {
	return dto.CoworkerResponse{
		ID:         cw.ID,
		Name:       cw.Name,
		Role:       cw.Role,
		Department: cw.Department,
		Salary:     cw.Salary,
	}
}
