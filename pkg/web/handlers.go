package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/stepflow-io/stepflow/pkg/automation"
	"github.com/stepflow-io/stepflow/pkg/services"
	"github.com/stepflow-io/stepflow/pkg/workflow"
)

type APIHandlers struct {
	simulationService *services.Simulation
	reviewService     *services.Review
	registry          *automation.Registry
	validator         *validator.Validate
}

func NewAPIHandlers(
	simulationService *services.Simulation,
	reviewService *services.Review,
	registry *automation.Registry,
	validator *validator.Validate,
) *APIHandlers {
	return &APIHandlers{
		simulationService: simulationService,
		reviewService:     reviewService,
		registry:          registry,
		validator:         validator,
	}
}

// GetAutomations lists the registered automations with their parameter names.
func (h *APIHandlers) GetAutomations(c fiber.Ctx) error {
	return c.JSON(h.registry.Actions())
}

// Simulate runs one validate/order/execute cycle and returns the trace.
// Engine-level failure travels inside the trace with HTTP 200; only a body
// that could not have come from the graph editor is a 400.
func (h *APIHandlers) Simulate(c fiber.Ctx) error {
	body := c.Body()

	violations, err := validateSimulateBody(body)
	if err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if len(violations) > 0 {
		return badRequest(c, "Invalid simulation request: "+strings.Join(violations, "; "))
	}

	var req SimulateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	opts := workflow.Options{}
	if req.Options != nil {
		opts.AutoApproveNodeID = req.Options.AutoApproveNodeID
	}

	trace := h.simulationService.Run(c.Context(), &req.Workflow, opts)

	return c.JSON(trace)
}

// ResolveReview applies a manager decision to a suspended approval review.
func (h *APIHandlers) ResolveReview(c fiber.Ctx) error {
	var req ReviewRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	outcome, err := h.reviewService.Resolve(c.Context(), &req.Workflow, req.Review, req.Prior)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(outcome)
}

// HealthCheck reports the health of the automation registry.
func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	registryCheck, regOk := h.registry.HealthCheck()

	status := "unhealthy"
	message := "Stepflow API is unhealthy"
	httpStatus := http.StatusInternalServerError

	if regOk {
		status = "healthy"
		message = "Stepflow API is healthy"
		httpStatus = http.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"registry": registryCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}
