package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/pot-code/elearn-bff/internal/gate"
	"github.com/pot-code/elearn-bff/internal/identity"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
	"github.com/pot-code/elearn-bff/internal/infrastructure/validate"
)

// GateHandler route admission operations
type GateHandler struct {
	identityResolver *identity.Resolver
	jwtUtil          *auth.JWTUtil
	validator        validate.Validator
}

// NewGateHandler create a gate controller instance
func NewGateHandler(
	IdentityResolver *identity.Resolver,
	JWTUtil *auth.JWTUtil,
	Validator validate.Validator,
) *GateHandler {
	return &GateHandler{IdentityResolver, JWTUtil, Validator}
}

type gateRequest struct {
	RouteClass string `json:"route_class" validate:"required"`
}

// HandleDecide evaluate route admission for one navigation. An unknown
// route class is not an error; it takes the unmatched-route fallback.
func (gh *GateHandler) HandleDecide(c echo.Context) error {
	post := new(gateRequest)
	if err := c.Bind(post); err != nil {
		internal := err.(*echo.HTTPError).Internal
		return c.JSON(http.StatusUnprocessableEntity,
			NewRESTStandardError(http.StatusUnprocessableEntity, internal.Error()))
	}
	if err := gh.validator.Struct(post); err != nil {
		return c.JSON(http.StatusBadRequest,
			NewRESTValidationError(http.StatusBadRequest, "Failed to validate fields", err))
	}

	viewer := resolveViewer(gh.jwtUtil, gh.identityResolver, c)
	decision := gate.Decide(domain.RouteClass(post.RouteClass), viewer)
	return c.JSON(http.StatusOK, decision)
}
