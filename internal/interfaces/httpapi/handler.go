package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/livescore/internal/platform/logging"
	"github.com/riskibarqy/livescore/internal/usecase"
)

const welcomeMessage = "Welcome to 24FBLIVESCORE API"

type Handler struct {
	matchService   *usecase.MatchService
	archiveService *usecase.ArchiveService
	logger         *logging.Logger
	validator      *validator.Validate
}

// NewHandler wires the HTTP surface. archiveService may be nil when the archive is disabled.
func NewHandler(
	matchService *usecase.MatchService,
	archiveService *usecase.ArchiveService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:   matchService,
		archiveService: archiveService,
		logger:         logger,
		validator:      newQueryValidator(),
	}
}

// newQueryValidator reports fields by their query parameter name.
func newQueryValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("query"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, welcomeMessage)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusNotFound, errorEnvelope{Error: "Route not found"})
}

// validateQuery runs struct validation and turns the first failing field into a
// client-facing invalid input error.
func (h *Handler) validateQuery(ctx context.Context, query any) error {
	err := h.validator.StructCtx(ctx, query)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return usecase.NewOperationError("invalid query parameters", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
	}

	first := fieldErrs[0]
	return usecase.NewOperationError(
		queryErrorMessage(first.Field(), first.Tag()),
		fmt.Errorf("%w: field=%s tag=%s", usecase.ErrInvalidInput, first.Field(), first.Tag()),
	)
}

func queryErrorMessage(field, tag string) string {
	switch field {
	case "date":
		if tag == "required" {
			return usecase.MsgDateRequired
		}
		return usecase.MsgDateInvalid
	case "fixtureId":
		if tag == "required" {
			return usecase.MsgFixtureRequired
		}
		return usecase.MsgFixtureIDInvalid
	default:
		if tag == "required" {
			return field + " query parameter is required"
		}
		return field + " query parameter is invalid"
	}
}
