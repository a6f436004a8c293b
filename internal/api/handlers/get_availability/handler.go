package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-CampsiteService/internal/usecase/get_availability"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?start=YYYY-MM-DD&end=YYYY-MM-DD
// Тело ответа - массив свободных дат по возрастанию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailability.Request{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidRange),
			errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid request: start=%q, end=%q, %v",
				req.Start, req.End, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability - Failed to get availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d free dates returned", len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, result.Dates)
}
