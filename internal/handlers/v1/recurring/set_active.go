package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

type SetActiveInput struct {
	ID   string `path:"id" format:"uuid" doc:"Rule UUID"`
	Body struct {
		Active bool `json:"active" required:"true"`
	}
}

type activeSetter interface {
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// SetActiveHandler handles POST /v1/recurring/{id}/active.
type SetActiveHandler struct {
	RecurringService activeSetter
}

func NewSetActiveHandler(svc activeSetter) *SetActiveHandler {
	return &SetActiveHandler{RecurringService: svc}
}

func (h *SetActiveHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "set-recurring-rule-active",
		Method:        http.MethodPost,
		Path:          "/v1/recurring/{id}/active",
		Summary:       "Pause or resume a recurring rule",
		Tags:          []string{"Recurring"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *SetActiveHandler) handle(ctx context.Context, input *SetActiveInput) (*struct{}, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	if err := h.RecurringService.SetActive(ctx, id, input.Body.Active); err != nil {
		return nil, serviceError("failed to update recurring rule", err)
	}
	return nil, nil
}
