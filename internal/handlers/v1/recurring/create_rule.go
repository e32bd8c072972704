package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/logging"
	rec "github.com/carson-networks/budget-insights/internal/recurring"
)

type CreateRuleBody struct {
	Title      string `json:"title" required:"true" minLength:"1"`
	Category   string `json:"category" required:"true" minLength:"1"`
	Amount     string `json:"amount" required:"true" doc:"Signed non-zero decimal amount"`
	DayOfMonth int    `json:"dayOfMonth" required:"true" minimum:"1" maximum:"28" doc:"Booking day, capped at 28 so every month has it"`
	Active     *bool  `json:"active,omitempty" doc:"Defaults to true"`
}

type CreateRuleInput struct {
	Body CreateRuleBody
}

type CreateRuleOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"UUID of the created rule"`
	}
}

type ruleCreator interface {
	CreateRule(ctx context.Context, rule rec.Rule) (uuid.UUID, error)
}

// CreateRuleHandler handles POST /v1/recurring.
type CreateRuleHandler struct {
	RecurringService ruleCreator
}

func NewCreateRuleHandler(svc ruleCreator) *CreateRuleHandler {
	return &CreateRuleHandler{RecurringService: svc}
}

func (h *CreateRuleHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-recurring-rule",
		Method:        http.MethodPost,
		Path:          "/v1/recurring",
		Summary:       "Create recurring rule",
		Tags:          []string{"Recurring"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateRuleInput(input *CreateRuleInput) (rec.Rule, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return rec.Rule{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	active := true
	if input.Body.Active != nil {
		active = *input.Body.Active
	}
	return rec.Rule{
		Title:      input.Body.Title,
		Category:   input.Body.Category,
		Amount:     amount,
		DayOfMonth: input.Body.DayOfMonth,
		Active:     active,
	}, nil
}

func (h *CreateRuleHandler) handle(ctx context.Context, input *CreateRuleInput) (*CreateRuleOutput, error) {
	rule, err := parseCreateRuleInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("createRecurringRuleMs")
	id, err := h.RecurringService.CreateRule(ctx, rule)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to create recurring rule", err)
	}

	out := &CreateRuleOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}
