package insight

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/agent"
	"github.com/carson-networks/budget-insights/internal/logging"
)

type AskBody struct {
	Question string `json:"question" required:"true" minLength:"1" doc:"Question identifier from the questions endpoint"`
	Month    string `json:"month,omitempty" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Reference month as YYYY-MM, defaults to the current month"`
}

type AskInput struct {
	Body AskBody
}

type Bullet struct {
	Text     string `json:"text"`
	Severity string `json:"severity" enum:"info,warning,positive"`
}

type AskResponse struct {
	Question string   `json:"question"`
	Title    string   `json:"title"`
	Bullets  []Bullet `json:"bullets"`
}

type AskOutput struct {
	Body AskResponse
}

type questionAnswerer interface {
	Ask(ctx context.Context, q agent.Question, referenceMonth time.Time) (agent.Response, error)
}

// AskHandler handles POST /v1/insight/ask.
type AskHandler struct {
	InsightService questionAnswerer
	Location       *time.Location
}

func NewAskHandler(svc questionAnswerer, loc *time.Location) *AskHandler {
	return &AskHandler{InsightService: svc, Location: orUTC(loc)}
}

func (h *AskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "ask-question",
		Method:      http.MethodPost,
		Path:        "/v1/insight/ask",
		Summary:     "Ask a question",
		Description: "Answers one of the fixed questions against all stored transactions.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *AskHandler) handle(ctx context.Context, input *AskInput) (*AskOutput, error) {
	logData := logging.GetLogData(ctx)

	q, err := agent.ParseQuestion(input.Body.Question)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "unknown question", err)
	}
	month, err := parseMonth(input.Body.Month, h.Location)
	if err != nil {
		return nil, err
	}
	logData.AddData("question", string(q))

	stopTimer := logData.AddTiming("askMs")
	resp, err := h.InsightService.Ask(ctx, q, month)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to answer question", err)
	}

	body := AskResponse{
		Question: string(q),
		Title:    resp.Title,
		Bullets:  make([]Bullet, len(resp.Bullets)),
	}
	for i, b := range resp.Bullets {
		body.Bullets[i] = Bullet{Text: b.Text, Severity: b.Severity.String()}
	}
	return &AskOutput{Body: body}, nil
}
