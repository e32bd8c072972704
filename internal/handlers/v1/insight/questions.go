package insight

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/agent"
)

type Question struct {
	ID    string `json:"id" doc:"Identifier to send to the ask endpoint"`
	Title string `json:"title" doc:"Display title"`
	Icon  string `json:"icon" doc:"Icon hint for clients"`
}

type ListQuestionsOutput struct {
	Body struct {
		Questions []Question `json:"questions" doc:"Supported questions in display order"`
	}
}

type questionLister interface {
	Questions() []agent.QuestionInfo
}

// ListQuestionsHandler handles GET /v1/insight/questions.
type ListQuestionsHandler struct {
	InsightService questionLister
}

func NewListQuestionsHandler(svc questionLister) *ListQuestionsHandler {
	return &ListQuestionsHandler{InsightService: svc}
}

func (h *ListQuestionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-questions",
		Method:      http.MethodGet,
		Path:        "/v1/insight/questions",
		Summary:     "List questions",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *ListQuestionsHandler) handle(ctx context.Context, _ *struct{}) (*ListQuestionsOutput, error) {
	infos := h.InsightService.Questions()
	out := &ListQuestionsOutput{}
	out.Body.Questions = make([]Question, len(infos))
	for i, info := range infos {
		out.Body.Questions[i] = Question{ID: string(info.ID), Title: info.Title, Icon: info.Icon}
	}
	return out, nil
}
