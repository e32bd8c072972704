package agent

import (
	"errors"
	"fmt"
)

var ErrUnknownQuestion = errors.New("agent: unknown question")

// Question identifies one of the fixed questions the agent can answer.
type Question string

const (
	MonthlySummary    Question = "monthlySummary"
	CompareToAverage  Question = "compareToAverage"
	TopExpenses       Question = "topExpenses"
	Warnings          Question = "warnings"
	ForecastNextMonth Question = "forecastNextMonth"
	WorstSpendingDay  Question = "worstSpendingDay"
	RiskyWeekdays     Question = "riskyWeekdays"
	WeekendSpending   Question = "weekendSpending"
)

// QuestionInfo describes a question for clients building a picker.
type QuestionInfo struct {
	ID    Question
	Title string
	Icon  string
}

var catalog = []QuestionInfo{
	{ID: MonthlySummary, Title: "How am I doing this month?", Icon: "chart.bar"},
	{ID: CompareToAverage, Title: "Compared to my average", Icon: "arrow.left.arrow.right"},
	{ID: TopExpenses, Title: "Biggest expenses", Icon: "list.number"},
	{ID: Warnings, Title: "Warnings and risks", Icon: "exclamationmark.triangle"},
	{ID: ForecastNextMonth, Title: "Next month estimate", Icon: "calendar.badge.clock"},
	{ID: WorstSpendingDay, Title: "Which day did I spend the most?", Icon: "calendar.badge.exclamationmark"},
	{ID: RiskyWeekdays, Title: "Which weekdays are risky?", Icon: "chart.bar.xaxis"},
	{ID: WeekendSpending, Title: "How do I spend on weekends?", Icon: "sun.max"},
}

// Questions returns the question catalog in display order.
func Questions() []QuestionInfo {
	out := make([]QuestionInfo, len(catalog))
	copy(out, catalog)
	return out
}

func (q Question) Valid() bool {
	_, ok := rules[q]
	return ok
}

// Title returns the display title of q, or its raw identifier when unknown.
func (q Question) Title() string {
	for _, info := range catalog {
		if info.ID == q {
			return info.Title
		}
	}
	return string(q)
}

func ParseQuestion(s string) (Question, error) {
	q := Question(s)
	if !q.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownQuestion, s)
	}
	return q, nil
}
