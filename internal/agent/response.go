package agent

import (
	"fmt"
)

// Severity classifies the tone of a single bullet.
type Severity int

const (
	Info Severity = iota
	Warning
	Positive
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Positive:
		return "positive"
	default:
		return "info"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "info":
		*s = Info
	case "warning":
		*s = Warning
	case "positive":
		*s = Positive
	default:
		return fmt.Errorf("agent: unknown severity %q", string(text))
	}
	return nil
}

type Bullet struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Response is a titled list of findings.
type Response struct {
	Title   string   `json:"title"`
	Bullets []Bullet `json:"bullets"`
}

// Empty is the answer to every question when there are no transactions at all.
func Empty() Response {
	return Response{
		Title:   "No data",
		Bullets: []Bullet{info("You have no transactions to answer from yet.")},
	}
}

// HasSeverity reports whether any bullet carries s.
func (r Response) HasSeverity(s Severity) bool {
	for _, b := range r.Bullets {
		if b.Severity == s {
			return true
		}
	}
	return false
}

func info(text string) Bullet {
	return Bullet{Text: text, Severity: Info}
}

func warning(text string) Bullet {
	return Bullet{Text: text, Severity: Warning}
}

func positive(text string) Bullet {
	return Bullet{Text: text, Severity: Positive}
}
