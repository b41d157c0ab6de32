// Package advisor asks a language model for business advice about a game
// state snapshot. It only reads state; nothing it returns is dispatched
// automatically.
package advisor

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/tatianab/enterprise-empire/internal/engine"
	"github.com/tatianab/enterprise-empire/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed prompts/advise.txt
var advisePrompt string

const (
	maxRecommendations = 3
	recentFinancials   = 5
)

// ErrEmptyResponse is returned when the model produced no usable advice.
var ErrEmptyResponse = errors.New("advisor: empty response")

// Generator produces a text completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Recommendation is one suggested next step.
type Recommendation struct {
	Action string `yaml:"action"`
	Reason string `yaml:"reason"`
}

// Advice is the parsed model reply.
type Advice struct {
	Summary         string           `yaml:"summary"`
	Recommendations []Recommendation `yaml:"recommendations"`
}

// Advisor renders prompts from game state and parses the replies.
type Advisor struct {
	gen    Generator
	tmpl   *template.Template
	logger *slog.Logger
}

// New returns an advisor backed by gen.
func New(gen Generator, logger *slog.Logger) (*Advisor, error) {
	tmpl, err := template.New("advise").Parse(advisePrompt)
	if err != nil {
		return nil, fmt.Errorf("advisor: parse prompt: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Advisor{gen: gen, tmpl: tmpl, logger: logger}, nil
}

// Advise asks for recommendations about s.
func (a *Advisor) Advise(ctx context.Context, s models.GameState) (*Advice, error) {
	prompt, err := a.render(s)
	if err != nil {
		return nil, err
	}

	text, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("advisor: generate: %w", err)
	}

	advice, err := parseAdvice(text)
	if err != nil {
		a.logger.WarnContext(ctx, "unparseable advice", "err", err)
		return nil, err
	}
	a.logger.DebugContext(ctx, "received advice", "turn", s.CurrentTurn, "recommendations", len(advice.Recommendations))
	return advice, nil
}

func (a *Advisor) render(s models.GameState) (string, error) {
	fin := engine.SelectFinancials(s)
	if len(fin) > recentFinancials {
		fin = fin[len(fin)-recentFinancials:]
	}

	data := struct {
		PlayerName         string
		CompanyName        string
		BusinessType       models.BusinessType
		Difficulty         models.Difficulty
		Turn               int
		Phase              models.GamePhase
		Resources          models.Resources
		Metrics            engine.BusinessMetrics
		RecentFinancials   []models.FinancialRecord
		Campaigns          int
		Activities         int
		Channels           string
		OperationTypes     string
		MaxRecommendations int
	}{
		PlayerName:         engine.SelectPlayer(s).Name,
		CompanyName:        engine.SelectCompany(s).Name,
		BusinessType:       s.Company.BusinessType,
		Difficulty:         s.Difficulty,
		Turn:               engine.SelectCurrentTurn(s),
		Phase:              engine.SelectCurrentPhase(s),
		Resources:          engine.SelectResources(s),
		Metrics:            engine.SelectBusinessMetrics(s),
		RecentFinancials:   fin,
		Campaigns:          len(engine.SelectMarketing(s)),
		Activities:         len(engine.SelectOperations(s)),
		Channels:           joinStrings(models.MarketingChannels),
		OperationTypes:     joinStrings(models.OperationTypes),
		MaxRecommendations: maxRecommendations,
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("advisor: render prompt: %w", err)
	}
	return buf.String(), nil
}

func parseAdvice(text string) (*Advice, error) {
	cleanYAML := strings.TrimSpace(text)
	cleanYAML = strings.TrimPrefix(cleanYAML, "```yaml")
	cleanYAML = strings.TrimPrefix(cleanYAML, "```")
	cleanYAML = strings.TrimSuffix(cleanYAML, "```")
	cleanYAML = strings.TrimSpace(cleanYAML)
	if cleanYAML == "" {
		return nil, ErrEmptyResponse
	}

	var advice Advice
	if err := yaml.Unmarshal([]byte(cleanYAML), &advice); err != nil {
		return nil, fmt.Errorf("advisor: parse yaml: %w\nOutput was: %s", err, cleanYAML)
	}
	if advice.Summary == "" && len(advice.Recommendations) == 0 {
		return nil, ErrEmptyResponse
	}
	if len(advice.Recommendations) > maxRecommendations {
		advice.Recommendations = advice.Recommendations[:maxRecommendations]
	}
	return &advice, nil
}

func joinStrings[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
