package reading

import (
	"context"
	"errors"
	"strings"

	"github.com/nightmare-ai/core/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/responses"
	"github.com/openai/openai-go/v2/shared"
	"go.uber.org/zap"
)

const (
	shortTemperature = 0.58
	shortMaxTokens   = 170
	deepTemperature  = 0.62
	deepMaxTokens    = 900
)

// Service generates readings through the OpenAI Responses API. One outbound
// call per operation; no retries.
type Service struct {
	cfg    *config.AppConfig
	logger *zap.Logger
	client openaiclient.Client
}

func NewService(cfg *config.AppConfig, logger *zap.Logger) *Service {
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(cfg.OpenAI.APIKey),
		openaioption.WithMaxRetries(0),
	}
	if endpoint := strings.TrimSpace(cfg.OpenAI.Endpoint); endpoint != "" {
		opts = append(opts, openaioption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}
	return &Service{cfg: cfg, logger: logger, client: openaiclient.NewClient(opts...)}
}

// ShortReading returns the free 2–3 sentence reading, emphasis stripped.
func (s *Service) ShortReading(ctx context.Context, dream string) (string, error) {
	text, err := s.generate(ctx, s.cfg.OpenAI.ShortModel, BuildShortPrompt(dream), shortTemperature, shortMaxTokens)
	if err != nil {
		return "", err
	}
	return stripEmphasis(text), nil
}

// DeepReading returns the full multi-section reading plus its structured
// section view. The <SITE_URL> placeholder is resolved against the configured
// site origin before parsing, so the caption carries the real CTA link.
func (s *Service) DeepReading(ctx context.Context, dream string) (string, Sections, error) {
	text, err := s.generate(ctx, s.cfg.OpenAI.DeepModel, BuildDeepPrompt(dream), deepTemperature, deepMaxTokens)
	if err != nil {
		return "", Sections{}, err
	}
	text = stripEmphasis(text)
	text = strings.ReplaceAll(text, SiteURLToken, s.cfg.SiteURL)
	return text, AssembleSections(text), nil
}

func (s *Service) generate(ctx context.Context, model, prompt string, temperature float64, maxTokens int64) (string, error) {
	resp, err := s.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:           shared.ResponsesModel(model),
		Input:           responses.ResponseNewParamsInputUnion{OfString: openaiclient.String(prompt)},
		Temperature:     openaiclient.Float(temperature),
		MaxOutputTokens: openaiclient.Int(maxTokens),
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.OutputText())
	if text == "" {
		return "", errors.New("empty response from AI")
	}
	return text, nil
}
