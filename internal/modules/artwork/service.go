package artwork

import (
	"context"
	"errors"
	"strings"

	"github.com/nightmare-ai/core/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"
)

// Service renders the share-pack image through the OpenAI Images API.
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

// GenerateImage returns one base64-encoded portrait frame for the dream.
// Vertical 1024x1536 crops cleanly for the share pack.
func (s *Service) GenerateImage(ctx context.Context, dream string) (string, error) {
	prompt := BuildImagePrompt(SoftenDream(dream))

	resp, err := s.client.Images.Generate(ctx, openaiclient.ImageGenerateParams{
		Model:  openaiclient.ImageModel(s.cfg.OpenAI.ImageModel),
		Prompt: prompt,
		Size:   openaiclient.ImageGenerateParamsSize1024x1536,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", errors.New("empty image response")
	}
	return resp.Data[0].B64JSON, nil
}
