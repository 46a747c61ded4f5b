package config

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int          `yaml:"port"`
	Env            string       `yaml:"env"` // "development" | "production"
	SiteURL        string       `yaml:"site_url"`
	AllowedOrigins []string     `yaml:"allowed_origins"`
	FreeDailyLimit int          `yaml:"free_daily_limit"`
	OpenAI         OpenAIConfig `yaml:"openai"`
	Stripe         StripeConfig `yaml:"stripe"`
}

// OpenAIConfig configures the generation upstream.
type OpenAIConfig struct {
	APIKey     string `yaml:"api_key"`
	Endpoint   string `yaml:"endpoint"` // optional base URL override
	ShortModel string `yaml:"short_model"`
	DeepModel  string `yaml:"deep_model"`
	ImageModel string `yaml:"image_model"`
}

// StripeConfig configures hosted checkout.
type StripeConfig struct {
	SecretKey   string `yaml:"secret_key"`
	Currency    string `yaml:"currency"`
	UnitAmount  int64  `yaml:"unit_amount"` // minor units
	ProductName string `yaml:"product_name"`
}

// IsDev reports whether the server runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env != "production"
}
