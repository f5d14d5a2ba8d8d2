package config

import (
	"time"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	Entitlement EntitlementConfig `yaml:"entitlement"`
	Memory      MemoryConfig      `yaml:"memory"`
	Insight     InsightConfig     `yaml:"insight"`
	Risk        RiskConfig        `yaml:"risk"`
	Alerts      AlertsConfig      `yaml:"alerts"`
	Briefing    BriefingConfig    `yaml:"briefing"`
	LLM         LLMConfig         `yaml:"llm"`
	Embedding   EmbeddingConfig   `yaml:"embedding"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access-token validation settings. Tokens are issued
// by the external session service; this service only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"assistant"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// EntitlementConfig holds plan tier limits and usage retention.
type EntitlementConfig struct {
	StandardDailyCalls int `yaml:"standard_daily_calls" env:"ENTITLEMENT_STANDARD_DAILY_CALLS" env-default:"10"`
	ProDailyCalls      int `yaml:"pro_daily_calls"      env:"ENTITLEMENT_PRO_DAILY_CALLS"      env-default:"100"`
	// MaxDailyCalls of -1 means unlimited.
	MaxDailyCalls      int `yaml:"max_daily_calls"      env:"ENTITLEMENT_MAX_DAILY_CALLS"      env-default:"-1"`
	UsageRetentionDays int `yaml:"usage_retention_days" env:"ENTITLEMENT_USAGE_RETENTION_DAYS" env-default:"90"`
}

// MemoryConfig holds semantic memory settings.
type MemoryConfig struct {
	EmbeddingDims        int     `yaml:"embedding_dims"         env:"MEMORY_EMBEDDING_DIMS"         env-default:"1536"`
	DefaultMinSimilarity float64 `yaml:"default_min_similarity" env:"MEMORY_DEFAULT_MIN_SIMILARITY" env-default:"0.7"`
	DefaultSearchLimit   int     `yaml:"default_search_limit"   env:"MEMORY_DEFAULT_SEARCH_LIMIT"   env-default:"5"`
	MaxSearchLimit       int     `yaml:"max_search_limit"       env:"MEMORY_MAX_SEARCH_LIMIT"       env-default:"50"`
	DefaultRecentLimit   int     `yaml:"default_recent_limit"   env:"MEMORY_DEFAULT_RECENT_LIMIT"   env-default:"20"`
}

// Insight dispatcher kinds.
const (
	DispatcherInProcess = "inprocess"
	DispatcherAsynq     = "asynq"
)

// InsightConfig holds conversation insight extraction settings.
type InsightConfig struct {
	WindowSize    int     `yaml:"window_size"    env:"INSIGHT_WINDOW_SIZE"    env-default:"10"`
	MaxCandidates int     `yaml:"max_candidates" env:"INSIGHT_MAX_CANDIDATES" env-default:"5"`
	MinImportance float64 `yaml:"min_importance" env:"INSIGHT_MIN_IMPORTANCE" env-default:"0.3"`
	Dispatcher    string  `yaml:"dispatcher"     env:"INSIGHT_DISPATCHER"     env-default:"inprocess"`
	MaxInFlight   int64   `yaml:"max_in_flight"  env:"INSIGHT_MAX_IN_FLIGHT"  env-default:"16"`
	RedisAddr     string  `yaml:"redis_addr"     env:"INSIGHT_REDIS_ADDR"     env-default:"localhost:6379"`
	Queue         string  `yaml:"queue"          env:"INSIGHT_QUEUE"          env-default:"insights"`
	Concurrency   int     `yaml:"concurrency"    env:"INSIGHT_CONCURRENCY"    env-default:"4"`
}

// RiskConfig holds schedule risk rule parameters.
type RiskConfig struct {
	HighStakesKeywordsRaw     string `yaml:"high_stakes_keywords"        env:"RISK_HIGH_STAKES_KEYWORDS"        env-default:"presentation,meeting,interview,exam,pitch,review,발표,회의,면접,시험,미팅"`
	DefaultPreparationMinutes int    `yaml:"default_preparation_minutes" env:"RISK_DEFAULT_PREPARATION_MINUTES" env-default:"60"`
	DefaultDurationMinutes    int    `yaml:"default_duration_minutes"    env:"RISK_DEFAULT_DURATION_MINUTES"    env-default:"60"`
	OverloadThresholdMinutes  int    `yaml:"overload_threshold_minutes"  env:"RISK_OVERLOAD_THRESHOLD_MINUTES"  env-default:"720"`
	ReportAllConflicts        bool   `yaml:"report_all_conflicts"        env:"RISK_REPORT_ALL_CONFLICTS"        env-default:"false"`

	// HighStakesKeywords is parsed from HighStakesKeywordsRaw during validation.
	HighStakesKeywords []string `yaml:"-" env:"-"`
}

// AlertsConfig holds alert ledger settings.
type AlertsConfig struct {
	PageSize int `yaml:"page_size" env:"ALERTS_PAGE_SIZE" env-default:"10"`
}

// BriefingConfig holds briefing composer settings.
type BriefingConfig struct {
	MemoryTopK int `yaml:"memory_top_k" env:"BRIEFING_MEMORY_TOP_K" env-default:"3"`
	MaxItems   int `yaml:"max_items"    env:"BRIEFING_MAX_ITEMS"    env-default:"20"`
}

// LLMConfig holds reasoning service settings.
type LLMConfig struct {
	APIKey    string `yaml:"api_key"    env:"LLM_API_KEY"`
	Model     string `yaml:"model"      env:"LLM_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64  `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"2048"`
}

// EmbeddingConfig holds embedding service settings. Any OpenAI-compatible
// endpoint works.
type EmbeddingConfig struct {
	APIKey  string `yaml:"api_key"  env:"EMBEDDING_API_KEY"`
	BaseURL string `yaml:"base_url" env:"EMBEDDING_BASE_URL"`
	Model   string `yaml:"model"    env:"EMBEDDING_MODEL"    env-default:"text-embedding-3-small"`
}

// Catalog returns the built-in plan templates with the configured daily limits.
func (c EntitlementConfig) Catalog() domain.PlanCatalog {
	catalog := domain.DefaultPlanCatalog()

	override := func(tier domain.PlanTier, limit int) {
		spec := catalog[tier]
		spec.DailyCallLimit = limit
		catalog[tier] = spec
	}
	override(domain.PlanTierStandard, c.StandardDailyCalls)
	override(domain.PlanTierPro, c.ProDailyCalls)
	override(domain.PlanTierMax, c.MaxDailyCalls)

	return catalog
}
