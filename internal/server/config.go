package server

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goto/salt/config"
	"github.com/joho/godotenv"
	defaults "github.com/mcuadros/go-defaults"

	"github.com/goto/remark/internal/store"
	"github.com/goto/remark/pkg/identity"
	pkghttp "github.com/goto/remark/pkg/http"
	"github.com/goto/remark/pkg/opentelemetry"
	"github.com/goto/remark/pkg/parent"
	"github.com/goto/remark/pkg/slices"
)

const (
	envPrefix = "REMARK"

	AuthProviderStatic = "static"
	AuthProviderJWT    = "jwt"
	AuthProviderHTTP   = "http"

	AuditDriverNoop  = "noop"
	AuditDriverRedis = "redis"
)

type StaticCaller struct {
	ID   string `mapstructure:"id" yaml:"id" validate:"required"`
	Name string `mapstructure:"name" yaml:"name"`
}

type JWTAuth struct {
	Secret string `mapstructure:"secret" yaml:"secret"`
	Issuer string `mapstructure:"issuer" yaml:"issuer"`
}

type Auth struct {
	// HeaderKey carries the caller token; the Bearer scheme is expected when
	// it is Authorization.
	HeaderKey string                      `mapstructure:"header_key" yaml:"header_key" default:"Authorization"`
	Provider  string                      `mapstructure:"provider" yaml:"provider" default:"static" validate:"oneof=static jwt http"`
	Static    map[string]StaticCaller     `mapstructure:"static" yaml:"static" validate:"dive"`
	JWT       JWTAuth                     `mapstructure:"jwt" yaml:"jwt"`
	HTTP      identity.HTTPResolverConfig `mapstructure:"http" yaml:"http"`
	CacheTTL  time.Duration               `mapstructure:"cache_ttl" yaml:"cache_ttl" default:"1m"`
}

type ParentType struct {
	Name      string        `mapstructure:"name" yaml:"name" validate:"required"`
	Validator parent.Config `mapstructure:"validator" yaml:"validator"`
}

type Comments struct {
	EnforceParentExists bool          `mapstructure:"enforce_parent_exists" yaml:"enforce_parent_exists" default:"false"`
	DefaultTimeout      time.Duration `mapstructure:"default_timeout" yaml:"default_timeout" default:"10s"`
	MaxRequestTimeout   time.Duration `mapstructure:"max_request_timeout" yaml:"max_request_timeout" default:"30s"`
}

type Audit struct {
	Driver string `mapstructure:"driver" yaml:"driver" default:"noop" validate:"oneof=noop redis"`
	Stream string `mapstructure:"stream" yaml:"stream" default:"remark:audit"`
	MaxLen int64  `mapstructure:"max_len" yaml:"max_len" default:"100000"`
}

type Config struct {
	Port        int    `mapstructure:"port" yaml:"port" default:"8080"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" default:"info"`
	LogFormat   string `mapstructure:"log_format" yaml:"log_format" default:"json" validate:"oneof=json text"`
	NodeID      int64  `mapstructure:"node_id" yaml:"node_id" default:"1" validate:"min=0,max=1023"`
	AdminAPIKey string `mapstructure:"admin_api_key" yaml:"admin_api_key"`

	DB           store.Config         `mapstructure:"db" yaml:"db"`
	Auth         Auth                 `mapstructure:"auth" yaml:"auth"`
	ParentTypes  []ParentType         `mapstructure:"parent_types" yaml:"parent_types" validate:"dive"`
	Comments     Comments             `mapstructure:"comments" yaml:"comments"`
	Audit        Audit                `mapstructure:"audit" yaml:"audit"`
	OutboundHTTP pkghttp.ClientConfig `mapstructure:"outbound_http" yaml:"outbound_http"`
	Telemetry    opentelemetry.Config `mapstructure:"telemetry" yaml:"telemetry"`
}

// LoadConfig reads a .env file when present, then the config file, then
// REMARK_ prefixed environment variables.
func LoadConfig(configFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	loader := config.NewLoader(
		config.WithFile(configFile),
		config.WithEnvPrefix(envPrefix),
		config.WithEnvKeyReplacer(".", "_"),
	)

	if err := loader.Load(&cfg); err != nil {
		if !errors.As(err, &config.ConfigFileNotFoundError{}) {
			return Config{}, err
		}
		fmt.Println(err)
		defaults.SetDefaults(&cfg)
	}

	for i := range cfg.ParentTypes {
		defaults.SetDefaults(&cfg.ParentTypes[i].Validator)
	}
	if len(cfg.ParentTypes) == 0 {
		cfg.ParentTypes = DefaultParentTypes()
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	names := make([]string, 0, len(cfg.ParentTypes))
	for _, pt := range cfg.ParentTypes {
		names = append(names, pt.Name)
	}
	if dup := slices.GenericsDuplicateValues(names); len(dup) > 0 {
		return Config{}, fmt.Errorf("invalid config: duplicate parent types %v", dup)
	}
	return cfg, nil
}

// DefaultConfig is the configuration used when no file is present.
func DefaultConfig() Config {
	var cfg Config
	defaults.SetDefaults(&cfg)
	cfg.ParentTypes = DefaultParentTypes()
	return cfg
}

func DefaultParentTypes() []ParentType {
	return []ParentType{
		{Name: "question", Validator: parent.Config{Type: parent.ValidatorTypeNone}},
		{Name: "project", Validator: parent.Config{Type: parent.ValidatorTypeNone}},
	}
}
