package infra

import (
	"encoding/json"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix env prefix for viper
const EnvPrefix = "ELEARN"

// runtime environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// AppConfig App option object
type AppConfig struct {
	AppID          string        `mapstructure:"app_id" json:"app_id" yaml:"app_id" validate:"required"` // Application ID
	Host           string        `mapstructure:"host" json:"host" yaml:"host"`                           // bind host address
	Port           int           `mapstructure:"port" json:"port" yaml:"port"`                           // bind listen port
	Env            string        `mapstructure:"env" json:"env" yaml:"env" validate:"oneof=development production"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" json:"request_timeout" yaml:"request_timeout"`
	Authority      struct {
		BaseURL string        `mapstructure:"base_url" json:"base_url" yaml:"base_url" validate:"required,url"` // remote authority API root
		Timeout time.Duration `mapstructure:"timeout" json:"timeout" yaml:"timeout"`                            // per-call transport timeout
	} `mapstructure:"authority" json:"authority" yaml:"authority"`
	Notification struct {
		PollInterval time.Duration `mapstructure:"poll_interval" json:"poll_interval" yaml:"poll_interval"` // badge refresh interval
	} `mapstructure:"notification" json:"notification" yaml:"notification"`
	Logging struct {
		FilePath string `mapstructure:"file_path" json:"file_path" yaml:"file_path"`                            // log file path
		Level    string `mapstructure:"level" json:"level" yaml:"level" validate:"oneof=debug info warn error"` // global logging level
	} `mapstructure:"logging" json:"logging" yaml:"logging"`
	Security struct {
		JWTMethod string `mapstructure:"jwt_method" json:"jwt_method" yaml:"jwt_method" validate:"oneof=HS256 HS512 ES256"`
		JWTSecret string `mapstructure:"jwt_secret" json:"jwt_secret" yaml:"jwt_secret" validate:"required"`
		TokenName string `mapstructure:"token_name" json:"token_name" yaml:"token_name" validate:"required"` // session token cookie name
		IDLength  int    `mapstructure:"id_length" json:"id_length" yaml:"id_length"`                        // length of generated request IDs
	} `mapstructure:"security" json:"security" yaml:"security"`
	KVStore struct {
		Host     string `mapstructure:"host" json:"host" yaml:"host"`                                 // bind host address
		Port     int    `mapstructure:"port" json:"port" yaml:"port"`                                 // bind listen port
		Password string `mapstructure:"password" json:"password" yaml:"password" validate:"required"` // password for security reasons
	} `mapstructure:"kv" json:"kv" yaml:"kv"`
	DevOP struct {
		APM bool `mapstructure:"apm" json:"apm" yaml:"apm"`
	} `mapstructure:"devop" json:"devop" yaml:"devop"`
}

// InitConfig init app config using viper
func InitConfig() (*AppConfig, error) {
	// app
	pflag.String("host", "", "binding address")
	pflag.String("app_id", "", "application identifier (required)")
	pflag.String("env", "development", "runtime environment, can be 'development' or 'production'")
	pflag.Int("port", 8081, "listening port")
	pflag.Duration("request_timeout", 30*time.Second, "per-request handling deadline")

	// remote authority
	pflag.String("authority.base_url", "", "content authority API root (required)")
	pflag.Duration("authority.timeout", 10*time.Second, "authority call timeout")

	// notification
	pflag.Duration("notification.poll_interval", 30*time.Second, "unread badge poll interval")

	// logging
	pflag.String("logging.level", "info", "logging level")
	pflag.String("logging.file_path", "", "log to file")

	// security
	pflag.String("security.jwt_method", "HS256", "hash algorithm used for session tokens")
	pflag.String("security.jwt_secret", "", "session token secret (required)")
	pflag.String("security.token_name", "", "cookie name carrying the session token (required)")
	pflag.Int("security.id_length", 24, "set length of generated request IDs")

	// kv storage
	pflag.String("kv.host", "127.0.0.1", "kv host")
	pflag.Int("kv.port", 6379, "kv server port")
	pflag.String("kv.password", "", "kv server password (required)")

	// DevOp
	pflag.Bool("devop.apm", false, "enable apm metrics")

	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config = new(AppConfig)
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	if config.Logging.Level == "debug" {
		if configJSON, err := json.MarshalIndent(config, "", "  "); err == nil {
			log.Printf("App config: %s\n", string(configJSON))
		}
	}
	return config, nil
}

func validateConfig(config *AppConfig) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "-" || name == "" {
			name = fld.Tag.Get("yaml")
			if name == "-" || name == "" {
				return ""
			}
		}
		return name
	})
	err := validate.Struct(config)
	if _, ok := err.(*validator.InvalidValidationError); ok {
		log.Fatalf("Failed to validate config: %s", err)
	}
	if err == nil {
		return nil
	}

	var msg []string
	for _, field := range err.(validator.ValidationErrors) {
		namespace := field.Namespace()
		fieldName := namespace[strings.IndexByte(namespace, '.')+1:] // trim top level namespace
		switch field.Tag() {
		case "required":
			msg = append(msg, fmt.Sprintf("%s is required", fieldName))
		case "oneof":
			msg = append(msg, fmt.Sprintf("%s must be one of (%s)", fieldName, field.Param()))
		case "url":
			msg = append(msg, fmt.Sprintf("%s must be a valid URL", fieldName))
		}
	}
	if len(msg) > 0 {
		return fmt.Errorf("failed to validate config: \n%s", strings.Join(msg, "\n"))
	}
	return nil
}
