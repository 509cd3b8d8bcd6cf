package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/alvinbaena/pwd-advisor/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const EnvPrefix = "PWD_ADVISOR"

// Client configures the feedback controller and the service client.
type Client struct {
	ServiceURL string        `mapstructure:"SERVICE_URL" validate:"required,url"`
	Timeout    time.Duration `mapstructure:"TIMEOUT" validate:"gt=0"`
	Retries    int           `mapstructure:"RETRIES" validate:"gte=0,lte=10"`
	Cache      bool          `mapstructure:"CACHE"`
	CacheSize  int64         `mapstructure:"CACHE_SIZE" validate:"required_if=Cache true,gte=0"`
	Policy     string        `mapstructure:"POLICY" validate:"oneof=latest all"`
	Workers    int           `mapstructure:"WORKERS" validate:"gte=1,lte=64"`
	RateLimit  int           `mapstructure:"RATE_LIMIT" validate:"gte=0"`
	Debug      bool          `mapstructure:"DEBUG"`
}

// Server configures the reference evaluation service.
type Server struct {
	Port      uint16 `mapstructure:"PORT" validate:"required"`
	SelfTLS   bool   `mapstructure:"SELF_TLS"`
	TLSCert   string `mapstructure:"TLS_CERT" validate:"required_with=TLSKey,omitempty,file"`
	TLSKey    string `mapstructure:"TLS_KEY" validate:"required_with=TLSCert,omitempty,file"`
	Wordlist  string `mapstructure:"WORDLIST" validate:"omitempty,file"`
	Estimator string `mapstructure:"ESTIMATOR" validate:"oneof=bruteforce zxcvbn"`
	Debug     bool   `mapstructure:"DEBUG"`
}

// Init prepares the global viper instance: environment prefix, defaults and the optional
// config file.
func Init(configFile string) error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	SetDefaults()

	if configFile == "" {
		return nil
	}

	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", configFile, err)
	}
	return nil
}

func SetDefaults() {
	viper.SetDefault("SERVICE_URL", "http://localhost:8080")
	viper.SetDefault("TIMEOUT", 10*time.Second)
	viper.SetDefault("RETRIES", 0)
	viper.SetDefault("CACHE", false)
	viper.SetDefault("CACHE_SIZE", 10000)
	viper.SetDefault("POLICY", "latest")
	viper.SetDefault("WORKERS", 4)
	viper.SetDefault("RATE_LIMIT", 0)
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("ESTIMATOR", "bruteforce")
}

func LoadClient() (Client, error) {
	return load[Client]()
}

func LoadServer() (Server, error) {
	return load[Server]()
}

func load[T any]() (config T, err error) {
	// I hate this, but it works.
	// This is to not require a config file to unmarshal Envs in a struct
	// https://github.com/spf13/viper/issues/188#issuecomment-399884438
	bindEnvs(config)

	if err = viper.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("error reading configuration: %w", err)
	}

	return config, validate(&config)
}

func bindEnvs(iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch v.Kind() {
		case reflect.Struct:
			bindEnvs(v.Interface(), append(parts, tv)...)
		default:
			_ = viper.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func validate(config interface{}) error {
	if err := validator.New().Struct(config); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			var msgs []string
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s: %s", util.ToScreamingSnakeCase(fe.Field()), msgForTag(fe)))
			}
			return errors.New(strings.Join(msgs, ". "))
		}
		return fmt.Errorf("error validating configuration: %w", err)
	}
	return nil
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_if":
		return fmt.Sprintf("This field is required if %s", util.ToScreamingSnakeCase(fe.Param()))
	case "required_with":
		return fmt.Sprintf("This is field requires the presence of %s", util.ToScreamingSnakeCase(fe.Param()))
	case "url":
		return "This field must be an absolute URL"
	case "file":
		return "This field must point to an existing file"
	case "oneof":
		return fmt.Sprintf("This field must be one of [%s]", fe.Param())
	case "gt":
		return fmt.Sprintf("This field must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("This field must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("This field must be at most %s", fe.Param())
	}
	return fe.Error() // default error
}
