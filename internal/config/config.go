package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	AppName   = "csv-import-guard"
	EnvPrefix = "CSVGUARD"
	FileName  = "csv-import-guard" // searched as csv-import-guard.yaml
)

// Output formats understood by the validate command.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	// Locale selects the language of check descriptions and messages.
	Locale  string `mapstructure:"locale" validate:"required,bcp47"`
	Output  string `mapstructure:"output" validate:"oneof=text json yaml"`
	Verbose bool   `mapstructure:"verbose"`
	Debug   bool   `mapstructure:"debug"`
}

func Default() Config {
	return Config{
		Locale: "es",
		Output: OutputText,
	}
}

// Dir is where the config file is looked up after the working directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Setup prepares v for Load. An explicit cfgFile replaces the search paths.
func Setup(v *viper.Viper, cfgFile string) {
	d := Default()
	v.SetDefault("locale", d.Locale)
	v.SetDefault("output", d.Output)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("debug", d.Debug)

	// CSVGUARD_LOCALE, CSVGUARD_OUTPUT, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return
	}
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(Dir())
}

// Load reads the config file if there is one, then env and bound flags on top.
// A missing config file in the search paths is fine, a broken one is not.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("bcp47", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", strings.ToLower(fe.Field()), fe.Value(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
