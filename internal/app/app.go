package app

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/bodrovis/csv-import-guard/internal/checks"
	"github.com/bodrovis/csv-import-guard/internal/config"
	"github.com/bodrovis/csv-import-guard/internal/logging"
	"github.com/bodrovis/csv-import-guard/pkg/validator"
)

// App is the state shared by all commands of one CLI invocation.
type App struct {
	Viper     *viper.Viper
	Fs        afero.Fs
	Config    config.Config
	Logger    *log.Logger
	Validator *validator.Validator
}

func New() *App {
	return &App{
		Viper:     viper.New(),
		Fs:        afero.NewOsFs(),
		Config:    config.Default(),
		Logger:    logging.Discard(),
		Validator: validator.New(),
	}
}

// Load reads the configuration and rebuilds the logger and validator from it.
func (a *App) Load(cfgFile string, logOut io.Writer) error {
	config.Setup(a.Viper, cfgFile)
	cfg, err := config.Load(a.Viper)
	if err != nil {
		return err
	}

	a.Config = cfg
	a.Logger = logging.New(logOut, cfg.Debug)
	a.Validator = validator.New(
		validator.WithLogger(a.Logger),
		validator.WithLocale(checks.ResolveLocale(cfg.Locale)),
	)

	a.Logger.Debug("Configuration loaded",
		"file", a.Viper.ConfigFileUsed(),
		"locale", cfg.Locale,
		"output", cfg.Output,
	)
	return nil
}
