package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bodrovis/csv-import-guard/cmd/pick"
	"github.com/bodrovis/csv-import-guard/cmd/validate"
	"github.com/bodrovis/csv-import-guard/internal/app"
)

var version = "dev"

func RootCmd() *cobra.Command {
	return NewRootCmd(app.New())
}

func NewRootCmd(a *app.App) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "csv-import-guard",
		Short: "Check CSV files before importing them",
		Long: `csv-import-guard checks CSV files before they are imported.

A file is importable only when it has a .csv extension, is not empty,
contains no empty rows and uses semicolons (;) as its field separator.`,
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Load(cfgFile, cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Path to the config file")
	flags.String("locale", "es", "Language of check descriptions (es, en)")
	flags.Bool("debug", false, "Enable debug logging")
	cobra.CheckErr(a.Viper.BindPFlag("locale", flags.Lookup("locale")))
	cobra.CheckErr(a.Viper.BindPFlag("debug", flags.Lookup("debug")))

	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(pick.NewCommand(a))

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("csv-import-guard %s\n", version)
		},
	})

	return rootCmd
}
