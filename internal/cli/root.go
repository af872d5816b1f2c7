package cli

import (
	"github.com/spf13/cobra"

	"github.com/DanLigairi1978/ProID/internal/config"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "proid",
	Short: "Render rugby player ID cards",
	Long: `ProID renders dual-sided rugby player ID cards and exports them as a
pair of JPEGs or a single-page PDF.

Defaults come from $XDG_CONFIG_HOME/proid/config.toml, which is created on
first run.`,
	SilenceUsage: true,
}

var configPath string

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/proid/config.toml)")
	RootCmd.AddCommand(renderCmd, batchCmd, previewCmd, templatesCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.LoadConfig()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
