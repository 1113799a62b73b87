package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/larek/internal/config"
	"github.com/Iron-Ham/larek/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "larek",
	Short: "Terminal storefront for the web-larek shop",
	Long: `Larek is a terminal storefront: browse the catalog, preview products,
fill a basket and check out, all from the keyboard.

Run without a subcommand to open the shop. Use 'larek serve' to start a
local demo API to shop against.`,
	SilenceUsage: true,
	RunE:         runShop,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/larek/config.yaml)")
	rootCmd.PersistentFlags().String("api", "", "shop API base URL (overrides api.base_url)")
}

// bindFlags connects flags to their viper keys. A flag only overrides the
// config when it was set on the command line.
func bindFlags() {
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.catalog", serveCmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("server.watch", serveCmd.Flags().Lookup("watch"))
}

func initConfig() {
	bindFlags()

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LAREK")
	// e.g., LAREK_API_BASE_URL for api.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// fileLogger returns the log-file logger when logging is enabled, and a
// discarding logger otherwise. The caller closes it.
func fileLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.LogDir(), cfg.Logging.Level)
}
