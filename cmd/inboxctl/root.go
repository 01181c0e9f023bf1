// Root command for the inboxctl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mdaraban/inbox-go/internal/paths"
	"github.com/mdaraban/inbox-go/pkg/inbox"
)

// Global flag values.
var (
	flagConfigDir string
	flagCacheDir  string
	flagBaseURL   string
	flagToken     string
)

// cliConfig holds the values loaded from config.yaml by PersistentPreRunE,
// so every subcommand can build a client from them.
var cliConfig struct {
	baseURL  string
	token    string
	cacheDir string
}

var rootCmd = &cobra.Command{
	Use:     "inboxctl",
	Short:   "inboxctl inspects and fetches mail API resources",
	Version: inbox.Version,
	// Do not print usage on errors returned by subcommands; main prints
	// the error itself.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		cliConfig.baseURL = cfg.GetString(cfgKeyBaseURL)
		cliConfig.token = cfg.GetString(cfgKeyAccessToken)
		cliConfig.cacheDir = cfg.GetString(cfgKeyCacheDir)

		// Flags override config.yaml.
		if flagBaseURL != "" {
			cliConfig.baseURL = flagBaseURL
		}
		if flagToken != "" {
			cliConfig.token = flagToken
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", "", "model cache directory (default: platform cache dir)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API base URL (overrides config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "API access token (overrides config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(namespacesCmd)
	rootCmd.AddCommand(mappingsCmd)
}

// newClient builds an API client from the resolved configuration.
func newClient() (*inbox.Client, error) {
	cacheDir, err := paths.ResolveCacheDir(flagCacheDir, cliConfig.cacheDir)
	if err != nil {
		return nil, err
	}
	return inbox.New(inbox.Config{
		BaseURL:     cliConfig.baseURL,
		AccessToken: cliConfig.token,
		CacheDir:    cacheDir,
	})
}
