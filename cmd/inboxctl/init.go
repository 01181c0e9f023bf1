// Init command: create configuration and cache directories and initialize
// the model cache database.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mdaraban/inbox-go/internal/cache"
	"github.com/mdaraban/inbox-go/internal/paths"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	BaseURL     string `yaml:"base_url"`
	AccessToken string `yaml:"access_token,omitempty"`
	CacheDir    string `yaml:"cache_dir,omitempty"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize inboxctl configuration and cache",
		Long:  "Create the configuration directory and default config.yaml, then initialize the local model cache.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cacheDir, err := paths.ResolveCacheDir(flagCacheDir, cliConfig.cacheDir)
	if err != nil {
		return fmt.Errorf("resolve cache dir: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	// Initialize the cache database by opening and closing the store.
	store, err := cache.Open(cacheDir)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("finalize cache: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "inboxctl initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		BaseURL: cliConfig.baseURL,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.inboxapp.example"
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
