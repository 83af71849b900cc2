package cli

import (
	"fmt"
	"os"
	"path/filepath"
)

type InitCmd struct{}

const defaultConfigYAML = `# moodbuddy configuration
api_base_url: http://localhost:8000
request_timeout: 10s
cache_backend: json
sample_window: 10
`

func (c *InitCmd) Run(ctx *Context) error {
	if err := os.MkdirAll(ctx.Config.ConfigDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(ctx.Config.ConfigDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := os.WriteFile(configPath, []byte(defaultConfigYAML), 0600); err != nil {
			return fmt.Errorf("failed to write default config: %w", err)
		}
		fmt.Printf("Wrote default config: %s\n", configPath)
	} else {
		fmt.Printf("Config already present: %s\n", configPath)
	}

	provider, err := ctx.openCache()
	if err != nil {
		return err
	}
	defer provider.Close()
	if err := provider.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized mood cache at: %s\n", provider.Path())
	return nil
}
