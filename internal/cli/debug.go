package cli

import (
	"context"
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	Paths     *DebugPathsCmd     `cmd:"" help:"Show config and cache paths."`
	DumpEntry *DebugDumpEntryCmd `cmd:"" help:"Dump one mood entry as JSON."`
	DumpCache *DebugDumpCacheCmd `cmd:"" help:"Dump the cached snapshot for the signed-in user."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *Context) error {
	provider, err := ctx.openCache()
	if err != nil {
		return err
	}
	defer provider.Close()

	output := map[string]string{
		"config_dir":    ctx.Config.ConfigDir,
		"cache_path":    provider.Path(),
		"cache_backend": ctx.Config.CacheBackend,
		"api_base_url":  ctx.Config.APIBaseURL,
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpEntryCmd struct {
	Date string `arg:"" help:"Date of the entry to dump (YYYY-MM-DD)."`
}

func (cmd *DebugDumpEntryCmd) Run(ctx *Context) error {
	s, provider, err := ctx.openStore(context.Background())
	if err != nil {
		return err
	}
	defer provider.Close()

	entry, ok := s.Get(cmd.Date)
	if !ok {
		return fmt.Errorf("no mood entry for %s", cmd.Date)
	}

	jsonBytes, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpCacheCmd struct{}

func (cmd *DebugDumpCacheCmd) Run(ctx *Context) error {
	sess, err := ctx.requireSession()
	if err != nil {
		return err
	}

	provider, err := ctx.openCache()
	if err != nil {
		return err
	}
	defer provider.Close()

	entries, ok, err := provider.GetEntries(sess.Username)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("{}")
		return nil
	}

	jsonBytes, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache snapshot: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
