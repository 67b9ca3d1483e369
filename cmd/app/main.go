package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/globalmenu/internal"
	"github.com/starford/globalmenu/internal/mcpserver"
	"github.com/starford/globalmenu/internal/preview"
	pkgconfig "github.com/starford/globalmenu/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	read, err := pkgconfig.LoadOptional(configPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !read && cmd.IsSet("config") {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}
	if v := cmd.String("vault"); v != "" {
		cfg.Vault.Path = v
	}
	return cfg, nil
}

// open loads the configuration and the menu service for one-shot commands.
// Logs go to stderr so stdout stays machine readable.
func open(ctx context.Context, cmd *cli.Command) (*internal.Components, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return internal.Open(ctx, cfg, internal.NewLogger(cfg, os.Stderr), nil)
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func resolve(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("resolve: document path is required")
	}
	comp, err := open(ctx, cmd)
	if err != nil {
		return err
	}
	defer comp.Close()

	dark := comp.Service.Dark()
	if cmd.IsSet("dark") {
		dark = cmd.Bool("dark")
	}
	p, err := comp.Service.Resolve(ctx, path, dark)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func previewCmd(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("preview: document path is required")
	}
	comp, err := open(ctx, cmd)
	if err != nil {
		return err
	}
	defer comp.Close()

	dark := comp.Service.Dark()
	if cmd.IsSet("dark") {
		dark = cmd.Bool("dark")
	}
	p, err := comp.Service.Resolve(ctx, path, dark)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return preview.Render(os.Stdout, p, preview.Options{
		Dark:   dark,
		Color:  !cmd.Bool("plain"),
		Legend: cmd.Bool("legend"),
	})
}

func reset(ctx context.Context, cmd *cli.Command) error {
	comp, err := open(ctx, cmd)
	if err != nil {
		return err
	}
	defer comp.Close()

	if _, err := comp.Service.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	fmt.Println("menu configuration reset to defaults")
	return nil
}

func mcp(ctx context.Context, cmd *cli.Command) error {
	comp, err := open(ctx, cmd)
	if err != nil {
		return err
	}
	defer comp.Close()

	return mcpserver.New(comp.Service, comp.Vault).ServeStdio()
}

func darkFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "dark",
		Usage: "Resolve for a dark host theme (defaults to theme.dark)",
	}
}

func main() {
	cmd := &cli.Command{
		Name:   "globalmenu",
		Usage:  "Rule-driven navigation menus for Markdown vaults",
		Action: serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "vault",
				Usage:   "Vault directory (overrides vault.path)",
				Sources: cli.EnvVars("APP_VAULT_PATH"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API, the event stream and the vault watcher",
				Action: serve,
			},
			{
				Name:      "resolve",
				Usage:     "Print the menu presentation of a document as JSON",
				ArgsUsage: "<path>",
				Flags:     []cli.Flag{darkFlag()},
				Action:    resolve,
			},
			{
				Name:      "preview",
				Usage:     "Draw the menu of a document in the terminal",
				ArgsUsage: "<path>",
				Flags: []cli.Flag{
					darkFlag(),
					&cli.BoolFlag{Name: "plain", Usage: "Disable colors"},
					&cli.BoolFlag{Name: "legend", Usage: "Print the resolved color tokens"},
				},
				Action: previewCmd,
			},
			{
				Name:   "reset",
				Usage:  "Restore the default menu configuration",
				Action: reset,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the MCP tools over stdio",
				Action: mcp,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
