package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/commercekit/blockforge/pkg/catalog"
	"github.com/commercekit/blockforge/pkg/composer"
	"github.com/commercekit/blockforge/pkg/export"
	"github.com/commercekit/blockforge/pkg/overlay"
	"github.com/commercekit/blockforge/pkg/registry"
	"github.com/commercekit/blockforge/pkg/schema"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "blockforge:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	flags := flag.NewFlagSet("blockforge", flag.ContinueOnError)
	overlayDir := flags.String("overlays", "", "directory of catalog overlay files")
	verbose := flags.Bool("verbose", false, "enable debug logging")

	command := args[0]
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	rest := flags.Args()

	logger, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	reg, err := buildRegistry(*overlayDir, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch command {
	case "list":
		return listBlocks(reg)
	case "fields":
		return showFields(reg, rest)
	case "default":
		return showDefault(reg, rest)
	case "validate":
		return validateFile(reg, rest)
	case "compose":
		return compose(ctx, reg, rest, logger)
	case "export":
		return exportCatalog(ctx, reg, rest)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: blockforge <command> [flags] [args]

commands:
  list                       list registered block types
  fields <type> [variant]    show the resolved field set for a block
  default <type> [variant]   print the default configuration for a block
  validate <file>            validate a block configuration JSON file
  compose <type>             assemble a configuration interactively
  export [file]              write the catalog as an OpenAPI document

flags:
  -overlays <dir>            directory of catalog overlay files
  -verbose                   enable debug logging`)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func buildRegistry(overlayDir string, logger *zap.Logger) (*registry.Registry, error) {
	schemas := catalog.All()
	if overlayDir != "" {
		loader := overlay.NewLoader(overlay.WithLogger(logger))
		merged, err := loader.Load(os.DirFS(overlayDir), schemas)
		if err != nil {
			return nil, err
		}
		schemas = merged
	}
	return registry.New(schemas)
}

func listBlocks(reg *registry.Registry) error {
	for _, blockSchema := range reg.All() {
		fmt.Printf("%-20s %-12s %s\n", blockSchema.Type, blockSchema.Category, blockSchema.Name)
	}
	return nil
}

func showFields(reg *registry.Registry, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("fields: block type argument required")
	}
	variant := ""
	if len(args) > 1 {
		variant = args[1]
	}
	fields := reg.FieldsForBlock(args[0], variant)
	if fields == nil {
		return fmt.Errorf("unknown block type: %s", args[0])
	}
	for _, field := range fields {
		required := ""
		if field.Required {
			required = " (required)"
		}
		fmt.Printf("%-24s %-12s %s%s\n", field.Name, field.Type, field.DisplayLabel(), required)
	}
	return nil
}

func showDefault(reg *registry.Registry, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("default: block type argument required")
	}
	variant := ""
	if len(args) > 1 {
		variant = args[1]
	}
	if _, ok := reg.Schema(args[0]); !ok {
		return fmt.Errorf("unknown block type: %s", args[0])
	}
	return printJSON(os.Stdout, reg.DefaultConfig(args[0], variant))
}

func validateFile(reg *registry.Registry, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("validate: file argument required")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	var config schema.Config
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}
	findings := reg.ValidateConfig(config.BlockType(), config)
	if len(findings) == 0 {
		fmt.Println("valid")
		return nil
	}
	for _, finding := range findings {
		fmt.Println(finding)
	}
	return fmt.Errorf("%d validation finding(s)", len(findings))
}

func compose(ctx context.Context, reg *registry.Registry, args []string, logger *zap.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("compose: block type argument required")
	}
	comp := composer.New(reg, composer.WithLogger(logger))
	config, err := comp.Compose(ctx, args[0])
	if err != nil {
		if config != nil {
			// Show the partial result alongside the validation findings.
			printJSON(os.Stderr, config)
		}
		return err
	}
	return printJSON(os.Stdout, config)
}

func exportCatalog(ctx context.Context, reg *registry.Registry, args []string) error {
	data, err := export.MarshalJSON(ctx, reg.All(), export.Options{
		Title:   "Storefront Block Catalog",
		Version: "1.0.0",
	})
	if err != nil {
		return err
	}
	if len(args) > 0 && args[0] != "" && args[0] != "-" {
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Printf("catalog written to %s\n", args[0])
		return nil
	}
	fmt.Println(string(data))
	return nil
}

func printJSON(w *os.File, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
