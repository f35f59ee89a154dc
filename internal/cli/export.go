package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a recipe as YAML or JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "yaml", "output format: yaml or json")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}

	recipe, err := svc.Store.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("loading recipe %s: %w", args[0], err)
	}

	var data []byte
	switch exportFormat {
	case "yaml", "yml":
		data, err = yaml.Marshal(recipe)
	case "json":
		data, err = json.MarshalIndent(recipe, "", "  ")
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("encoding recipe: %w", err)
	}

	if exportOut == "" {
		cmd.Println(string(data))
		return nil
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", exportOut, err)
	}
	cmd.Printf("Wrote %s to %s.\n", recipe.Title, exportOut)
	return nil
}
