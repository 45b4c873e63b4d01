package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"kgeyst.com/makereal/pkg/common"
	"kgeyst.com/makereal/pkg/makereal/api"
	"kgeyst.com/makereal/pkg/makereal/domain"
	"kgeyst.com/makereal/pkg/makereal/infrastructure/inmemory"
)

type generateOptions struct {
	configPath   string
	documentPath string
	selected     []string
	outPath      string
	savePath     string
	endpoint     string
	model        string
}

var rootCmd = &cobra.Command{
	Use:           "makereal",
	Short:         "Turns wireframes into working HTML pages with a local model",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func main() {
	err := mainImpl()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rootCmd.AddCommand(newGenerateCommand())
	return rootCmd.ExecuteContext(ctx)
}

func newGenerateCommand() *cobra.Command {
	var options generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a page out of the selection of a canvas document",
		Example: `  makereal generate --document login.yaml --out login.html
  makereal generate --document login.yaml --select form --select notes --save login.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, options)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&options.configPath, "config", "config.yaml", "config file (optional)")
	flags.StringVar(&options.documentPath, "document", "", "canvas document to read (YAML)")
	flags.StringArrayVar(&options.selected, "select", nil, "shape to select, overrides the document's selection (repeatable)")
	flags.StringVar(&options.outPath, "out", "", "where to write the generated HTML (stdout by default)")
	flags.StringVar(&options.savePath, "save", "", "where to write the canvas document with the new response shape")
	flags.StringVar(&options.endpoint, "endpoint", "", "Ollama endpoint, overrides the config")
	flags.StringVar(&options.model, "model", "", "model name, overrides the config")
	_ = cmd.MarkFlagRequired("document")
	return cmd
}

func generate(cmd *cobra.Command, options generateOptions) error {
	config, err := common.LoadConfigOrDefault(options.configPath)
	if err != nil {
		return err
	}
	if options.endpoint != "" {
		config.Set(api.ConfigKeyOllamaEndpoint, options.endpoint)
	}
	if options.model != "" {
		config.Set(api.ConfigKeyModel, options.model)
	}
	canvas, err := inmemory.LoadDocument(options.documentPath)
	if err != nil {
		return err
	}
	err = applySelection(canvas, options.selected)
	if err != nil {
		return err
	}
	makeReal, err := api.NewAPI(config, canvas)
	if err != nil {
		return err
	}
	id, err := makeReal.MakeReal(cmd.Context())
	if err != nil {
		return err
	}
	html := canvas.GetShape(id).HTML
	if options.outPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), html)
	} else {
		err = os.WriteFile(options.outPath, []byte(html), 0644)
		if err != nil {
			return err
		}
	}
	if options.savePath != "" {
		data, err := canvas.MarshalDocument()
		if err != nil {
			return err
		}
		return os.WriteFile(options.savePath, data, 0644)
	}
	return nil
}

// Without an explicit selection, the document's own selection is used; if it has none, everything is selected.
func applySelection(canvas *inmemory.Canvas, selected []string) error {
	if len(selected) > 0 {
		ids := make([]domain.ShapeID, 0, len(selected))
		for _, id := range selected {
			ids = append(ids, domain.ShapeID(id))
		}
		return canvas.Select(ids...)
	}
	if len(canvas.GetSelectedShapeIDs()) == 0 {
		canvas.SelectAll()
	}
	return nil
}
