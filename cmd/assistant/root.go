package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"task-assistant/config"
	"task-assistant/internal/assistant"
	assistantUC "task-assistant/internal/assistant/usecase"
	"task-assistant/pkg/log"
)

// app carries what the subcommands share. uc is resolved lazily from config unless set.
type app struct {
	out       io.Writer
	uc        assistant.UseCase
	verbose   bool
	localOnly bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "assistant",
		Short: "Parse, prioritize, schedule and summarize tasks from the command line.",
		Long: `assistant runs the same task assistant as the API server.
It uses the configured LLM providers when enabled and falls back to local heuristics.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log provider selection and fallbacks")
	root.PersistentFlags().BoolVar(&a.localOnly, "local", false, "skip LLM providers and use local heuristics only")

	root.AddCommand(newParseCmd(a), newSuggestCmd(a), newSummarizeCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if a.uc != nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	l := log.NewNop()
	if a.verbose {
		l = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	llmCfg := cfg.LLM
	if a.localOnly {
		llmCfg.Enabled = false
	}

	if err := assistant.Init(assistantUC.NewFromConfig(cmd.Context(), l, llmCfg)); err != nil {
		return err
	}
	uc, err := assistant.Default()
	if err != nil {
		return err
	}
	a.uc = uc
	return nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
