package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type draftOutput struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
}

type suggestOutput struct {
	Priority struct {
		Priority    string  `json:"priority"`
		Confidence  float64 `json:"confidence"`
		Explanation string  `json:"explanation"`
	} `json:"priority"`
	Schedule struct {
		SuggestedStart time.Time  `json:"suggested_start"`
		SuggestedEnd   *time.Time `json:"suggested_end"`
		Explanation    string     `json:"explanation"`
	} `json:"schedule"`
	Mode string `json:"mode"`
}

type summaryOutput struct {
	Summary string `json:"summary"`
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <text...>",
		Short:   "Turn free text into a task draft",
		Example: `  assistant parse "Submit report due tomorrow urgent"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return errors.New("text is empty")
			}

			draft := a.uc.Parse(cmd.Context(), text)
			out := draftOutput{
				Title:       draft.Title,
				Description: draft.Description,
				DueDate:     draft.DueDate,
			}
			if draft.Priority != nil {
				p := draft.Priority.String()
				out.Priority = &p
			}
			return a.printJSON(out)
		},
	}
}

func newSuggestCmd(a *app) *cobra.Command {
	var flags snapshotFlags
	cmd := &cobra.Command{
		Use:     "suggest",
		Short:   "Suggest a priority and a work window for a task",
		Example: `  assistant suggest --title "Quarterly report" --due 2026-03-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := flags.snapshot()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			prio := a.uc.SuggestPriority(ctx, snap)
			sched := a.uc.SuggestSchedule(ctx, snap)

			var out suggestOutput
			out.Priority.Priority = prio.Priority.String()
			out.Priority.Confidence = prio.Confidence
			out.Priority.Explanation = prio.Explanation
			out.Schedule.SuggestedStart = sched.SuggestedStart
			out.Schedule.SuggestedEnd = sched.SuggestedEnd
			out.Schedule.Explanation = sched.Explanation
			out.Mode = string(a.uc.Mode())
			return a.printJSON(out)
		},
	}
	flags.register(cmd)
	return cmd
}

func newSummarizeCmd(a *app) *cobra.Command {
	var flags snapshotFlags
	cmd := &cobra.Command{
		Use:     "summarize",
		Short:   "Print a one-line summary of a task",
		Example: `  assistant summarize --title "Pay rent" --due 2026-03-01 --priority high`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := flags.snapshot()
			if err != nil {
				return err
			}
			return a.printJSON(summaryOutput{Summary: a.uc.Summarize(cmd.Context(), snap)})
		},
	}
	flags.register(cmd)
	return cmd
}

