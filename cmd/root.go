package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pipeline/internal/config/colors"
	"github.com/thenoetrevino/pipeline/internal/launcher"
)

// NewRootCommand builds the pipeline root command. Running it with no
// subcommand opens the board.
func NewRootCommand() *cobra.Command {
	var opts launcher.Options

	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Pipeline - A terminal-based hiring pipeline board",
		Long: `Pipeline is a terminal kanban board for tracking internship candidates
through the Applied, Screening, Interview and Hired stages.

Cards can be moved with the keyboard or dragged with the mouse.
Nothing is saved: the board lives for one session.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoMouse, "no-mouse", false, "Disable mouse drag and drop")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "Color preset to use ("+strings.Join(colors.Presets, ", ")+")")
	_ = cmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return colors.Presets, cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(newConfigCommand())

	return cmd
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return NewRootCommand().ExecuteContext(ctx)
}
