package cmd

import (
	"context"
	"os"
	"syscall"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/rbtree/pkg/cmd/cmdutil"
	"github.com/c9s/rbtree/pkg/rbtree"
	"github.com/c9s/rbtree/pkg/shell"
)

func init() {
	ShellCmd.Flags().String("prompt", "", "shell prompt, defaults to the config value")
	ShellCmd.Flags().StringSlice("preload", nil, "keys inserted before the shell starts")
	ShellCmd.Flags().Bool("no-color", false, "disable colored output")
	RootCmd.AddCommand(ShellCmd)
}

var ShellCmd = &cobra.Command{
	Use:     "shell",
	Aliases: []string{"repl"},
	Short:   "interactive add, delete, find and traverse menu",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := cmd.Flags().GetString("prompt")
		if err != nil {
			return err
		}

		if len(prompt) == 0 {
			prompt = appConfig.Shell.Prompt
		}

		preload, err := cmdutil.GetKeys(cmd.Flags(), "preload")
		if err != nil {
			return err
		}

		noColor, err := cmd.Flags().GetBool("no-color")
		if err != nil {
			return err
		}

		tree := rbtree.New[int64](rbtree.WithLogger(log.WithField("tree", "shell")))
		for _, key := range appConfig.Shell.Preload {
			tree.Insert(key)
		}
		for _, key := range preload {
			tree.Insert(key)
		}

		if tree.Len() > 0 {
			log.Infof("preloaded %d keys", tree.Len())
		}

		ctx, cancel := cmdutil.SignalContext(context.Background(), syscall.SIGTERM)
		defer cancel()

		session := shell.NewSession(tree, cmd.OutOrStdout(),
			shell.WithPrompt(prompt),
			shell.WithColor(!noColor && !color.NoColor))

		return session.Run(ctx, os.Stdin)
	},
}
