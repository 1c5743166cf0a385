package cmd

import (
	"context"
	"os"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/rbtree/pkg/cmd/cmdutil"
	"github.com/c9s/rbtree/pkg/metrics"
	"github.com/c9s/rbtree/pkg/rbtree"
	"github.com/c9s/rbtree/pkg/stress"
	"github.com/c9s/rbtree/pkg/style"
)

func init() {
	cmdutil.StressFlags(StressCmd.Flags())
	StressCmd.Flags().String("name", "stress", "tree name used as the metrics label")
	StressCmd.Flags().Bool("dump-metrics", false, "print the collected metrics in the prometheus text format")
	StressCmd.Flags().Bool("no-progress", false, "do not render the progress bar")
	RootCmd.AddCommand(StressCmd)
}

var StressCmd = &cobra.Command{
	Use:   "stress",
	Short: "insert pseudo-random keys and validate the tree",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cmdutil.ApplyStressFlags(cmd.Flags(), appConfig.Stress)
		if err != nil {
			return err
		}

		name, err := cmd.Flags().GetString("name")
		if err != nil {
			return err
		}

		dumpMetrics, err := cmd.Flags().GetBool("dump-metrics")
		if err != nil {
			return err
		}

		noProgress, err := cmd.Flags().GetBool("no-progress")
		if err != nil {
			return err
		}

		opts := stress.Options{
			Count:         cfg.Count,
			Seed:          cfg.Seed,
			MaxKey:        cfg.MaxKey,
			DeleteRatio:   cfg.DeleteRatio,
			ValidateEvery: cfg.ValidateEvery,
		}
		if err := opts.Validate(); err != nil {
			return err
		}

		ctx, cancel := cmdutil.SignalContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		tree := rbtree.New[int64](
			rbtree.WithCapacity(opts.Count),
			rbtree.WithLogger(log.WithField("tree", name)))

		registry := metrics.NewRegistry(name, tree)

		var progress stress.ProgressFunc
		if !noProgress {
			bar := pb.Full.Start(opts.Count)
			bar.SetTemplateString(`{{ string . "log" | green}} | {{counters . }} {{bar . }} {{percent . }} {{etime . }} {{rtime . "ETA %s"}}`)
			bar.Set("log", name)
			defer bar.Finish()

			progress = func(done int) {
				bar.SetCurrent(int64(done))
			}
		}

		log.Infof("inserting %d keys into tree %s", opts.Count, name)

		report, err := stress.Run(ctx, tree, opts, progress)
		if report != nil {
			metrics.StressRunDurationMetrics.WithLabelValues(name).Set(report.Duration.Seconds())
			metrics.StressOperationsMetrics.WithLabelValues(name, "insert").Add(float64(report.Inserted))
			metrics.StressOperationsMetrics.WithLabelValues(name, "delete").Add(float64(report.Deleted))
			metrics.StressOperationsMetrics.WithLabelValues(name, "delete_not_found").Add(float64(report.NotFound))

			log.WithFields(log.Fields{
				"seed":     report.Seed,
				"inserted": report.Inserted,
				"deleted":  report.Deleted,
				"checks":   report.Checks,
				"duration": report.Duration,
			}).Infof("stress run done")
		}

		if err != nil {
			return err
		}

		style.StatsTable(os.Stdout, report.Size, report.Height, report.BlackHeight, tree.Stats())

		if dumpMetrics {
			return metrics.WriteText(os.Stdout, registry)
		}

		return nil
	},
}
