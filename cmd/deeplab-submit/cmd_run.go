package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhizhangxian/deeplab-submit/batch"
)

var runUsage = strings.TrimSpace(`
Run the training command on this machine, without a scheduler.  The child
process gets CUDA_VISIBLE_DEVICES pinned to --gpu-id and inherits our
stdout/stderr; its exit status is passed through unmodified.
`)

var runCmd = &cobra.Command{
	Use:   "run [-- extra training args]",
	Short: "Run the training job locally instead of via LSF",
	Long:  runUsage,
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := buildJobSpec(args)
		if err != nil {
			return fmt.Errorf("cmd: invalid job: %w", err)
		}

		debugLog("running: %s\n", spec.CommandLine())
		if err := batch.Run(cmd.Context(), spec, os.Stdout, os.Stderr); err != nil {
			if code := batch.ExitCode(err); code >= 0 {
				// the training process itself failed; mirror its exit status.
				fmt.Fprintf(os.Stderr, "deeplab-submit: %v\n", err)
				os.Exit(code)
			}
			return fmt.Errorf("cmd: run failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addJobFlags(runCmd)
}
