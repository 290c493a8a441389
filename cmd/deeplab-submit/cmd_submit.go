package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhizhangxian/deeplab-submit/batch"
)

var submitUsage = strings.TrimSpace(`
Render the batch script for the configured training job and submit it to LSF
via bsub.  The defaults reproduce the classic run: one V100 on gpu07, queue
gpu_v100, deeplabv3plus_resnet101 on VOC 2012_aug.

A YAML receipt with the job ID, environment and exact command line is written
under <store>/jobs/ so the submission can be audited later.
`)

var (
	DryRun     bool
	OutputFile string
)

var submitCmd = &cobra.Command{
	Use:   "submit [-- extra training args]",
	Short: "Submit a training job to the LSF GPU queue",
	Long:  submitUsage,
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := buildJobSpec(args)
		if err != nil {
			return fmt.Errorf("cmd: invalid job: %w", err)
		}

		if DryRun || OutputFile != "" {
			script, err := spec.RenderScript()
			if err != nil {
				return fmt.Errorf("cmd: couldn't render script: %w", err)
			}
			if OutputFile == "" {
				fmt.Print(script)
				return nil
			}
			if err := os.WriteFile(OutputFile, []byte(script), 0755); err != nil {
				return fmt.Errorf("cmd: couldn't write script to %s: %w", OutputFile, err)
			}
			fmt.Printf("Wrote batch script to %s.\n", OutputFile)
			return nil
		}

		storePath, err := expandedStore()
		if err != nil {
			return err
		}

		debugLog("submitting: %s\n", spec.CommandLine())
		receipt, err := batch.Submit(cmd.Context(), spec)
		if err != nil {
			return fmt.Errorf("cmd: submission failed: %w", err)
		}

		fmt.Printf("Job <%s> submitted to queue <%s>.\n", receipt.JobID, receipt.Queue)

		receiptPath, err := batch.WriteReceipt(storePath, receipt)
		if err != nil {
			return fmt.Errorf("cmd: job %s is in, but writing its receipt failed: %w", receipt.JobID, err)
		}
		fmt.Printf("Receipt: %s\n", receiptPath)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	addJobFlags(submitCmd)

	submitCmd.Flags().BoolVarP(&DryRun, "dry-run", "n", false, "print the batch script instead of submitting")
	submitCmd.Flags().StringVarP(&OutputFile, "output", "o", "", "write the batch script to a file instead of submitting")
}
