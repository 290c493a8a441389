package main

import (
	"github.com/spf13/cobra"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Commands to manage the Pascal VOC data",
	Long: `
Commands in this namespace fetch, verify and describe the Pascal VOC
segmentation data a training job expects in the local store.
`,
}

func init() {
	rootCmd.AddCommand(datasetCmd)
}
