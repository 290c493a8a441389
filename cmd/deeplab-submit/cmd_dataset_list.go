package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhizhangxian/deeplab-submit/voc"
)

var listReleasesUsage = strings.TrimSpace(`
If you want to find out which VOC releases this tool knows about, use this
command.
`)

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print known VOC releases",
	Long:  listReleasesUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("releases:\n")
		for _, year := range voc.Years() {
			rel, err := voc.Lookup(year)
			if err != nil {
				return fmt.Errorf("cmd: registry is inconsistent: %w", err)
			}

			fmt.Printf("  - %s:\n", year)
			fmt.Printf("      url:      %s\n", rel.URL)
			fmt.Printf("      md5:      %s\n", rel.MD5)
			fmt.Printf("      base-dir: %s\n", rel.BaseDir)
			if rel.Aug {
				fmt.Printf("      note:     needs SegmentationClassAug + train_aug.txt, prepared separately\n")
			}
		}

		return nil
	},
}

func init() {
	datasetCmd.AddCommand(datasetListCmd)
}
