package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhizhangxian/deeplab-submit/localdata"
	"github.com/zhizhangxian/deeplab-submit/voc"
)

var verifyUsage = strings.TrimSpace(`
Check that an extracted VOC tree is complete for a given image set: the
devkit directory exists, the split file is readable, and every listed sample
has both its JPEG image and its segmentation mask.  For 2012_aug this also
requires the separately-prepared SegmentationClassAug masks and train_aug
split.
`)

var (
	VerifyYear     string
	VerifyImageSet string
)

var datasetVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify an extracted VOC dataset tree",
	Long:  verifyUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		storePath, err := expandedStore()
		if err != nil {
			return err
		}

		rel, err := voc.Lookup(VerifyYear)
		if err != nil {
			return fmt.Errorf("cmd: %w", err)
		}

		report, err := localdata.VerifyTree(storePath, rel, VerifyImageSet)
		if err != nil {
			return fmt.Errorf("cmd: verification failed: %w", err)
		}

		fmt.Printf("VOC %s %s: %d samples in split.\n", VerifyYear, VerifyImageSet, report.Samples)
		for _, id := range report.MissingImages {
			fmt.Printf("  missing image: %s\n", id)
		}
		for _, id := range report.MissingMasks {
			fmt.Printf("  missing mask:  %s\n", id)
		}

		if !report.OK() {
			return fmt.Errorf("cmd: dataset incomplete: %d images and %d masks missing",
				len(report.MissingImages), len(report.MissingMasks))
		}

		fmt.Println("All samples present.")
		return nil
	},
}

func init() {
	datasetCmd.AddCommand(datasetVerifyCmd)

	datasetVerifyCmd.Flags().StringVar(&VerifyYear, "year", "2012_aug", "dataset year to verify")
	datasetVerifyCmd.Flags().StringVar(&VerifyImageSet, "image-set", "train", "image set to verify (train, trainval, val)")
}
