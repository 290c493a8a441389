package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhizhangxian/deeplab-submit/internal/termfmt"
	"github.com/zhizhangxian/deeplab-submit/voc"
)

var classesUsage = strings.TrimSpace(`
Print the VOC segmentation classes with their palette colours, the same
colours DecodeTarget paints predicted masks with.
`)

var Plain bool

var datasetClassesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Print VOC classes and palette colours",
	Long:  classesUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmap := voc.Colormap()

		printRow := func(index int, name string) {
			c := cmap[index]
			if Plain {
				fmt.Printf("  %3d  (%3d,%3d,%3d)  %s\n", index, c.R, c.G, c.B, name)
				return
			}
			fmt.Printf("  %s %3d  %s\n", termfmt.Bg(c.R, c.G, c.B, "    "), index, name)
		}

		for i, name := range voc.Classes {
			printRow(i, name)
		}
		printRow(255, "void/border")

		return nil
	},
}

func init() {
	datasetCmd.AddCommand(datasetClassesCmd)

	datasetClassesCmd.Flags().BoolVar(&Plain, "plain", false, "skip colour escapes, print RGB values instead")
}
