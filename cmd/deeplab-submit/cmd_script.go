package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var scriptUsage = strings.TrimSpace(`
Print the LSF batch script that 'submit' would pipe to bsub.  Arguments after
'--' are forwarded to the training script verbatim.
`)

var scriptCmd = &cobra.Command{
	Use:   "script [-- extra training args]",
	Short: "Render the batch script without submitting it",
	Long:  scriptUsage,
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := buildJobSpec(args)
		if err != nil {
			return fmt.Errorf("cmd: invalid job: %w", err)
		}

		script, err := spec.RenderScript()
		if err != nil {
			return fmt.Errorf("cmd: couldn't render script: %w", err)
		}

		fmt.Print(script)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	addJobFlags(scriptCmd)
}
