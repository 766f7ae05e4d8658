package commands

import (
	"fmt"
	"os"

	"github.com/l0lsec/datadogenumerator/pkg/enum"
	"github.com/spf13/cobra"
)

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List every API endpoint this tool probes",
	Long:  `Prints the full probe catalog as JSON, validation probe included, so the tool's API footprint can be reviewed before running it.`,
	Run: func(cmd *cobra.Command, args []string) {
		jsonBytes, err := enum.CatalogJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering catalog: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	},
}

func init() {
	rootCmd.AddCommand(endpointsCmd)
}
