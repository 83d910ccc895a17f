package cmd

import (
	"encoding/json"
	"log"
	"os"

	"github.com/hanifadr/reimbursement-hub/internal/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the sample dataset",
	Long:  `Dump the built-in sample dataset as JSON, the same data the server loads at startup.`,
	Run: func(cmd *cobra.Command, args []string) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(seed.Sample()); err != nil {
			log.Fatalf("failed to encode sample dataset: %v", err)
		}
	},
}
