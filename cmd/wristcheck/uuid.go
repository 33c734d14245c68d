package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Generate a UUID for a watchface manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id := uuid.NewString()
		fmt.Fprintf(os.Stdout, "Generated UUID: %s\n", id)
		fmt.Fprintf(os.Stdout, "\nUse in package.json:\n")
		fmt.Fprintf(os.Stdout, "  \"uuid\": %q\n", id)
		return nil
	},
}
