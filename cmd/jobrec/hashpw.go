package main

import (
	"fmt"

	"github.com/alexkim/job-recommender/internal/config"
	"github.com/spf13/cobra"
)

var hashpwCmd = &cobra.Command{
	Use:   "hashpw <password>",
	Short: "Print a bcrypt hash of a password",
	Long:  `Hash a password with the configured bcrypt cost. Useful for seeding accounts by hand.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHashpw,
}

func init() {
	rootCmd.AddCommand(hashpwCmd)
}

func runHashpw(_ *cobra.Command, args []string) error {
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}

	hash, err := passwordConfig.HashPassword(args[0])
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}
