package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var tokenCmd = &cobra.Command{
	Use:   "hash-token TOKEN",
	Short: "Hash an admin token for the config file",
	Long: `Hash an admin token with bcrypt.

Put the printed hash into admin.token_hash (or OMNIWEB_ADMIN_TOKEN_HASH)
to enable the POST /-/reload endpoint.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fmt.Println(string(hash))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
