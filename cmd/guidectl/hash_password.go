package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-city-guide/internal/security"
	"github.com/spf13/cobra"
)

var errEmptyPassword = errors.New("password is empty")

func newHashPasswordCmd(opts *rootOptions) *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a password",
		Long: `Prints the algorithm-tagged bcrypt hash of the password given as the
argument, or of the first line of stdin when no argument is given.
The cost defaults to APP_PASSWORD_HASH_COST.`,
		Example: `  echo -n 's3cret!' | guidectl hash-password --cost 12`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if line == "" && err != nil {
					return errEmptyPassword
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return errEmptyPassword
			}

			if !cmd.Flags().Changed("cost") {
				cost = opts.cfg.App.PasswordHashCost
			}

			hash, err := security.NewBcryptHasher(cost).Hash(password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", 0, "bcrypt cost (4-31)")

	return cmd
}
