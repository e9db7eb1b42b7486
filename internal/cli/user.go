package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookgoblin/internal/auth"
	"github.com/mrlokans/bookgoblin/internal/config"
	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/database/users"
)

const passwordEnv = "BOOKGOBLIN_PASSWORD"

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUserCreateCmd())
	return cmd
}

func newUserCreateCmd() *cobra.Command {
	var password string
	var issueToken bool

	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a user account",
		Long: "Create a user account. The password is taken from --password, then " +
			passwordEnv + ", then read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}
			if password == "" {
				var err error
				if password, err = readPassword(cmd); err != nil {
					return err
				}
			}

			cfg := config.NewConfig()
			db, err := database.NewDatabase(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			service := auth.NewService(users.NewRepository(db.DB), cfg.Auth)
			user, err := service.Register(args[0], password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			successf(out, "created user %s (id %d)", user.Username, user.ID)

			if issueToken {
				token, err := service.IssueToken(user.ID)
				if err != nil {
					return err
				}
				infof(out, "API token: %s", token)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password for the new account")
	cmd.Flags().BoolVar(&issueToken, "token", false, "also issue an API token")
	return cmd
}

func readPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}
