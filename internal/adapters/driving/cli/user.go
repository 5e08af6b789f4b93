package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

var (
	userName string
	userRole string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage dashboard accounts",
	Long: `Add, list and check the accounts that can sign in to the dashboard.

Accounts are stored in the config file under [users.<name>] with a bcrypt
password hash. They take precedence over the built-in demo accounts.`,
}

var userHashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Print a password hash for the config file",
	Args:  cobra.NoArgs,
	RunE:  runUserHash,
}

var userAddCmd = &cobra.Command{
	Use:   "add [username]",
	Short: "Add or replace an account",
	Long: `Add or replace an account. The password is prompted for.

Examples:
  resumedesk user add alice --role admin --name "Alice Smith"
  resumedesk user add guest`,
	Args: cobra.ExactArgs(1),
	RunE: runUserAdd,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Args:  cobra.NoArgs,
	RunE:  runUserList,
}

var userVerifyCmd = &cobra.Command{
	Use:   "verify [username]",
	Short: "Check a password against an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserVerify,
}

func init() {
	userAddCmd.Flags().StringVar(&userName, "name", "", "display name")
	userAddCmd.Flags().StringVar(&userRole, "role", string(domain.RoleViewer), "role: admin or viewer")

	userCmd.AddCommand(userHashCmd)
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userVerifyCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserHash(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	password, err := promptPassword(cmd, newLineReader(cmd), "Password: ")
	if err != nil {
		return err
	}
	hash, err := s.Access.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	role := domain.Role(strings.ToLower(userRole))
	if !role.IsValid() {
		return fmt.Errorf("invalid role %q: must be admin or viewer", userRole)
	}

	reader := newLineReader(cmd)
	password, err := promptPassword(cmd, reader, "Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword(cmd, reader, "Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	user := domain.User{Username: args[0], Name: userName, Role: role}
	if err := s.Access.Register(cmd.Context(), user, password); err != nil {
		return err
	}

	cmd.Printf("Saved user %s (%s)\n", user.Username, role)
	return nil
}

func runUserList(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	users, err := s.Access.Users(cmd.Context())
	if err != nil {
		return err
	}
	if len(users) == 0 {
		cmd.Println("No users configured.")
		return nil
	}

	cmd.Printf("%-16s %-8s %s\n", "USERNAME", "ROLE", "NAME")
	for _, u := range users {
		cmd.Printf("%-16s %-8s %s\n", u.Username, u.Role, u.Name)
	}
	return nil
}

func runUserVerify(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	password, err := promptPassword(cmd, newLineReader(cmd), "Password: ")
	if err != nil {
		return err
	}

	session, err := s.Access.Login(cmd.Context(), args[0], password)
	if err != nil {
		return err
	}

	cmd.Printf("OK: %s signs in as %s\n", session.User.Username, session.User.Role)
	return nil
}

func newLineReader(cmd *cobra.Command) *bufio.Reader {
	return bufio.NewReader(cmd.InOrStdin())
}

// promptPassword reads a password without echo when stdin is a terminal,
// and a plain line otherwise.
func promptPassword(cmd *cobra.Command, reader *bufio.Reader, prompt string) (string, error) {
	cmd.Print(prompt)

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(password), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
