package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const loginInstructions = `To have your personal puzzle inputs downloaded automatically,
you need to enter the value of your adventofcode.com session cookie.
Here's how:

1. Open your web browser and log in to adventofcode.com
2. Open your web browser's developer tools
3. Locate the cookie named ` + "`session`" + `
4. Copy the value of that cookie and paste it into the prompt below

If you don't want to enter your session cookie into this program,
you'll need to download your personal puzzle inputs manually.
For example, the input for year 2021 day 1 MUST be named
` + "`y21d01_personal_puzzle_input.txt`" + ` and you MUST put those files
in the following directory:
%s

Enter the value of your session cookie now or press CTRL-C to cancel:
> `

// NewLoginCommand creates the login command.
func NewLoginCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Save your adventofcode.com session cookie to download puzzle inputs automatically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, opts)
		},
	}
}

func runLogin(cmd *cobra.Command, opts *RootOptions) error {
	a, err := openApp(opts)
	if err != nil {
		return err
	}
	defer a.close()

	fmt.Fprintf(cmd.OutOrStdout(), loginInstructions, a.store.PuzzleInputsDir())

	sc := bufio.NewScanner(cmd.InOrStdin())
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("failed to read user input: %w", err)
		}
		return errors.New("failed to read user input")
	}

	cookie := strings.TrimSpace(sc.Text())
	if cookie == "" {
		return errors.New("session cookie must not be empty")
	}
	return a.store.SaveSessionCookie(cookie)
}
