package cli

import (
	"github.com/spf13/cobra"
)

// NewLogoutCommand creates the logout command. It only removes the
// cookie this program stored, never anything in a browser.
func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove your adventofcode.com session cookie from the file system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.close()
			return a.store.DeleteSessionCookie()
		},
	}
}
