package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const profileLongDesc string = `Manage learner profiles.

Each profile owns its cards, their bucket placements, its review history
and its current day.

Examples:
  leitner profile create ana
  leitner profile list`

const profileShortDesc string = "Manage learner profiles"

func newProfileCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: profileShortDesc,
		Long:  profileLongDesc,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <username>",
		Short: "Create a profile, or return the existing one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.app.ProfileService.CreateProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s profile %s (id %d, day %d)\n", successMark, keyStyle.Render(p.Username), p.ID, p.CurrentDay)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := e.app.ProfileService.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(profiles) == 0 {
				fmt.Fprintln(out, dimStyle.Render("no profiles"))
				return nil
			}
			for _, p := range profiles {
				fmt.Fprintf(out, "%4d  %-20s day %d\n", p.ID, p.Username, p.CurrentDay)
			}
			return nil
		},
	})

	return cmd
}
