package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const dayLongDesc string = `Advance a profile to the next practice day.

With --set the day is set to the given value instead.

Examples:
  leitner day ana
  leitner day ana --set 0`

const dayShortDesc string = "Advance or set the practice day"

func newDayCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day <profile>",
		Short: dayShortDesc,
		Long:  dayLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.resolveProfile(cmd, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("set") {
				day, _ := cmd.Flags().GetInt("set")
				p, err = e.app.ProfileService.SetDay(cmd.Context(), p.ID, day)
			} else {
				p, err = e.app.ProfileService.AdvanceDay(cmd.Context(), p.ID)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is on day %d\n", successMark, keyStyle.Render(p.Username), p.CurrentDay)
			return nil
		},
	}

	cmd.Flags().Int("set", 0, "Set the day instead of advancing it")
	return cmd
}
