package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vytor/leitnerflash/internal/flashcard"
)

const dueLongDesc string = `List the cards due for practice.

Uses the profile's current day unless --day is given. A card in bucket b
is due on every day greater than b.

Examples:
  leitner due ana
  leitner due ana --day 5`

const dueShortDesc string = "List cards due for practice"

func newDueCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "due <profile>",
		Short: dueShortDesc,
		Long:  dueLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.resolveProfile(cmd, args[0])
			if err != nil {
				return err
			}
			var day *int
			if cmd.Flags().Changed("day") {
				d, _ := cmd.Flags().GetInt("day")
				day = &d
			}

			set, err := e.app.PracticeService.DueCards(cmd.Context(), p.ID, day)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d due on day %d\n", keyStyle.Render(p.Username), set.Total, set.Day)
			for _, c := range set.Cards {
				fmt.Fprintf(out, "%6d  %s\n", c.ID, c.Front)
			}
			if len(set.Cards) < set.Total {
				fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("... %d more", set.Total-len(set.Cards))))
			}
			return nil
		},
	}

	cmd.Flags().Int("day", 0, "Practice day (defaults to the profile's current day)")
	return cmd
}

const reviewLongDesc string = `Record a review of one card.

Difficulty is one of wrong, hard or easy.

Examples:
  leitner review ana 3 easy`

const reviewShortDesc string = "Review a card"

func newReviewCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "review <profile> <cardID> <difficulty>",
		Short:     reviewShortDesc,
		Long:      reviewLongDesc,
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"wrong", "hard", "easy"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.resolveProfile(cmd, args[0])
			if err != nil {
				return err
			}
			cardID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid card id %q", args[1])
			}
			d, err := flashcard.ParseDifficulty(args[2])
			if err != nil {
				return fmt.Errorf("difficulty must be one of wrong, hard, easy: got %q", args[2])
			}

			res, err := e.app.PracticeService.ReviewCard(cmd.Context(), p.ID, cardID, d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s card %d (%s): bucket %d -> %d\n", successMark, res.CardID, res.Difficulty, res.FromBucket, res.ToBucket)
			return nil
		},
	}
}

func newHintCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "hint <profile> <cardID>",
		Short: "Show a card's hint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.resolveProfile(cmd, args[0])
			if err != nil {
				return err
			}
			cardID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid card id %q", args[1])
			}
			hint, err := e.app.CardService.GetHint(cmd.Context(), p.ID, cardID)
			if err != nil {
				return err
			}
			if hint == "" {
				fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("no hint"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), hint)
			return nil
		},
	}
}

func newScheduleCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <profile>",
		Short: "Show how many cards sit in each bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.resolveProfile(cmd, args[0])
			if err != nil {
				return err
			}
			stat, err := e.app.PracticeService.Schedule(cmd.Context(), p.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if stat.MinBucket == nil {
				fmt.Fprintln(out, dimStyle.Render("no cards"))
				return nil
			}
			fmt.Fprintf(out, "buckets %d..%d\n", *stat.MinBucket, *stat.MaxBucket)
			for _, b := range stat.Buckets {
				fmt.Fprintf(out, "%4d  %-5d %s\n", b.Bucket, b.Cards, strings.Repeat("#", b.Cards))
			}
			return nil
		},
	}
}

func newProgressCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <profile>",
		Short: "Show review progress",
		Long: `Show review progress.

Progress is the number of hard or easy reviews divided by the number of
cards, as a percentage. It can exceed 100 once cards are reviewed more
than once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.resolveProfile(cmd, args[0])
			if err != nil {
				return err
			}
			stat, err := e.app.PracticeService.Progress(cmd.Context(), p.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.2f%% (%d successful of %d reviews, %d cards)\n",
				keyStyle.Render(p.Username), stat.Percent, stat.SuccessfulReviews, stat.TotalReviews, stat.TotalCards)
			return nil
		},
	}
}
