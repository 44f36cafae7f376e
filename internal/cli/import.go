package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vytor/leitnerflash/internal/remote"
)

const importLongDesc string = `Import a TOML deck into a profile.

Imported cards start in bucket 0. The deck format is:

  name = "capitals"

  [[cards]]
  front = "France"
  back  = "Paris"
  hint  = "city of light"
  tags  = ["europe"]

The deck may be a local path or an http(s) URL.

Examples:
  leitner import ana capitals.toml
  leitner import ana https://example.com/decks/capitals.toml`

const importShortDesc string = "Import a TOML deck"

func newImportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <profile> <file|url>",
		Short: importShortDesc,
		Long:  importLongDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.resolveProfile(cmd, args[0])
			if err != nil {
				return err
			}
			data, err := readDeck(cmd, e.fetcher, args[1])
			if err != nil {
				return err
			}
			ids, err := e.app.ImportService.ImportNow(cmd.Context(), p.ID, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s imported %d cards into %s\n", successMark, len(ids), keyStyle.Render(p.Username))
			return nil
		},
	}
}

func readDeck(cmd *cobra.Command, fetcher remote.Fetcher, ref string) ([]byte, error) {
	if remote.IsURL(ref) {
		data, err := fetcher.FetchDeck(cmd.Context(), ref)
		if err != nil {
			return nil, fmt.Errorf("fetching deck: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("reading deck: %w", err)
	}
	return data, nil
}
