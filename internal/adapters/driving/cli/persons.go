package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitepark/citygov-search/internal/core/domain"
)

var personsFilter domain.CompetenceFilterInput

var personsCmd = &cobra.Command{
	Use:   "persons",
	Short: "Resolve a competence filter to person IDs",
	Long: `Looks up the persons whose competence ranges contain the
given prefix, tax identification number, file reference or license
plate. Without any filter flag, no filtering is applied.`,
	RunE: runPersons,
}

func init() {
	personsCmd.Flags().StringVar(&personsFilter.Prefix, "prefix", "", "name prefix, e.g. a single letter")
	personsCmd.Flags().StringVar(&personsFilter.TIN, "tin", "", "tax identification number")
	personsCmd.Flags().StringVar(&personsFilter.File, "file", "", "file reference")
	personsCmd.Flags().StringVar(&personsFilter.LicensePlateRegion, "plate-region", "", "license plate region, up to 3 letters")
	personsCmd.Flags().StringVar(&personsFilter.LicensePlateLetter, "plate-letter", "", "license plate letters, up to 2")
	personsCmd.Flags().StringVar(&personsFilter.LicensePlateNumber, "plate-number", "", "license plate number, up to 4 digits")
	rootCmd.AddCommand(personsCmd)
}

func runPersons(cmd *cobra.Command, _ []string) error {
	defer competence.Close()

	matches, err := competence.FilteredPersonIDs(context.Background(), &personsFilter)
	if err != nil {
		return fmt.Errorf("resolving competence filter: %w", err)
	}

	if !matches.Filtered {
		fmt.Fprintln(cmd.OutOrStdout(), "no filter applied")
		return nil
	}
	if len(matches.IDs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no persons match")
		return nil
	}
	for _, id := range matches.IDs {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
