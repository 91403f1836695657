package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitepark/citygov-search/internal/core/domain"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Enrich and index all resources of the docroot",
	Long: `Walks the configured resource docroot, enriches every
organisation, person and product resource into its index document and
submits the documents to the search index. A resource that fails to
enrich is reported and skipped.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	defer indexing.Cleanup()

	resources, err := loadResources(ctx)
	if err != nil {
		return err
	}

	report, err := indexing.IndexAll(ctx, resources)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "indexed %d documents\n", report.Indexed)
	for location, failure := range report.Failed {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed %s: %v\n", location, failure)
	}
	return nil
}

// loadResources walks the docroot and loads every resource file.
func loadResources(ctx context.Context) ([]*domain.Resource, error) {
	var resources []*domain.Resource
	docroot := cfg.Resources.Docroot
	err := filepath.WalkDir(docroot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}

		location, relErr := filepath.Rel(docroot, path)
		if relErr != nil {
			return relErr
		}
		location = "/" + strings.TrimSuffix(filepath.ToSlash(location), ".json")

		res, loadErr := store.Load(ctx, location, "")
		if loadErr != nil {
			return loadErr
		}
		resources = append(resources, res)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("docroot %q does not exist", docroot)
		}
		return nil, fmt.Errorf("walking docroot: %w", err)
	}
	return resources, nil
}
