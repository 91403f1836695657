// Package cli provides the citygov command line interface: indexing
// runs over a resource docroot and competence filter lookups against
// the range side-database.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sitepark/citygov-search/internal/adapters/driven/config/file"
	"github.com/sitepark/citygov-search/internal/adapters/driven/resource"
	"github.com/sitepark/citygov-search/internal/adapters/driven/solr"
	"github.com/sitepark/citygov-search/internal/adapters/driven/storage/sqlite"
	"github.com/sitepark/citygov-search/internal/core/ports/driving"
	"github.com/sitepark/citygov-search/internal/core/services"
	"github.com/sitepark/citygov-search/internal/enrichers/contactpoint"
	"github.com/sitepark/citygov-search/internal/enrichers/organisation"
	"github.com/sitepark/citygov-search/internal/enrichers/person"
	"github.com/sitepark/citygov-search/internal/enrichers/product"
	"github.com/sitepark/citygov-search/internal/logger"
	"github.com/sitepark/citygov-search/internal/richtext"
)

var (
	configPath string
	verbose    bool

	cfg        *file.Config
	indexing   driving.IndexingService
	store      *resource.Store
	competence *sqlite.CompetenceStore
)

var rootCmd = &cobra.Command{
	Use:   "citygov",
	Short: "CityGov search indexing and person directory tools",
	Long: `citygov enriches municipal content resources (organisations,
persons, products) into search index documents and answers person
directory filter queries.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if cmd.Name() == "version" {
			return nil
		}
		return wire()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "citygov.toml", "configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// wire builds the adapters and services from the configuration.
func wire() error {
	loaded, err := file.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	attrs := cfg.ChannelAttributes()
	index := solr.NewClient(cfg.Index.URL, cfg.Index.Name)
	store = resource.NewStore(cfg.Resources.Docroot)
	competence = sqlite.NewCompetenceStore(cfg.Competence.Database)

	organisationEnricher := organisation.New(attrs, index, store)
	indexing = services.NewPipeline(
		index,
		organisationEnricher,
		person.New(store, organisationEnricher),
		product.New(attrs, index, store, organisationEnricher, richtext.New()),
		contactpoint.New(),
	)

	logger.Debug("wired services from %s", configPath)
	return nil
}
