// Command timexy recognises dates and durations in text.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/timexy/internal/adapters/driven/config/file"
	"github.com/custodia-labs/timexy/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/timexy/internal/adapters/driven/tokenizer/rule"
	"github.com/custodia-labs/timexy/internal/adapters/driving/cli"
	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driving"
	"github.com/custodia-labs/timexy/internal/core/services"
	"github.com/custodia-labs/timexy/internal/logger"
	"github.com/custodia-labs/timexy/internal/normalisers"
)

func main() {
	if err := cli.Execute(bootstrap); err != nil {
		os.Exit(1)
	}
}

// bootstrap opens the config file and document database and wires the
// core services around them.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}
	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(configDir, "data")
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}
	logger.Debug("Config: %s, documents: %s", configStore.Path(), store.Path())

	documents := services.NewDocumentService(store.DocumentStore())
	registry := normalisers.Defaults()

	return &cli.Services{
		Config:    services.NewConfigService(configStore),
		Documents: documents,
		Annotator: func(lang string) (driving.AnnotationService, error) {
			return services.NewAnnotator(lang, services.WithTokenizer(rule.New()))
		},
		Ingestor: func(
			annotator driving.AnnotationService,
			cfg domain.Config,
			save bool,
			onResult driving.ResultHandler,
		) driving.IngestService {
			var docs *services.DocumentService
			if save {
				docs = documents
			}
			ingestor := services.NewIngestor(annotator, docs, cfg, onResult)
			ingestor.SetNormalisers(registry)
			ingestor.SetRateLimit(services.DefaultWatchRate, services.DefaultWatchBurst)
			return ingestor
		},
		Close: store.Close,
	}, nil
}
