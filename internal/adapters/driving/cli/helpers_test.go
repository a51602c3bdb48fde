package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/timexy/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/timexy/internal/adapters/driven/tokenizer/rule"
	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driving"
	"github.com/custodia-labs/timexy/internal/core/services"
)

// testServices holds the in-memory services installed for a test.
type testServices struct {
	config    *services.ConfigService
	documents *services.DocumentService
}

// setupTestServices installs in-memory services and returns a cleanup func.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		config:    services.NewConfigService(memory.NewConfigStore()),
		documents: services.NewDocumentService(memory.NewDocumentStore()),
	}

	Configure(&Services{
		Config:    ts.config,
		Documents: ts.documents,
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
				docs = ts.documents
			}
			return services.NewIngestor(annotator, docs, cfg, onResult)
		},
	})

	return ts, func() { Configure(nil) }
}

// execute runs the root command with fresh flag values and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

// executeWithInput is like execute with input served on stdin.
func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so values do not leak
// between tests sharing the package-level commands.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
