package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/timexy/internal/connectors/filesystem"
	"github.com/custodia-labs/timexy/internal/core/domain"
)

var (
	watchOnce bool
	watchSave bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Annotate text files and keep them annotated",
	Long: `Annotates every text file under a directory, then watches it and
re-annotates files as they are created or changed. Hidden files and
directories are skipped.

With --save results are stored and deleted files are removed from the
store. Use --once to stop after the initial pass.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "annotate existing files and exit")
	watchCmd.Flags().BoolVar(&watchSave, "save", false, "store annotated documents")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestorFactory == nil {
		return errors.New("ingest service not configured")
	}
	if watchSave && documentService == nil {
		return errors.New("document service not configured")
	}

	annotator, cfg, err := newAnnotator()
	if err != nil {
		return err
	}

	onResult := func(uri string, result *domain.AnnotationResult) {
		cmd.Printf("%s: %d entities\n", uri, len(result.Document.Entities()))
	}
	ingestor := ingestorFactory(annotator, cfg, watchSave, onResult)

	conn := filesystem.New(args[0])
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	status, err := ingestor.Ingest(ctx, conn)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	cmd.Printf("Annotated %d documents (%d errors)\n", status.DocumentsProcessed, status.ErrorCount)

	if watchOnce {
		return nil
	}

	cmd.Printf("Watching %s, press Ctrl+C to stop\n", args[0])
	if err := ingestor.Watch(ctx, conn); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
