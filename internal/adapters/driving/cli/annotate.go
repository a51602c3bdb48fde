package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/logger"
)

var (
	annotateText string
	annotateJSON bool
	annotateSave bool
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [file|-]",
	Short: "Annotate dates and durations in text",
	Long: `Reads text from a file, from stdin ("-"), or from --text and prints
every recognised date and duration with its character offsets and value.

Use --save to store the annotated document for later inspection with
"timexy document".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateText, "text", "t", "", "annotate this text instead of a file")
	annotateCmd.Flags().BoolVar(&annotateJSON, "json", false, "output entities as JSON")
	annotateCmd.Flags().BoolVar(&annotateSave, "save", false, "store the annotated document")
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	text, uri, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	annotator, cfg, err := newAnnotator()
	if err != nil {
		return err
	}

	ctx := context.Background()
	result, err := annotator.AnnotateText(ctx, text, cfg)
	if err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}
	result.Document.URI = uri

	if annotateSave {
		if documentService == nil {
			return errors.New("document service not configured")
		}
		if err := documentService.Save(ctx, result.Document); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
	}

	if annotateJSON {
		return outputAnnotateJSON(cmd, result)
	}
	outputAnnotateTable(cmd, result)
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if annotateText != "" {
		if len(args) > 0 {
			return "", "", errors.New("use either --text or a file argument, not both")
		}
		return annotateText, "", nil
	}
	if len(args) == 0 {
		return "", "", errors.New("no input: pass a file, \"-\" for stdin, or --text")
	}

	if args[0] == "-" {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			cmd.PrintErrln("Reading from stdin, press Ctrl+D to finish.")
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "-", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}

// entityView is the JSON shape of one annotation.
type entityView struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
	KBID  string `json:"kb_id"`
	Kind  string `json:"kind"`
}

type rejectionView struct {
	Text   string `json:"text"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Reason string `json:"reason"`
}

type annotateView struct {
	ID       string          `json:"id,omitempty"`
	URI      string          `json:"uri,omitempty"`
	Language string          `json:"language"`
	Entities []entityView    `json:"entities"`
	Rejected []rejectionView `json:"rejected"`
}

func toEntityView(s domain.Span) entityView {
	return entityView{
		Text:  s.Text,
		Start: s.Start,
		End:   s.End,
		Label: s.Label,
		KBID:  s.KBID,
		Kind:  s.Value.Kind.String(),
	}
}

func outputAnnotateJSON(cmd *cobra.Command, result *domain.AnnotationResult) error {
	view := annotateView{
		ID:       result.Document.ID,
		URI:      result.Document.URI,
		Language: result.Document.Language,
		Entities: make([]entityView, 0, len(result.Accepted)),
		Rejected: make([]rejectionView, 0, len(result.Rejected)),
	}
	for _, s := range result.Document.Entities() {
		view.Entities = append(view.Entities, toEntityView(s))
	}
	for _, r := range result.Rejected {
		view.Rejected = append(view.Rejected, rejectionView{
			Text:   r.Span.Text,
			Start:  r.Span.Start,
			End:    r.Span.End,
			Reason: r.Reason.String(),
		})
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnnotateTable(cmd *cobra.Command, result *domain.AnnotationResult) {
	entities := result.Document.Entities()
	if len(entities) == 0 {
		cmd.Println("No temporal expressions found.")
	} else {
		cmd.Println("Entities:")
		for i, s := range entities {
			cmd.Printf("  [%d] %q (%d-%d) %s: %s\n", i+1, s.Text, s.Start, s.End, s.Label, s.KBID)
		}
	}

	if len(result.Rejected) > 0 {
		cmd.Printf("Rejected: %d candidate(s)\n", len(result.Rejected))
		if logger.IsVerbose() {
			for _, r := range result.Rejected {
				cmd.Printf("  %q (%d-%d): %s\n", r.Span.Text, r.Span.Start, r.Span.End, r.Reason)
			}
		}
	}

	if result.Document.ID != "" {
		cmd.Printf("Saved document %s\n", result.Document.ID)
	}
}
