package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage annotated documents",
	Long:  `List, inspect and delete documents stored with "annotate --save" or "watch --save".`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show a document and its annotations",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a stored document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

func init() {
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents stored.")
		return nil
	}

	cmd.Println("Documents:")
	for i := range docs {
		uri := docs[i].URI
		if uri == "" {
			uri = "(text)"
		}
		cmd.Printf("  %s  %s  %s  %d entities\n",
			docs[i].ID, docs[i].Language, uri, len(docs[i].Entities()))
	}
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n", doc.ID)
	cmd.Printf("  URI:      %s\n", doc.URI)
	cmd.Printf("  Language: %s\n", doc.Language)
	cmd.Printf("  Tokens:   %d\n", len(doc.Tokens))
	cmd.Printf("  Created:  %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated:  %s\n", doc.UpdatedAt.Format("2006-01-02 15:04:05"))
	cmd.Println()

	entities := doc.Entities()
	if len(entities) == 0 {
		cmd.Println("No annotations.")
		return nil
	}
	cmd.Println("Entities:")
	for i, s := range entities {
		cmd.Printf("  [%d] %q (%d-%d) %s: %s\n", i+1, s.Text, s.Start, s.End, s.Label, s.KBID)
	}
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Deleted document %s\n", args[0])
	return nil
}
