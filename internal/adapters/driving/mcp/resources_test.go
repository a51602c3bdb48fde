package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid document URI", "timexy://documents/doc-456", "doc-456"},
		{"invalid prefix", "file://documents/doc-456", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDocumentID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleLanguagesResource(t *testing.T) {
	server, err := NewServer(&Ports{Annotators: realAnnotators})
	require.NoError(t, err)

	result, err := server.handleLanguagesResource(context.Background(), makeReadResourceRequest("timexy://languages"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Contains(t, result.Contents[0].Text, `"id": "de"`)
	assert.Contains(t, result.Contents[0].Text, `"id": "en"`)
	assert.Contains(t, result.Contents[0].Text, `"id": "fr"`)
}

func TestServer_handleDocumentsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil document service returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Annotators: realAnnotators})
		require.NoError(t, err)

		result, err := server.handleDocumentsResource(ctx, makeReadResourceRequest("timexy://documents"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("lists stored documents", func(t *testing.T) {
		ports := newPorts()
		annotator, err := realAnnotators("en")
		require.NoError(t, err)
		res, err := annotator.AnnotateText(ctx, "It took six years.", domain.DefaultConfig())
		require.NoError(t, err)
		res.Document.URI = "/notes.txt"
		require.NoError(t, ports.Document.Save(ctx, res.Document))

		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleDocumentsResource(ctx, makeReadResourceRequest("timexy://documents"))

		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, res.Document.ID)
		assert.Contains(t, result.Contents[0].Text, "/notes.txt")
		assert.Contains(t, result.Contents[0].Text, `"entities": 1`)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Annotators: realAnnotators,
			Document:   &mockDocumentService{err: errors.New("database error")},
		})
		require.NoError(t, err)

		_, err = server.handleDocumentsResource(ctx, makeReadResourceRequest("timexy://documents"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing documents")
	})
}

func TestServer_handleDocumentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil document service is not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Annotators: realAnnotators})
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("timexy://documents/doc-1"))
		assert.Error(t, err)
	})

	t.Run("invalid URI is not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Annotators: realAnnotators, Document: &mockDocumentService{}})
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("file://doc-1"))
		assert.Error(t, err)
	})

	t.Run("returns annotations", func(t *testing.T) {
		annotator, err := realAnnotators("en")
		require.NoError(t, err)
		res, err := annotator.AnnotateText(ctx, "Due 01.01.1990", domain.DefaultConfig())
		require.NoError(t, err)
		res.Document.ID = "doc-1"

		server, err := NewServer(&Ports{
			Annotators: realAnnotators,
			Document:   &mockDocumentService{document: res.Document},
		})
		require.NoError(t, err)

		result, err := server.handleDocumentResource(ctx, makeReadResourceRequest("timexy://documents/doc-1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"text": "Due 01.01.1990"`)
		assert.Contains(t, result.Contents[0].Text, `"kind": "date"`)
	})

	t.Run("returns error on get failure", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Annotators: realAnnotators,
			Document:   &mockDocumentService{err: domain.ErrNotFound},
		})
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("timexy://documents/doc-9"))

		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
