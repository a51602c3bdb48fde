package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/timexy/internal/languages"
)

const (
	// uriScheme is the custom URI scheme for timexy resources.
	uriScheme = "timexy://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "languages",
		Name:        "languages",
		Description: "Supported languages and the size of their rule tables",
		MIMEType:    "application/json",
	}, s.handleLanguagesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Stored annotated documents",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-annotations",
		Description: "Text and annotations of a stored document",
		MIMEType:    "application/json",
	}, s.handleDocumentResource)
}

// handleLanguagesResource lists the rule tables.
func (s *Server) handleLanguagesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type languageInfo struct {
		ID    string `json:"id"`
		Tag   string `json:"tag"`
		Rules int    `json:"rules"`
	}

	ids := languages.Supported()
	infos := make([]languageInfo, len(ids))
	for i, id := range ids {
		t := languages.MustLookup(id)
		infos[i] = languageInfo{ID: id, Tag: t.Tag.String(), Rules: len(t.Rules)}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleDocumentsResource lists stored documents.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	docs, err := s.ports.Document.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	type docInfo struct {
		ID       string `json:"id"`
		URI      string `json:"uri"`
		Language string `json:"language"`
		Entities int    `json:"entities"`
	}

	infos := make([]docInfo, len(docs))
	for i := range docs {
		infos[i] = docInfo{
			ID:       docs[i].ID,
			URI:      docs[i].URI,
			Language: docs[i].Language,
			Entities: len(docs[i].Entities()),
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleDocumentResource returns one document with its annotations.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Document.Get(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	type documentInfo struct {
		ID       string         `json:"id"`
		URI      string         `json:"uri"`
		Language string         `json:"language"`
		Text     string         `json:"text"`
		Entities []EntityOutput `json:"entities"`
	}

	entities := doc.Entities()
	info := documentInfo{
		ID:       doc.ID,
		URI:      doc.URI,
		Language: doc.Language,
		Text:     doc.Text,
		Entities: make([]EntityOutput, len(entities)),
	}
	for i, e := range entities {
		info.Entities[i] = EntityOutput{
			Text:  e.Text,
			Start: e.Start,
			End:   e.End,
			Label: e.Label,
			KBID:  e.KBID,
			Kind:  e.Value.Kind.String(),
		}
	}

	return jsonResult(req.Params.URI, info)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like timexy://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
