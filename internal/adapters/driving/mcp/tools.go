package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

// AnnotateInput is the input schema for the annotate tool.
type AnnotateInput struct {
	Text      string `json:"text" jsonschema:"the text to search for dates and durations"`
	Language  string `json:"language,omitempty" jsonschema:"rule table language: en, de or fr (default from config)"`
	Label     string `json:"label,omitempty" jsonschema:"annotation label (default from config)"`
	KBIDType  string `json:"kb_id_type,omitempty" jsonschema:"date value format: timex3 or timestamp"`
	Overwrite bool   `json:"overwrite,omitempty" jsonschema:"replace annotations carrying another label"`
}

// AnnotateOutput is the output schema for the annotate tool.
type AnnotateOutput struct {
	Language string         `json:"language"`
	Entities []EntityOutput `json:"entities"`
	Count    int            `json:"count"`
	Rejected int            `json:"rejected"`
}

// EntityOutput represents a single recognised expression.
type EntityOutput struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
	KBID  string `json:"kb_id"`
	Kind  string `json:"kind"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "annotate",
		Description: "Find dates and durations in text and return their offsets and normalised values",
	}, s.handleAnnotate)
}

// handleAnnotate handles the annotate tool invocation.
func (s *Server) handleAnnotate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnnotateInput,
) (*mcp.CallToolResult, AnnotateOutput, error) {
	cfg, lang, err := s.resolveConfig(input)
	if err != nil {
		return nil, AnnotateOutput{}, err
	}

	annotator, err := s.ports.Annotators(lang)
	if err != nil {
		return nil, AnnotateOutput{}, err
	}

	result, err := annotator.AnnotateText(ctx, input.Text, cfg)
	if err != nil {
		return nil, AnnotateOutput{}, fmt.Errorf("annotating text: %w", err)
	}

	entities := result.Document.Entities()
	output := AnnotateOutput{
		Language: annotator.Language(),
		Entities: make([]EntityOutput, len(entities)),
		Count:    len(entities),
		Rejected: len(result.Rejected),
	}
	for i, e := range entities {
		output.Entities[i] = EntityOutput{
			Text:  e.Text,
			Start: e.Start,
			End:   e.End,
			Label: e.Label,
			KBID:  e.KBID,
			Kind:  e.Value.Kind.String(),
		}
	}

	return nil, output, nil
}

// resolveConfig layers the tool input over the stored settings.
func (s *Server) resolveConfig(input AnnotateInput) (domain.Config, string, error) {
	cfg := domain.DefaultConfig()
	lang := "en"
	if s.ports.Config != nil {
		stored, err := s.ports.Config.Get()
		if err != nil {
			return cfg, "", fmt.Errorf("loading config: %w", err)
		}
		cfg = stored
		lang = s.ports.Config.GetLanguage()
	}

	if input.Language != "" {
		lang = input.Language
	}
	if input.Label != "" {
		cfg.Label = input.Label
	}
	if input.KBIDType != "" {
		kbid, err := domain.ParseKBIDType(input.KBIDType)
		if err != nil {
			return cfg, "", err
		}
		cfg.KBIDType = kbid
	}
	if input.Overwrite {
		cfg.Overwrite = true
	}
	return cfg, lang, nil
}
