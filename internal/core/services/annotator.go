package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
	"github.com/custodia-labs/timexy/internal/core/ports/driving"
	"github.com/custodia-labs/timexy/internal/languages"
	"github.com/custodia-labs/timexy/internal/logger"
	"github.com/custodia-labs/timexy/internal/recognizers"
)

// Ensure Annotator implements the interface.
var _ driving.AnnotationService = (*Annotator)(nil)

// Annotator recognises dates and durations for one language.
// It holds no per-document state and may be shared between goroutines
// as long as each call works on its own document.
type Annotator struct {
	language  string
	table     *languages.Table
	tokenizer driven.Tokenizer
	pipeline  driven.RecognizerPipeline
	registry  *recognizers.Registry
	names     []string
}

// AnnotatorOption configures an Annotator.
type AnnotatorOption func(*Annotator)

// WithTokenizer sets the tokenizer used by AnnotateText.
func WithTokenizer(t driven.Tokenizer) AnnotatorOption {
	return func(a *Annotator) {
		a.tokenizer = t
	}
}

// WithPipeline replaces the recognizer pipeline built from the registry.
func WithPipeline(p driven.RecognizerPipeline) AnnotatorOption {
	return func(a *Annotator) {
		a.pipeline = p
	}
}

// WithRecognizers selects which registered recognizers run, in order.
func WithRecognizers(names ...string) AnnotatorOption {
	return func(a *Annotator) {
		a.names = names
	}
}

// NewAnnotator creates an annotator for the given language identifier.
// It fails with an UnsupportedLanguageError when no rule table exists.
func NewAnnotator(lang string, opts ...AnnotatorOption) (*Annotator, error) {
	table, err := languages.Lookup(lang)
	if err != nil {
		return nil, err
	}

	a := &Annotator{
		language: lang,
		table:    table,
		registry: recognizers.NewRegistry(),
		names:    recognizers.DefaultOrder,
	}
	recognizers.RegisterDefaults(a.registry)

	for _, opt := range opts {
		opt(a)
	}

	if a.pipeline == nil {
		p, err := a.registry.BuildPipeline(table, a.names...)
		if err != nil {
			return nil, fmt.Errorf("build recognizers: %w", err)
		}
		a.pipeline = p
	}
	return a, nil
}

// Language returns the identifier of the rule table in use.
func (a *Annotator) Language() string {
	return a.language
}

// Table returns the rule table in use.
func (a *Annotator) Table() *languages.Table {
	return a.table
}

// Annotate runs the recognizers over doc and reconciles the candidates
// into doc.Annotations.
func (a *Annotator) Annotate(ctx context.Context, doc *domain.Document, cfg domain.Config) (*domain.AnnotationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}
	if doc.Annotations == nil {
		doc.Annotations = domain.NewAnnotationSet(len(doc.Tokens))
	}
	if doc.Annotations.TokenCount() != len(doc.Tokens) {
		return nil, fmt.Errorf("%w: annotation set covers %d tokens, document has %d",
			domain.ErrInvalidInput, doc.Annotations.TokenCount(), len(doc.Tokens))
	}

	groups, err := a.pipeline.Candidates(ctx, doc, cfg)
	if err != nil {
		return nil, err
	}

	r := newReconciler(doc.Annotations, cfg)
	for _, group := range groups {
		for _, candidate := range group {
			r.apply(candidate)
		}
	}

	if doc.Language == "" {
		doc.Language = a.language
	}
	doc.UpdatedAt = time.Now()

	result := &domain.AnnotationResult{
		Document: doc,
		Accepted: r.accepted(),
		Rejected: r.rejected,
	}
	logger.Debug("Annotated %d tokens: %d accepted, %d rejected",
		len(doc.Tokens), len(result.Accepted), len(result.Rejected))
	return result, nil
}

// AnnotateText tokenizes text into a new document and annotates it.
func (a *Annotator) AnnotateText(ctx context.Context, text string, cfg domain.Config) (*domain.AnnotationResult, error) {
	if a.tokenizer == nil {
		return nil, fmt.Errorf("%w: no tokenizer configured", domain.ErrInvalidInput)
	}
	doc := domain.NewDocument(text, a.tokenizer.Tokenize(text))
	doc.Language = a.language
	doc.CreatedAt = time.Now()
	return a.Annotate(ctx, doc, cfg)
}
