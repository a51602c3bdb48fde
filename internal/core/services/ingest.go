package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
	"github.com/custodia-labs/timexy/internal/core/ports/driving"
	"github.com/custodia-labs/timexy/internal/logger"
	"github.com/custodia-labs/timexy/internal/normalisers"
)

// Ensure Ingestor implements the interface.
var _ driving.IngestService = (*Ingestor)(nil)

// Ingestor runs connector documents through the annotator and, when a
// document service is configured, stores the results keyed by URI.
type Ingestor struct {
	annotator   driving.AnnotationService
	documents   *DocumentService
	cfg         domain.Config
	onResult    driving.ResultHandler
	normalisers *normalisers.Registry
	limiter     *rate.Limiter
}

// Default watch throttling. Editors often emit several writes per save.
const (
	DefaultWatchRate  = 20.0
	DefaultWatchBurst = 50
)

// NewIngestor creates an ingestor. documents and onResult may be nil.
func NewIngestor(
	annotator driving.AnnotationService,
	documents *DocumentService,
	cfg domain.Config,
	onResult driving.ResultHandler,
) *Ingestor {
	return &Ingestor{
		annotator: annotator,
		documents: documents,
		cfg:       cfg,
		onResult:  onResult,
	}
}

// SetNormalisers strips markup by MIME type before annotation. Without a
// registry the raw content is annotated as is.
func (i *Ingestor) SetNormalisers(r *normalisers.Registry) {
	i.normalisers = r
}

// SetRateLimit throttles how many changes Watch annotates per second.
func (i *Ingestor) SetRateLimit(perSecond float64, burst int) {
	i.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
}

// Ingest annotates every document from a full sync of conn.
func (i *Ingestor) Ingest(ctx context.Context, conn driven.Connector) (*driving.IngestStatus, error) {
	if err := conn.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate connector: %w", err)
	}

	status := &driving.IngestStatus{}
	docsCh, errsCh := conn.FullSync(ctx)

	for {
		select {
		case <-ctx.Done():
			return status, ctx.Err()

		case err, ok := <-errsCh:
			if !ok {
				errsCh = nil
				continue
			}
			if err != nil {
				return status, fmt.Errorf("connector error: %w", err)
			}

		case raw, ok := <-docsCh:
			if !ok {
				// Drain a trailing walk error before reporting success.
				if errsCh != nil {
					if err := <-errsCh; err != nil {
						return status, fmt.Errorf("connector error: %w", err)
					}
				}
				logger.Info("Ingest complete: %d documents, %d errors", status.DocumentsProcessed, status.ErrorCount)
				return status, nil
			}

			logger.Debug("Processing: %s", raw.URI)
			if err := i.processOne(ctx, &raw); err != nil {
				status.ErrorCount++
				logger.Warn("Failed to process %s: %v", raw.URI, err)
				continue
			}
			status.DocumentsProcessed++
		}
	}
}

// Watch annotates changed documents until ctx is cancelled. Deleted
// files are removed from the document store.
func (i *Ingestor) Watch(ctx context.Context, conn driven.Connector) error {
	changes, err := conn.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case change, ok := <-changes:
			if !ok {
				return ctx.Err()
			}
			if i.limiter != nil {
				if err := i.limiter.Wait(ctx); err != nil {
					return err
				}
			}

			switch change.Type {
			case domain.ChangeCreated, domain.ChangeUpdated:
				logger.Debug("Processing %s: %s", change.Type, change.Document.URI)
				if err := i.processOne(ctx, &change.Document); err != nil {
					logger.Warn("Failed to process %s: %v", change.Document.URI, err)
				}

			case domain.ChangeDeleted:
				logger.Debug("Deleting: %s", change.Document.URI)
				if err := i.deleteByURI(ctx, change.Document.URI); err != nil {
					logger.Warn("Failed to delete %s: %v", change.Document.URI, err)
				}
			}
		}
	}
}

func (i *Ingestor) processOne(ctx context.Context, raw *domain.RawDocument) error {
	text := string(raw.Content)
	if i.normalisers != nil {
		normalised, err := i.normalisers.Normalise(ctx, raw)
		if err != nil {
			return fmt.Errorf("normalise: %w", err)
		}
		text = normalised
	}

	result, err := i.annotator.AnnotateText(ctx, text, i.cfg)
	if err != nil {
		return fmt.Errorf("annotate: %w", err)
	}

	doc := result.Document
	doc.URI = raw.URI
	doc.Metadata = raw.Metadata

	if i.documents != nil {
		previous, err := i.documents.FindByURI(ctx, raw.URI)
		switch {
		case err == nil:
			doc.ID = previous.ID
			doc.CreatedAt = previous.CreatedAt
			doc.UpdatedAt = time.Now()
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("find document: %w", err)
		}
		if err := i.documents.Save(ctx, doc); err != nil {
			return err
		}
	}

	if i.onResult != nil {
		i.onResult(raw.URI, result)
	}
	return nil
}

func (i *Ingestor) deleteByURI(ctx context.Context, uri string) error {
	if i.documents == nil {
		return nil
	}
	doc, err := i.documents.FindByURI(ctx, uri)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return i.documents.Delete(ctx, doc.ID)
}
