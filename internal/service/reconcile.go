package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"biblio_reconciler/internal/domain"
	"biblio_reconciler/internal/normalize"
)

// ReconcileService drives one pipeline invocation: for every source, in the
// declared order, it normalizes the stream and reconciles each record into
// the warehouse. Authors and journals must exist before the publication row
// references them, so they resolve first.
type ReconcileService struct {
	sources      []Source
	authors      AuthorStore
	journals     JournalStore
	quartiles    QuartileStore
	publications PublicationStore
	runState     RunStateStore
	txManager    TransactionManager
	publisher    Publisher
	logger       *slog.Logger
}

func NewReconcileService(
	sources []Source,
	authors AuthorStore,
	journals JournalStore,
	quartiles QuartileStore,
	publications PublicationStore,
	runState RunStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *ReconcileService {
	return &ReconcileService{
		sources:      sources,
		authors:      authors,
		journals:     journals,
		quartiles:    quartiles,
		publications: publications,
		runState:     runState,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

// Run processes every source stream in order. A failed stream is logged and
// skipped; the run itself only errors when nothing at all can proceed.
func (s *ReconcileService) Run(ctx context.Context) (*domain.RunStats, error) {
	startTime := time.Now()
	stats := &domain.RunStats{}

	for _, src := range s.sources {
		srcStats, err := s.reconcileSource(ctx, src)
		if err != nil {
			stats.SourcesFailed++
			s.logger.Error("source stream failed",
				"source", src.ID(),
				"error", err,
			)
			if srcStats == nil {
				continue
			}
		}
		if srcStats != nil {
			stats.Sources = append(stats.Sources, *srcStats)
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("run completed",
		"sources", len(stats.Sources),
		"sources_failed", stats.SourcesFailed,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *ReconcileService) reconcileSource(ctx context.Context, src Source) (*domain.ReconcileStats, error) {
	startTime := time.Now()
	s.logger.Info("starting reconciliation",
		"source", src.ID(),
		"source_name", src.Name(),
	)

	records, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, src.ID(), err)
	}

	stats := &domain.ReconcileStats{
		SourceID: src.ID(),
		Fetched:  len(records),
	}

	for _, raw := range records {
		pub, err := normalizeRecord(raw)
		if err != nil {
			stats.Skipped++
			s.logger.Warn("skipping malformed record",
				"source", src.ID(),
				"error", err,
			)
			continue
		}

		persisted, err := s.reconcileRecord(ctx, pub)
		if err != nil {
			if errors.Is(err, domain.ErrJournalNameNotFound) {
				stats.Skipped++
				s.logger.Warn("skipping record without journal name",
					"source", src.ID(),
					"title", pub.Title,
					"journal_raw", pub.JournalRaw,
				)
			} else {
				stats.Errors++
				s.logger.Error("failed to reconcile record",
					"source", src.ID(),
					"title", pub.Title,
					"error", err,
				)
			}
			continue
		}

		stats.Ingested++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, persisted, src.ID()); err != nil {
				stats.Errors++
				s.logger.Error("failed to publish publication event",
					"source", src.ID(),
					"title", persisted.Title,
					"error", err,
				)
			} else {
				stats.Published++
			}
		}
	}

	stats.Duration = time.Since(startTime)

	if err := s.updateRunState(ctx, stats); err != nil {
		return stats, fmt.Errorf("update run state: %w", err)
	}

	s.logger.Info("reconciliation completed",
		"source", src.ID(),
		"fetched", stats.Fetched,
		"ingested", stats.Ingested,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func normalizeRecord(raw any) (*domain.RawPublication, error) {
	rec, err := normalize.Detect(raw)
	if err != nil {
		return nil, err
	}
	return normalize.Record(rec)
}

// reconcileRecord resolves authors and the journal for one normalized record
// and appends the publication row. The journal, its quartile history, and
// the publication commit as one transaction; author rows are created up
// front since resolution is idempotent either way.
func (s *ReconcileService) reconcileRecord(ctx context.Context, pub *domain.RawPublication) (*domain.Publication, error) {
	for _, name := range pub.Authors {
		if _, err := s.authors.ResolveOrCreate(ctx, name); err != nil {
			return nil, fmt.Errorf("resolve author %q: %w", name, err)
		}
	}

	journalName, err := normalize.JournalName(pub.JournalRaw)
	if err != nil {
		return nil, err
	}

	var persisted *domain.Publication
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		journalID, err := s.resolveJournal(txCtx, journalName, pub)
		if err != nil {
			return err
		}

		row := &domain.Publication{
			Title:     pub.Title,
			DOI:       pub.DOI,
			Date:      normalize.PublicationDate(pub.DateRaw),
			Link:      pub.Link,
			Abstract:  pub.Abstract,
			JournalID: journalID,
			Quartile:  effectiveQuartile(pub),
		}

		id, err := s.publications.Insert(txCtx, row)
		if err != nil {
			return fmt.Errorf("insert publication: %w", err)
		}
		row.ID = id
		persisted = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	return persisted, nil
}

// resolveJournal creates the journal on first encounter (metadata is
// first-writer-wins) and upserts every history entry even when the journal
// already existed, so the year association stays last-write-wins.
func (s *ReconcileService) resolveJournal(ctx context.Context, name string, pub *domain.RawPublication) (int64, error) {
	status := domain.StatusNotIndexed
	if pub.Indexed() {
		status = domain.StatusIndexed
	}

	journalID, err := s.journals.ResolveOrCreate(ctx, &domain.Journal{
		Name:   name,
		ISSN:   normalize.ISSN(pub.ISSN),
		Status: status,
	})
	if err != nil {
		return 0, fmt.Errorf("resolve journal %q: %w", name, err)
	}

	for _, entry := range pub.History {
		if err := s.quartiles.Upsert(ctx, journalID, entry.Year, normalize.Quartile(entry.Value)); err != nil {
			return 0, fmt.Errorf("upsert quartile %s/%s: %w", name, entry.Year, err)
		}
	}

	return journalID, nil
}

// effectiveQuartile is the resolved label of the last history entry, or the
// sentinel when the record carried no structured history.
func effectiveQuartile(pub *domain.RawPublication) string {
	if len(pub.History) == 0 {
		return domain.NotAvailable
	}
	return normalize.Quartile(pub.History[len(pub.History)-1].Value)
}

func (s *ReconcileService) updateRunState(ctx context.Context, stats *domain.ReconcileStats) error {
	state, err := s.runState.Get(ctx, stats.SourceID)
	if err != nil {
		return err
	}

	state.SourceID = stats.SourceID
	state.LastRunAt = time.Now()
	state.TotalIngested += int64(stats.Ingested)

	return s.runState.Update(ctx, state)
}
