package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

// auditRepository is the SQL-backed implementation of [AuditRepository]. It
// works against both PostgreSQL and SQLite; the dialect only changes the
// placeholder format.
type auditRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewAuditRepository constructs an [AuditRepository] on top of db.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

// Record inserts entry, stamping CreatedAt when unset. A write that fails
// with a retryable error is attempted once more.
func (r *auditRepository) Record(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now().UTC()
	}

	query, args, err := buildInsertAuditQuery(r.db.placeholder, entry)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.Record").Msg("error building query")
		return models.AuditEntry{}, err
	}

	id, err := r.insert(ctx, query, args)
	if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*auditRepository.Record").Msg("retrying audit insert")
		id, err = r.insert(ctx, query, args)
	}
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.Record").Msg("error inserting audit entry")
		return models.AuditEntry{}, r.mapError(err)
	}

	entry.ID = id
	return entry, nil
}

func (r *auditRepository) insert(ctx context.Context, query string, args []any) (int64, error) {
	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *auditRepository) Recent(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAuditQuery(r.db.placeholder, filter)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.Recent").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.Recent").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.mapError(err))
	}
	defer rows.Close()

	entries := make([]models.AuditEntry, 0)
	for rows.Next() {
		var (
			e                            models.AuditEntry
			kind                         string
			actor, runID, status, detail sql.NullString
		)
		if err := rows.Scan(&e.ID, &kind, &actor, &runID, &status, &e.Added, &e.Removed, &e.Failed, &detail, &e.CreatedAt); err != nil {
			log.Err(err).Str("func", "*auditRepository.Recent").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.Kind = models.AuditKind(kind)
		e.Actor = actor.String
		e.RunID = runID.String
		e.Status = status.String
		e.Detail = detail.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*auditRepository.Recent").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *auditRepository) mapError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UndefinedTable:
		return fmt.Errorf("%w: %w", ErrAuditSchemaMissing, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

// nopAuditRepository is used when no audit database is configured.
type nopAuditRepository struct{}

// NewNopAuditRepository returns an [AuditRepository] that stores nothing.
func NewNopAuditRepository() AuditRepository {
	return nopAuditRepository{}
}

func (nopAuditRepository) Record(_ context.Context, entry models.AuditEntry) (models.AuditEntry, error) {
	return entry, nil
}

func (nopAuditRepository) Recent(context.Context, models.AuditFilter) ([]models.AuditEntry, error) {
	return []models.AuditEntry{}, nil
}
