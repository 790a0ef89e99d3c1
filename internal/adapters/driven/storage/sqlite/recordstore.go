package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
)

// recordStore implements driven.NarrativeRecordStore.
type recordStore struct {
	store *Store
}

var _ driven.NarrativeRecordStore = (*recordStore)(nil)

const recordColumns = `id, matter_title, client_name, seed, narrative_type, bar_mode,
	is_compliant, compliance_score, narrative, word_count, confidence,
	entry_count, total_minutes, vocabulary_version, created_at, options`

// Save inserts a record. Records are immutable, so a duplicate ID fails.
func (s *recordStore) Save(ctx context.Context, r domain.NarrativeRecord) error {
	if r.ID == "" {
		return fmt.Errorf("%w: record id is empty", domain.ErrInvalidInput)
	}

	var options string
	if r.Options != nil {
		data, err := json.Marshal(r.Options)
		if err != nil {
			return fmt.Errorf("encoding record options: %w", err)
		}
		options = string(data)
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO narrative_records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.MatterTitle, r.ClientName, int64(r.Seed), string(r.NarrativeType),
		boolToInt(r.BarMode), boolToInt(r.IsCompliant), r.ComplianceScore,
		r.Narrative, r.WordCount, r.Confidence, r.EntryCount, r.TotalMinutes,
		r.VocabularyVersion, r.CreatedAt.UTC().UnixNano(), options)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("record %s already exists", r.ID)
		}
		return fmt.Errorf("saving narrative record: %w", err)
	}
	return nil
}

// Get retrieves a record by ID.
func (s *recordStore) Get(ctx context.Context, id string) (*domain.NarrativeRecord, error) {
	row := s.store.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM narrative_records WHERE id = ?`, id)

	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting narrative record: %w", err)
	}
	return r, nil
}

// List returns records newest first; ties fall back to insertion order, latest first.
func (s *recordStore) List(ctx context.Context, limit int) ([]domain.NarrativeRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM narrative_records ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying narrative records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.NarrativeRecord, 0)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning narrative record: %w", err)
		}
		records = append(records, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating narrative records: %w", err)
	}
	return records, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.NarrativeRecord, error) {
	var (
		r                    domain.NarrativeRecord
		seed, createdAt      int64
		narrativeType        string
		options              string
		barMode, isCompliant int
	)
	err := row.Scan(&r.ID, &r.MatterTitle, &r.ClientName, &seed, &narrativeType,
		&barMode, &isCompliant, &r.ComplianceScore, &r.Narrative, &r.WordCount,
		&r.Confidence, &r.EntryCount, &r.TotalMinutes, &r.VocabularyVersion, &createdAt, &options)
	if err != nil {
		return nil, err
	}
	r.Seed = uint64(seed)
	r.NarrativeType = domain.NarrativeType(narrativeType)
	r.BarMode = barMode != 0
	r.IsCompliant = isCompliant != 0
	r.CreatedAt = time.Unix(0, createdAt).UTC()
	if options != "" {
		var opts domain.NarrativeOptions
		if err := json.Unmarshal([]byte(options), &opts); err != nil {
			return nil, fmt.Errorf("decoding record options: %w", err)
		}
		r.Options = &opts
	}
	return &r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
