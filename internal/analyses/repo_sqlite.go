package analyses

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SQLiteRepo implements Repo on the local SQLite database.
type SQLiteRepo struct {
	DB *sql.DB
}

// NewSQLiteRepo constructs a SQLiteRepo.
func NewSQLiteRepo(database *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{DB: database}
}

// timeFormat is how created_at is stored. RFC 3339 in UTC sorts
// lexicographically, so MIN/MAX and ORDER BY on the column stay correct.
const timeFormat = time.RFC3339Nano

const analysisColumns = `id, created_at, text, word_count, credits, headline, prediction_short,
       fraction_ai, fraction_ai_assisted, fraction_human, request_json, response_json`

// Create inserts a new analysis and returns its assigned id.
func (r *SQLiteRepo) Create(ctx context.Context, analysis Analysis) (int64, error) {
	const query = `
INSERT INTO analyses (
	created_at, text, word_count, credits, headline, prediction_short,
	fraction_ai, fraction_ai_assisted, fraction_human, request_json, response_json
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query,
		analysis.CreatedAt.UTC().Format(timeFormat),
		analysis.Text,
		analysis.WordCount,
		analysis.Credits,
		analysis.Headline,
		analysis.PredictionShort,
		analysis.FractionAI,
		analysis.FractionAIAssisted,
		analysis.FractionHuman,
		string(analysis.RequestJSON),
		string(analysis.ResponseJSON),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID returns an analysis by id.
func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE id = ? LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id)
	a, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return a, nil
}

// List returns analyses newest first.
func (r *SQLiteRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	query := `SELECT ` + analysisColumns + `
FROM analyses
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnalyses(rows)
}

// ListAll returns the full history newest first, for export.
func (r *SQLiteRepo) ListAll(ctx context.Context) ([]Analysis, error) {
	query := `SELECT ` + analysisColumns + `
FROM analyses
ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnalyses(rows)
}

// Search returns analyses whose text contains the query substring.
func (r *SQLiteRepo) Search(ctx context.Context, query string, limit int) ([]Analysis, error) {
	stmt := `SELECT ` + analysisColumns + `
FROM analyses
WHERE text LIKE ?
ORDER BY created_at DESC, id DESC
LIMIT ?`
	rows, err := r.DB.QueryContext(ctx, stmt, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnalyses(rows)
}

// Delete removes an analysis. It reports whether a row existed.
func (r *SQLiteRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Stats aggregates the whole table. Cost is left for the caller, which knows
// the configured unit price.
func (r *SQLiteRepo) Stats(ctx context.Context) (Stats, error) {
	const query = `
SELECT COUNT(*),
       COALESCE(SUM(word_count), 0),
       COALESCE(SUM(credits), 0),
       MIN(created_at),
       MAX(created_at)
FROM analyses`
	var s Stats
	var first, last sql.NullString
	if err := r.DB.QueryRowContext(ctx, query).Scan(
		&s.TotalAnalyses,
		&s.TotalWords,
		&s.TotalCredits,
		&first,
		&last,
	); err != nil {
		return Stats{}, err
	}
	if first.Valid {
		if t, err := time.Parse(timeFormat, first.String); err == nil {
			s.FirstAnalysis = &t
		}
	}
	if last.Valid {
		if t, err := time.Parse(timeFormat, last.String); err == nil {
			s.LastAnalysis = &t
		}
	}
	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var createdAt string
	var headline, predictionShort sql.NullString
	var fractionAI, fractionAIAssisted, fractionHuman sql.NullFloat64
	var requestJSON, responseJSON sql.NullString
	if err := row.Scan(
		&a.ID,
		&createdAt,
		&a.Text,
		&a.WordCount,
		&a.Credits,
		&headline,
		&predictionShort,
		&fractionAI,
		&fractionAIAssisted,
		&fractionHuman,
		&requestJSON,
		&responseJSON,
	); err != nil {
		return Analysis{}, err
	}
	if t, err := time.Parse(timeFormat, createdAt); err == nil {
		a.CreatedAt = t
	}
	if headline.Valid {
		a.Headline = headline.String
	}
	if predictionShort.Valid {
		a.PredictionShort = predictionShort.String
	}
	if fractionAI.Valid {
		a.FractionAI = fractionAI.Float64
	}
	if fractionAIAssisted.Valid {
		a.FractionAIAssisted = fractionAIAssisted.Float64
	}
	if fractionHuman.Valid {
		a.FractionHuman = fractionHuman.Float64
	}
	if requestJSON.Valid && requestJSON.String != "" {
		a.RequestJSON = []byte(requestJSON.String)
	}
	if responseJSON.Valid && responseJSON.String != "" {
		a.ResponseJSON = []byte(responseJSON.String)
	}
	return a, nil
}

func collectAnalyses(rows *sql.Rows) ([]Analysis, error) {
	var out []Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
