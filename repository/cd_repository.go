package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"discbox/model"

	"github.com/google/uuid"
)

// CDRepository defines the store operations for the "cds" collection.
type CDRepository interface {
	// Create inserts a new CD and returns its store-assigned id.
	// The id and dateAdded fields of the input are ignored.
	Create(ctx context.Context, cd *model.CD) (string, error)

	// GetByID returns the CD with the given id, or nil if it does not exist.
	GetByID(ctx context.Context, id string) (*model.CD, error)

	// ListAll returns every CD, newest first.
	ListAll(ctx context.Context) ([]*model.CD, error)

	// Update applies a partial update. Unset fields are left unchanged.
	Update(ctx context.Context, id string, update *model.CDUpdate) error

	// Delete removes the CD with the given id.
	Delete(ctx context.Context, id string) error

	// FindByBarcode returns the first CD sharing the barcode, skipping the
	// record with excludeID. Used by the duplicate-barcode check.
	FindByBarcode(ctx context.Context, barcode, excludeID string) (*model.CD, error)
}

// MySQLCDRepository is the MySQL implementation of CDRepository.
type MySQLCDRepository struct {
	db *sql.DB
}

// NewMySQLCDRepository creates a new MySQL CD repository.
func NewMySQLCDRepository(db *sql.DB) *MySQLCDRepository {
	return &MySQLCDRepository{db: db}
}

func (r *MySQLCDRepository) Create(ctx context.Context, cd *model.CD) (string, error) {
	query := `
		INSERT INTO cds (id, title, artist, year, genre, barcode, cover_url, duration_minutes, notes, date_added)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query,
		id,
		cd.Title,
		cd.Artist,
		cd.Year,
		cd.Genre,
		cd.Barcode,
		cd.CoverURL,
		cd.DurationMinutes,
		cd.Notes,
		time.Now(),
	)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (r *MySQLCDRepository) GetByID(ctx context.Context, id string) (*model.CD, error) {
	query := `
		SELECT id, title, artist, year, genre, barcode, cover_url, duration_minutes, notes, date_added
		FROM cds
		WHERE id = ?
	`

	cd := &model.CD{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cd.ID,
		&cd.Title,
		&cd.Artist,
		&cd.Year,
		&cd.Genre,
		&cd.Barcode,
		&cd.CoverURL,
		&cd.DurationMinutes,
		&cd.Notes,
		&cd.DateAdded,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return cd, nil
}

func (r *MySQLCDRepository) ListAll(ctx context.Context) ([]*model.CD, error) {
	query := `
		SELECT id, title, artist, year, genre, barcode, cover_url, duration_minutes, notes, date_added
		FROM cds
		ORDER BY date_added DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cds []*model.CD
	for rows.Next() {
		cd := &model.CD{}
		err := rows.Scan(
			&cd.ID,
			&cd.Title,
			&cd.Artist,
			&cd.Year,
			&cd.Genre,
			&cd.Barcode,
			&cd.CoverURL,
			&cd.DurationMinutes,
			&cd.Notes,
			&cd.DateAdded,
		)
		if err != nil {
			return nil, err
		}
		cds = append(cds, cd)
	}

	return cds, rows.Err()
}

func (r *MySQLCDRepository) Update(ctx context.Context, id string, update *model.CDUpdate) error {
	// date_added is set once at creation and never touched here.
	var sets []string
	var args []interface{}

	appendSet := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if update.Title != nil {
		appendSet("title", *update.Title)
	}
	if update.Artist != nil {
		appendSet("artist", *update.Artist)
	}
	if update.Year != nil {
		appendSet("year", *update.Year)
	}
	if update.Genre != nil {
		appendSet("genre", *update.Genre)
	}
	if update.Barcode != nil {
		appendSet("barcode", *update.Barcode)
	}
	if update.CoverURL != nil {
		appendSet("cover_url", *update.CoverURL)
	}
	if update.DurationMinutes != nil {
		appendSet("duration_minutes", *update.DurationMinutes)
	}
	if update.Notes != nil {
		appendSet("notes", *update.Notes)
	}

	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE cds SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *MySQLCDRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM cds WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *MySQLCDRepository) FindByBarcode(ctx context.Context, barcode, excludeID string) (*model.CD, error) {
	query := `
		SELECT id, title, artist, year, genre, barcode, cover_url, duration_minutes, notes, date_added
		FROM cds
		WHERE barcode = ? AND id <> ?
		LIMIT 1
	`

	cd := &model.CD{}
	err := r.db.QueryRowContext(ctx, query, barcode, excludeID).Scan(
		&cd.ID,
		&cd.Title,
		&cd.Artist,
		&cd.Year,
		&cd.Genre,
		&cd.Barcode,
		&cd.CoverURL,
		&cd.DurationMinutes,
		&cd.Notes,
		&cd.DateAdded,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return cd, nil
}
