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

// DVDRepository defines the store operations for the "dvds" collection.
type DVDRepository interface {
	// Create inserts a new DVD and returns its store-assigned id.
	// The id and dateAdded fields of the input are ignored.
	Create(ctx context.Context, dvd *model.DVD) (string, error)

	// GetByID returns the DVD with the given id, or nil if it does not exist.
	GetByID(ctx context.Context, id string) (*model.DVD, error)

	// ListAll returns every DVD, newest first.
	ListAll(ctx context.Context) ([]*model.DVD, error)

	// Update applies a partial update. Unset fields are left unchanged.
	Update(ctx context.Context, id string, update *model.DVDUpdate) error

	// Delete removes the DVD with the given id.
	Delete(ctx context.Context, id string) error

	// FindByBarcode returns the first DVD sharing the barcode, skipping the
	// record with excludeID. Used by the duplicate-barcode check.
	FindByBarcode(ctx context.Context, barcode, excludeID string) (*model.DVD, error)
}

// MySQLDVDRepository is the MySQL implementation of DVDRepository.
type MySQLDVDRepository struct {
	db *sql.DB
}

// NewMySQLDVDRepository creates a new MySQL DVD repository.
func NewMySQLDVDRepository(db *sql.DB) *MySQLDVDRepository {
	return &MySQLDVDRepository{db: db}
}

func (r *MySQLDVDRepository) Create(ctx context.Context, dvd *model.DVD) (string, error) {
	query := `
		INSERT INTO dvds (id, title, director, year, genre, barcode, cover_url, runtime_minutes, rating, notes, date_added)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query,
		id,
		dvd.Title,
		dvd.Director,
		dvd.Year,
		dvd.Genre,
		dvd.Barcode,
		dvd.CoverURL,
		dvd.RuntimeMinutes,
		dvd.Rating,
		dvd.Notes,
		time.Now(),
	)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (r *MySQLDVDRepository) GetByID(ctx context.Context, id string) (*model.DVD, error) {
	query := `
		SELECT id, title, director, year, genre, barcode, cover_url, runtime_minutes, rating, notes, date_added
		FROM dvds
		WHERE id = ?
	`

	dvd := &model.DVD{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&dvd.ID,
		&dvd.Title,
		&dvd.Director,
		&dvd.Year,
		&dvd.Genre,
		&dvd.Barcode,
		&dvd.CoverURL,
		&dvd.RuntimeMinutes,
		&dvd.Rating,
		&dvd.Notes,
		&dvd.DateAdded,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return dvd, nil
}

func (r *MySQLDVDRepository) ListAll(ctx context.Context) ([]*model.DVD, error) {
	query := `
		SELECT id, title, director, year, genre, barcode, cover_url, runtime_minutes, rating, notes, date_added
		FROM dvds
		ORDER BY date_added DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dvds []*model.DVD
	for rows.Next() {
		dvd := &model.DVD{}
		err := rows.Scan(
			&dvd.ID,
			&dvd.Title,
			&dvd.Director,
			&dvd.Year,
			&dvd.Genre,
			&dvd.Barcode,
			&dvd.CoverURL,
			&dvd.RuntimeMinutes,
			&dvd.Rating,
			&dvd.Notes,
			&dvd.DateAdded,
		)
		if err != nil {
			return nil, err
		}
		dvds = append(dvds, dvd)
	}

	return dvds, rows.Err()
}

func (r *MySQLDVDRepository) Update(ctx context.Context, id string, update *model.DVDUpdate) error {
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
	if update.Director != nil {
		appendSet("director", *update.Director)
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
	if update.RuntimeMinutes != nil {
		appendSet("runtime_minutes", *update.RuntimeMinutes)
	}
	if update.Rating != nil {
		appendSet("rating", *update.Rating)
	}
	if update.Notes != nil {
		appendSet("notes", *update.Notes)
	}

	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE dvds SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *MySQLDVDRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM dvds WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *MySQLDVDRepository) FindByBarcode(ctx context.Context, barcode, excludeID string) (*model.DVD, error) {
	query := `
		SELECT id, title, director, year, genre, barcode, cover_url, runtime_minutes, rating, notes, date_added
		FROM dvds
		WHERE barcode = ? AND id <> ?
		LIMIT 1
	`

	dvd := &model.DVD{}
	err := r.db.QueryRowContext(ctx, query, barcode, excludeID).Scan(
		&dvd.ID,
		&dvd.Title,
		&dvd.Director,
		&dvd.Year,
		&dvd.Genre,
		&dvd.Barcode,
		&dvd.CoverURL,
		&dvd.RuntimeMinutes,
		&dvd.Rating,
		&dvd.Notes,
		&dvd.DateAdded,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return dvd, nil
}
