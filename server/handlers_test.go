package server

import (
	"context"
	"fmt"
	"time"

	"discbox/model"
)

// In-memory repositories backing the handler tests. They mirror the store
// contract: ids assigned on create, dateAdded set once, linear barcode scan.

type fakeCDRepo struct {
	cds    []*model.CD
	nextID int
}

func (f *fakeCDRepo) Create(ctx context.Context, cd *model.CD) (string, error) {
	f.nextID++
	stored := *cd
	stored.ID = fmt.Sprintf("cd-%d", f.nextID)
	if stored.DateAdded.IsZero() {
		stored.DateAdded = time.Now()
	}
	f.cds = append(f.cds, &stored)
	return stored.ID, nil
}

func (f *fakeCDRepo) GetByID(ctx context.Context, id string) (*model.CD, error) {
	for _, cd := range f.cds {
		if cd.ID == id {
			copied := *cd
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCDRepo) ListAll(ctx context.Context) ([]*model.CD, error) {
	out := make([]*model.CD, 0, len(f.cds))
	for _, cd := range f.cds {
		copied := *cd
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeCDRepo) Update(ctx context.Context, id string, update *model.CDUpdate) error {
	for _, cd := range f.cds {
		if cd.ID != id {
			continue
		}
		if update.Title != nil {
			cd.Title = *update.Title
		}
		if update.Artist != nil {
			cd.Artist = *update.Artist
		}
		if update.Year != nil {
			cd.Year = *update.Year
		}
		if update.Genre != nil {
			cd.Genre = *update.Genre
		}
		if update.Barcode != nil {
			cd.Barcode = *update.Barcode
		}
		if update.CoverURL != nil {
			cd.CoverURL = *update.CoverURL
		}
		if update.DurationMinutes != nil {
			cd.DurationMinutes = *update.DurationMinutes
		}
		if update.Notes != nil {
			cd.Notes = *update.Notes
		}
		return nil
	}
	return nil
}

func (f *fakeCDRepo) Delete(ctx context.Context, id string) error {
	for i, cd := range f.cds {
		if cd.ID == id {
			f.cds = append(f.cds[:i], f.cds[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCDRepo) FindByBarcode(ctx context.Context, barcode, excludeID string) (*model.CD, error) {
	for _, cd := range f.cds {
		if cd.Barcode == barcode && cd.ID != excludeID {
			copied := *cd
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeDVDRepo struct {
	dvds   []*model.DVD
	nextID int
}

func (f *fakeDVDRepo) Create(ctx context.Context, dvd *model.DVD) (string, error) {
	f.nextID++
	stored := *dvd
	stored.ID = fmt.Sprintf("dvd-%d", f.nextID)
	if stored.DateAdded.IsZero() {
		stored.DateAdded = time.Now()
	}
	f.dvds = append(f.dvds, &stored)
	return stored.ID, nil
}

func (f *fakeDVDRepo) GetByID(ctx context.Context, id string) (*model.DVD, error) {
	for _, dvd := range f.dvds {
		if dvd.ID == id {
			copied := *dvd
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDVDRepo) ListAll(ctx context.Context) ([]*model.DVD, error) {
	out := make([]*model.DVD, 0, len(f.dvds))
	for _, dvd := range f.dvds {
		copied := *dvd
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeDVDRepo) Update(ctx context.Context, id string, update *model.DVDUpdate) error {
	for _, dvd := range f.dvds {
		if dvd.ID != id {
			continue
		}
		if update.Title != nil {
			dvd.Title = *update.Title
		}
		if update.Director != nil {
			dvd.Director = *update.Director
		}
		if update.Year != nil {
			dvd.Year = *update.Year
		}
		if update.Genre != nil {
			dvd.Genre = *update.Genre
		}
		if update.Barcode != nil {
			dvd.Barcode = *update.Barcode
		}
		if update.CoverURL != nil {
			dvd.CoverURL = *update.CoverURL
		}
		if update.RuntimeMinutes != nil {
			dvd.RuntimeMinutes = *update.RuntimeMinutes
		}
		if update.Rating != nil {
			dvd.Rating = *update.Rating
		}
		if update.Notes != nil {
			dvd.Notes = *update.Notes
		}
		return nil
	}
	return nil
}

func (f *fakeDVDRepo) Delete(ctx context.Context, id string) error {
	for i, dvd := range f.dvds {
		if dvd.ID == id {
			f.dvds = append(f.dvds[:i], f.dvds[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeDVDRepo) FindByBarcode(ctx context.Context, barcode, excludeID string) (*model.DVD, error) {
	for _, dvd := range f.dvds {
		if dvd.Barcode == barcode && dvd.ID != excludeID {
			copied := *dvd
			return &copied, nil
		}
	}
	return nil, nil
}
