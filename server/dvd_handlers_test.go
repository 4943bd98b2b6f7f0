package server

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"discbox/model"
)

func TestCreateDVD(t *testing.T) {
	router, _, repo := newTestEnv()

	rec := doRequest(t, router, http.MethodPost, "/api/dvds",
		`{"title":"Inception","director":"Christopher Nolan","year":2010,"genre":"Sci-Fi","rating":"12A","runtime":148}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created model.DVD
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Error("id not assigned by the store")
	}
	if created.Rating != "12A" || created.RuntimeMinutes != 148 {
		t.Errorf("video fields lost on create: %+v", created)
	}
	if len(repo.dvds) != 1 {
		t.Errorf("store holds %d records, want 1", len(repo.dvds))
	}
}

func TestCreateDVDRequiresDirector(t *testing.T) {
	router, _, repo := newTestEnv()

	rec := doRequest(t, router, http.MethodPost, "/api/dvds", `{"title":"Inception"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(repo.dvds) != 0 {
		t.Errorf("store changed by rejected save")
	}
}

func TestCreateDVDDuplicateBarcodeNeedsConfirmation(t *testing.T) {
	router, _, repo := newTestEnv()
	repo.dvds = append(repo.dvds, &model.DVD{
		ID: "dvd-1", Title: "Inception", Director: "Christopher Nolan", Barcode: "883929106721",
	})

	rec := doRequest(t, router, http.MethodPost, "/api/dvds",
		`{"title":"Inception (Steelbook)","director":"Christopher Nolan","barcode":"883929106721"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if len(repo.dvds) != 1 {
		t.Errorf("store changed by declined save: %d records", len(repo.dvds))
	}

	rec = doRequest(t, router, http.MethodPost, "/api/dvds?confirm=true",
		`{"title":"Inception (Steelbook)","director":"Christopher Nolan","barcode":"883929106721"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("confirmed status = %d, want 201", rec.Code)
	}
	if len(repo.dvds) != 2 {
		t.Errorf("store holds %d records after confirmed save, want 2", len(repo.dvds))
	}
}

func TestUpdateDVDPartial(t *testing.T) {
	router, _, repo := newTestEnv()

	added := time.Date(2021, 3, 9, 8, 0, 0, 0, time.UTC)
	repo.dvds = append(repo.dvds, &model.DVD{
		ID:        "dvd-1",
		Title:     "Inception",
		Director:  "Christopher Nolan",
		Year:      2010,
		Genre:     "Sci-Fi",
		Rating:    "12A",
		DateAdded: added,
	})

	rec := doRequest(t, router, http.MethodPut, "/api/dvds/dvd-1", `{"rating":"15"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var updated model.DVD
	if err := json.NewDecoder(rec.Body).Decode(&updated); err != nil {
		t.Fatal(err)
	}
	if updated.Rating != "15" {
		t.Errorf("rating = %q, want 15", updated.Rating)
	}
	if updated.Title != "Inception" || updated.Director != "Christopher Nolan" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if !updated.DateAdded.Equal(added) {
		t.Errorf("dateAdded changed by update: %v", updated.DateAdded)
	}
}

func TestListDVDsFilterByDirector(t *testing.T) {
	router, _, repo := newTestEnv()
	repo.dvds = append(repo.dvds,
		&model.DVD{ID: "dvd-1", Title: "Inception", Director: "Christopher Nolan"},
		&model.DVD{ID: "dvd-2", Title: "Heat", Director: "Michael Mann"},
	)

	rec := doRequest(t, router, http.MethodGet, "/api/dvds?q=nolan", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var dvds []*model.DVD
	if err := json.NewDecoder(rec.Body).Decode(&dvds); err != nil {
		t.Fatal(err)
	}
	if len(dvds) != 1 || dvds[0].Title != "Inception" {
		t.Errorf("filtered = %+v, want only Inception", dvds)
	}
}

func TestDeleteDVD(t *testing.T) {
	router, _, repo := newTestEnv()
	repo.dvds = append(repo.dvds, &model.DVD{ID: "dvd-1", Title: "Inception", Director: "Christopher Nolan"})

	rec := doRequest(t, router, http.MethodDelete, "/api/dvds/dvd-1", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if len(repo.dvds) != 0 {
		t.Errorf("store holds %d records after delete, want 0", len(repo.dvds))
	}
}
