package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"discbox/config"
	"discbox/model"

	"github.com/gorilla/mux"
)

func newTestEnv() (*mux.Router, *fakeCDRepo, *fakeDVDRepo) {
	cdRepo := &fakeCDRepo{}
	dvdRepo := &fakeDVDRepo{}
	handler := NewAPIHandler(cdRepo, dvdRepo, nil, nil, nil, &config.Config{})

	router := mux.NewRouter()
	registerRoutes(router, handler)
	return router, cdRepo, dvdRepo
}

func doRequest(t *testing.T, router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateCDAppliesDefaults(t *testing.T) {
	router, repo, _ := newTestEnv()

	rec := doRequest(t, router, http.MethodPost, "/api/cds",
		`{"title":"Abbey Road","artist":"The Beatles"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created model.CD
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Error("id not assigned by the store")
	}
	if created.Year != time.Now().Year() {
		t.Errorf("year = %d, want current year default", created.Year)
	}
	if created.Genre != "Unknown" {
		t.Errorf("genre = %q, want Unknown default", created.Genre)
	}
	if created.DateAdded.IsZero() {
		t.Error("dateAdded not set at creation")
	}
	if len(repo.cds) != 1 {
		t.Errorf("store holds %d records, want 1", len(repo.cds))
	}
}

func TestCreateCDValidation(t *testing.T) {
	router, repo, _ := newTestEnv()

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"artist":"The Beatles"}`},
		{"missing artist", `{"title":"Abbey Road"}`},
		{"blank title", `{"title":"   ","artist":"The Beatles"}`},
		{"year too old", `{"title":"Abbey Road","artist":"The Beatles","year":1850}`},
		{"year in future", `{"title":"Abbey Road","artist":"The Beatles","year":3000}`},
		{"malformed body", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/cds", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}

	if len(repo.cds) != 0 {
		t.Errorf("store holds %d records, want 0 after rejected saves", len(repo.cds))
	}
}

func TestCreateCDDuplicateBarcodeNeedsConfirmation(t *testing.T) {
	router, repo, _ := newTestEnv()

	first := doRequest(t, router, http.MethodPost, "/api/cds",
		`{"title":"Abbey Road","artist":"The Beatles","barcode":"012345678905"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", first.Code)
	}

	// Second save with the same barcode: blocked until confirmed.
	second := doRequest(t, router, http.MethodPost, "/api/cds",
		`{"title":"Abbey Road (Remaster)","artist":"The Beatles","barcode":"012345678905"}`)
	if second.Code != http.StatusConflict {
		t.Fatalf("duplicate create status = %d, want 409", second.Code)
	}
	if len(repo.cds) != 1 {
		t.Errorf("store changed by declined save: %d records, want 1", len(repo.cds))
	}

	var conflict duplicateResponse
	if err := json.NewDecoder(second.Body).Decode(&conflict); err != nil {
		t.Fatal(err)
	}
	if conflict.Existing == nil {
		t.Error("conflict response missing the existing record")
	}

	confirmed := doRequest(t, router, http.MethodPost, "/api/cds?confirm=true",
		`{"title":"Abbey Road (Remaster)","artist":"The Beatles","barcode":"012345678905"}`)
	if confirmed.Code != http.StatusCreated {
		t.Fatalf("confirmed create status = %d, want 201", confirmed.Code)
	}
	if len(repo.cds) != 2 {
		t.Errorf("store holds %d records after confirmed save, want 2", len(repo.cds))
	}
}

func TestUpdateCDPartial(t *testing.T) {
	router, repo, _ := newTestEnv()

	added := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
	repo.cds = append(repo.cds, &model.CD{
		ID:        "cd-1",
		Title:     "Abbey Road",
		Artist:    "The Beatles",
		Year:      1969,
		Genre:     "Rock",
		DateAdded: added,
	})

	rec := doRequest(t, router, http.MethodPut, "/api/cds/cd-1", `{"notes":"mint condition"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var updated model.CD
	if err := json.NewDecoder(rec.Body).Decode(&updated); err != nil {
		t.Fatal(err)
	}
	if updated.Notes != "mint condition" {
		t.Errorf("notes = %q", updated.Notes)
	}
	if updated.Title != "Abbey Road" || updated.Artist != "The Beatles" || updated.Year != 1969 {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if !updated.DateAdded.Equal(added) {
		t.Errorf("dateAdded changed by update: %v", updated.DateAdded)
	}
}

func TestUpdateCDRejectsBlankTitle(t *testing.T) {
	router, repo, _ := newTestEnv()
	repo.cds = append(repo.cds, &model.CD{ID: "cd-1", Title: "Abbey Road", Artist: "The Beatles"})

	rec := doRequest(t, router, http.MethodPut, "/api/cds/cd-1", `{"title":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if repo.cds[0].Title != "Abbey Road" {
		t.Errorf("title changed by rejected update: %q", repo.cds[0].Title)
	}
}

func TestUpdateCDNotFound(t *testing.T) {
	router, _, _ := newTestEnv()

	rec := doRequest(t, router, http.MethodPut, "/api/cds/missing", `{"notes":"x"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateCDBarcodeExcludesSelf(t *testing.T) {
	router, repo, _ := newTestEnv()
	repo.cds = append(repo.cds, &model.CD{
		ID: "cd-1", Title: "Abbey Road", Artist: "The Beatles", Barcode: "012345678905",
	})

	// Re-saving a record with its own barcode is not a duplicate.
	rec := doRequest(t, router, http.MethodPut, "/api/cds/cd-1",
		`{"barcode":"012345678905","notes":"resaved"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestListCDsFilter(t *testing.T) {
	router, repo, _ := newTestEnv()
	repo.cds = append(repo.cds,
		&model.CD{ID: "cd-1", Title: "Abbey Road", Artist: "The Beatles", Genre: "Rock"},
		&model.CD{ID: "cd-2", Title: "Kind of Blue", Artist: "Miles Davis", Genre: "Jazz"},
		&model.CD{ID: "cd-3", Title: "Revolver", Artist: "The Beatles", Genre: "Rock"},
	)

	rec := doRequest(t, router, http.MethodGet, "/api/cds?q=beatles", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var cds []*model.CD
	if err := json.NewDecoder(rec.Body).Decode(&cds); err != nil {
		t.Fatal(err)
	}
	if len(cds) != 2 {
		t.Fatalf("filtered %d records, want 2", len(cds))
	}

	// An empty result is an empty array, not null.
	rec = doRequest(t, router, http.MethodGet, "/api/cds?q=nomatch", "")
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("empty filter result = %s, want []", body)
	}
}

func TestDeleteCD(t *testing.T) {
	router, repo, _ := newTestEnv()
	repo.cds = append(repo.cds, &model.CD{ID: "cd-1", Title: "Abbey Road", Artist: "The Beatles"})

	rec := doRequest(t, router, http.MethodDelete, "/api/cds/cd-1", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if len(repo.cds) != 0 {
		t.Errorf("store holds %d records after delete, want 0", len(repo.cds))
	}
}

func TestGetCDNotFound(t *testing.T) {
	router, _, _ := newTestEnv()

	rec := doRequest(t, router, http.MethodGet, "/api/cds/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
