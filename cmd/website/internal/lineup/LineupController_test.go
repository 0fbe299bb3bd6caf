package lineup

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/llpevents/website/pkg/models"
)

type fakeLineupService struct {
	entries []models.LineupEntry
	err     error
}

func (f fakeLineupService) GetEntriesByEmail(email string) ([]models.LineupEntry, error) {
	return f.entries, f.err
}

func TestGetLineup(t *testing.T) {
	controller := NewLineupController(LineupControllerConfig{
		LineupService: fakeLineupService{
			entries: []models.LineupEntry{
				{Show: "LLNM 1", SongTitle: "Freak on a Leash", OriginalArtist: "Korn", CoverBand: "Kornered", CoSingers: []string{"Vic"}},
			},
		},
	})

	recorder := httptest.NewRecorder()
	controller.GetLineup(recorder, httptest.NewRequest(http.MethodGet, "/api/lineup?email=janelle@example.com", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	response := struct {
		Email   string               `json:"email"`
		Entries []models.LineupEntry `json:"entries"`
	}{}

	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}

	if response.Email != "janelle@example.com" || len(response.Entries) != 1 {
		t.Errorf("unexpected response %+v", response)
	}
}

func TestGetLineupRequiresEmail(t *testing.T) {
	controller := NewLineupController(LineupControllerConfig{
		LineupService: fakeLineupService{},
	})

	recorder := httptest.NewRecorder()
	controller.GetLineup(recorder, httptest.NewRequest(http.MethodGet, "/api/lineup", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestGetLineupUnknownEmailReturnsEmptyList(t *testing.T) {
	controller := NewLineupController(LineupControllerConfig{
		LineupService: fakeLineupService{entries: []models.LineupEntry{}},
	})

	recorder := httptest.NewRecorder()
	controller.GetLineup(recorder, httptest.NewRequest(http.MethodGet, "/api/lineup?email=nobody@example.com", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 for an unknown email, got %d", recorder.Code)
	}
}

func TestGetLineupCSVFailure(t *testing.T) {
	controller := NewLineupController(LineupControllerConfig{
		LineupService: fakeLineupService{err: errors.New("no such file")},
	})

	recorder := httptest.NewRecorder()
	controller.GetLineup(recorder, httptest.NewRequest(http.MethodGet, "/api/lineup?email=janelle@example.com", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
}
