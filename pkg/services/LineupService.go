package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/llpevents/website/pkg/models"
)

type LineupServicer interface {
	GetEntriesByEmail(email string) ([]models.LineupEntry, error)
}

type LineupServiceConfig struct {
	CSVPath string
}

/*
LineupService answers singer-lineup lookups from the organizer's CSV
export. The file is re-read on every lookup so an updated export takes
effect without a restart. This is a convenience lookup, not an
authentication boundary.
*/
type LineupService struct {
	csvPath string
}

func NewLineupService(config LineupServiceConfig) LineupService {
	return LineupService{
		csvPath: config.CSVPath,
	}
}

func (s LineupService) GetEntriesByEmail(email string) ([]models.LineupEntry, error) {
	entries, err := s.loadEntries()

	if err != nil {
		return nil, err
	}

	result := []models.LineupEntry{}

	for _, entry := range entries {
		if strings.EqualFold(entry.SingerEmail, strings.TrimSpace(email)) {
			result = append(result, entry)
		}
	}

	return result, nil
}

func (s LineupService) loadEntries() ([]models.LineupEntry, error) {
	f, err := os.Open(s.csvPath)

	if err != nil {
		return nil, fmt.Errorf("error opening lineup CSV '%s': %w", s.csvPath, err)
	}

	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()

	if err != nil {
		return nil, fmt.Errorf("error parsing lineup CSV '%s': %w", s.csvPath, err)
	}

	if len(rows) == 0 {
		return []models.LineupEntry{}, nil
	}

	columns := map[string]int{}

	for index, header := range rows[0] {
		columns[strings.TrimSpace(header)] = index
	}

	entries := []models.LineupEntry{}

	for _, row := range rows[1:] {
		get := func(column string) string {
			index, ok := columns[column]

			if !ok || index >= len(row) {
				return ""
			}

			return strings.TrimSpace(row[index])
		}

		entry := models.LineupEntry{
			SingerEmail:    get("singer_email"),
			Show:           get("show"),
			SongTitle:      get("song_title"),
			OriginalArtist: get("original_artist"),
			CoverBand:      get("cover_band"),
			CoSingers:      splitCoSingers(get("co_singers")),
		}

		if entry.SingerEmail == "" {
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func splitCoSingers(value string) []string {
	if value == "" {
		return []string{}
	}

	result := []string{}

	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			result = append(result, name)
		}
	}

	return result
}
