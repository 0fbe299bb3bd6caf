package models

/*
LineupEntry is one row of the singer-lineup CSV. The sheet is exported
from the show organizer's spreadsheet, so column names follow its
snake_case headers.
*/
type LineupEntry struct {
	SingerEmail    string   `json:"-"`
	Show           string   `json:"show"`
	SongTitle      string   `json:"songTitle"`
	OriginalArtist string   `json:"originalArtist"`
	CoverBand      string   `json:"coverBand"`
	CoSingers      []string `json:"coSingers"`
}
