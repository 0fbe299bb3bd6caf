package models

type Photo struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	FullSize  string `json:"fullSize"`
	Filename  string `json:"filename"`
}

/*
PhotoPage is one page of an album's photo listing. Cursor carries the
storage listing's continuation token verbatim, or null when the listing
is exhausted.
*/
type PhotoPage struct {
	Show    string  `json:"show"`
	Photos  []Photo `json:"photos"`
	HasMore bool    `json:"hasMore"`
	Cursor  *string `json:"cursor"`
	Count   int     `json:"count"`
}
