package models

/*
Album is one storage folder's worth of photos, merged with any metadata
record authored for it. Nullable fields marshal as JSON null so the
gallery client can branch on their presence.
*/
type Album struct {
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Date         *string `json:"date"`
	Photographer *string `json:"photographer"`
	Venue        *string `json:"venue"`
	Description  *string `json:"description"`
	Featured     bool    `json:"featured"`
	Path         string  `json:"path"`
	CoverImage   *string `json:"coverImage"`
	PhotoCount   int     `json:"photoCount"`
}

/*
AlbumMetadata is the per-album JSON record authored out-of-band and
stored alongside the photos. Featured is a pointer so an omitted value
can default to true.
*/
type AlbumMetadata struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Photographer string `json:"photographer"`
	Venue        string `json:"venue"`
	Description  string `json:"description"`
	Featured     *bool  `json:"featured"`
}
