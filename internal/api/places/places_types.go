package places

// Wire types for the Foursquare v3 Places API. Only the fields the lookup
// actually reads are modelled; everything else in the provider payload is
// ignored on decode.

type searchResponse struct {
	Results []fsqPlace `json:"results"`
}

type fsqPlace struct {
	FsqID      string        `json:"fsq_id"`
	Name       string        `json:"name"`
	Distance   int           `json:"distance"`
	Rating     float64       `json:"rating"`
	Price      int           `json:"price"`
	Location   *fsqLocation  `json:"location,omitempty"`
	Categories []fsqCategory `json:"categories,omitempty"`
	Hours      *fsqHours     `json:"hours,omitempty"`
}

type fsqLocation struct {
	Address  string `json:"address"`
	Locality string `json:"locality"`
	Region   string `json:"region"`
	Postcode string `json:"postcode"`
}

type fsqCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type fsqHours struct {
	OpenNow bool            `json:"open_now"`
	Regular []fsqHoursEntry `json:"regular"`
}

// fsqHoursEntry days run 1 (Monday) through 7 (Sunday); open and close are
// local "HHMM" strings.
type fsqHoursEntry struct {
	Day   int    `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}
