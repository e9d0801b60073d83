package models

// PostalRecord is one row of the postal-code catalog: a postcode together with the county and
// state it belongs to.
type PostalRecord struct {
	ID       int    `json:"id"`
	County   string `json:"county"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

// Street is one entry of the crawled street-name catalog.
type Street struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
