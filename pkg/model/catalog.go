package model

// IndexEntry describes one stored event result in the catalog.
// Authored once per event, read-only afterwards.
type IndexEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date,omitempty"`
	// Track and Layout take precedence over the values
	// embedded in the event file
	Track  string `json:"track,omitempty"`
	Layout string `json:"layout,omitempty"`
	File   string `json:"file"`
	Image  string `json:"image,omitempty"`
}
