package feeds

// RawItem is one feed entry as delivered by the source, normalized from the
// underlying parser but not yet classified or placed. Every field is
// optional; the catalog builder decides what is usable.
type RawItem struct {
	GUID        string
	Link        string
	Title       string
	Description string
	Content     string
	PubDate     string

	EnclosureURL  string
	EnclosureType string

	Duration string
	Image    string
}

// HasEnclosure reports whether the item carries a playable media reference.
func (i RawItem) HasEnclosure() bool {
	return i.EnclosureURL != ""
}
