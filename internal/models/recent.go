package models

import "encoding/xml"

// Document is the in-memory form of the per-user recently-used store:
// an XBEL file whose top level is a flat sequence of bookmark records.
type Document struct {
	XMLName   xml.Name   `xml:"xbel"`
	Version   string     `xml:"version,attr,omitempty"`
	Bookmarks []Bookmark `xml:"bookmark"`
}

// Bookmark is one recently-used record. Href carries a file URI
// (file:///absolute/path, percent-escaped). The timestamp attributes are
// preserved for round-tripping but never interpreted: recency is positional,
// newest entries are appended last.
type Bookmark struct {
	Href     string `xml:"href,attr"`
	Added    string `xml:"added,attr,omitempty"`
	Modified string `xml:"modified,attr,omitempty"`
	Visited  string `xml:"visited,attr,omitempty"`
}

// Clear removes every bookmark record from the document.
func (d *Document) Clear() {
	d.Bookmarks = nil
}

// Len returns the number of bookmark records.
func (d *Document) Len() int {
	return len(d.Bookmarks)
}
