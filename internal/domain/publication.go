package domain

import "time"

// Sentinel values written to the warehouse when a field cannot be determined.
const (
	NotAvailable = "Non disponible"

	StatusIndexed    = "indexed"
	StatusNotIndexed = "not indexed"
)

// RawPublication is the canonical shape every source record is normalized
// into before reconciliation. It is transient: nothing here is persisted
// as-is.
type RawPublication struct {
	Title    string
	DOI      string
	Authors  []string
	DateRaw  string // marker-prefixed free text, e.g. "Date of Publication: 12 March 2021"
	ISSN     ISSNField
	Link     string
	Abstract string

	// JournalRaw is the free-text descriptor carrying the canonical journal
	// name after the "Published in:" marker.
	JournalRaw string

	// History holds the structured year->quartile sequence when the source
	// supplied one. BareQuartile carries the scalar label otherwise; the two
	// are mutually exclusive.
	History      []QuartileEntry
	BareQuartile string
}

// Indexed reports whether the source supplied a structured quartile history
// for this record's journal.
func (r *RawPublication) Indexed() bool {
	return len(r.History) > 0
}

// ISSNField is either a plain ISSN string or a mapping of ISSN type to
// value ("Electronic ISSN", "Print ISSN", ...).
type ISSNField struct {
	Value  string
	ByType map[string]string
}

// QuartileEntry is one raw (year, quartile-or-score) pair from a source.
// Value may be a categorical label or a numeric CiteScore.
type QuartileEntry struct {
	Year  string
	Value any
}

// Journal is a deduplicated warehouse journal. Name is the dedup key;
// metadata is first-writer-wins.
type Journal struct {
	ID     int64
	Name   string
	ISSN   string
	Status string // StatusIndexed or StatusNotIndexed
}

// QuartileRecord is one (year, quartile) association owned by a journal.
// (JournalID, Year) is unique; re-insertion overwrites the label.
type QuartileRecord struct {
	ID        int64
	JournalID int64
	Year      string
	Quartile  string
}

// Author is a deduplicated warehouse author. Name is the dedup key;
// Affiliation and Country are reserved for future enrichment and stay unset.
type Author struct {
	ID          int64
	Name        string
	Affiliation *string
	Country     *string
}

// Publication is the append-only sink entity. Re-running the pipeline over
// the same input creates new rows; only authors and journals deduplicate.
type Publication struct {
	ID        int64
	Title     string
	DOI       string
	Date      *time.Time
	Link      string
	Abstract  string
	JournalID int64
	Quartile  string // last resolved history entry, or NotAvailable
}
