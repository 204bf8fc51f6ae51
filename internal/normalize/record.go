package normalize

import (
	"fmt"
	"strings"

	"biblio_reconciler/internal/domain"
)

// Record shapes. Shape is decided by inspecting the record itself, never by
// trusting the source kind: the document store already delivers conforming
// objects while the relational and CSV paths deliver positional tuples.
type Kind int

const (
	KindStructured Kind = iota + 1
	KindPositional
)

// RawRecord is the tagged union of the two input shapes a source can yield.
type RawRecord struct {
	Kind       Kind
	Structured map[string]any
	Positional []any
}

// Positional field order for tuple-shaped records.
const (
	posTitle = iota
	posDOI
	posAuthors
	posDate
	posISSN
	posLink
	posQuartile
	posJournal
	posAbstract
)

// Detect classifies one raw source value into a RawRecord. Maps must carry
// the Title/DOI/Authors keys to count as structured; slices are positional.
// Anything else is malformed.
func Detect(v any) (RawRecord, error) {
	switch rec := v.(type) {
	case map[string]any:
		for _, key := range []string{"Title", "DOI", "Authors"} {
			if _, ok := rec[key]; !ok {
				return RawRecord{}, fmt.Errorf("%w: object record missing %q", domain.ErrRecordMalformed, key)
			}
		}
		return RawRecord{Kind: KindStructured, Structured: rec}, nil
	case []any:
		return RawRecord{Kind: KindPositional, Positional: rec}, nil
	case []string:
		fields := make([]any, len(rec))
		for i, f := range rec {
			fields[i] = f
		}
		return RawRecord{Kind: KindPositional, Positional: fields}, nil
	default:
		return RawRecord{}, fmt.Errorf("%w: unsupported record shape %T", domain.ErrRecordMalformed, v)
	}
}

// Record converts one detected record into the canonical RawPublication.
func Record(rec RawRecord) (*domain.RawPublication, error) {
	switch rec.Kind {
	case KindStructured:
		return fromStructured(rec.Structured), nil
	case KindPositional:
		return fromPositional(rec.Positional), nil
	default:
		return nil, fmt.Errorf("%w: record has no shape", domain.ErrRecordMalformed)
	}
}

func fromStructured(obj map[string]any) *domain.RawPublication {
	pub := &domain.RawPublication{
		Title:      str(obj["Title"]),
		DOI:        str(obj["DOI"]),
		Authors:    authorList(obj["Authors"]),
		DateRaw:    str(obj["Publication Date"]),
		ISSN:       issnField(obj["ISSN"]),
		Link:       str(obj["Link"]),
		Abstract:   str(obj["abstract"]),
		JournalRaw: str(obj["journal_main"]),
	}
	pub.History, pub.BareQuartile = quartileField(obj["Quartils"])
	return pub
}

func fromPositional(fields []any) *domain.RawPublication {
	pub := &domain.RawPublication{
		Title:      at(fields, posTitle),
		DOI:        at(fields, posDOI),
		Authors:    splitAuthors(at(fields, posAuthors)),
		DateRaw:    at(fields, posDate),
		ISSN:       domain.ISSNField{Value: at(fields, posISSN)},
		Link:       at(fields, posLink),
		JournalRaw: at(fields, posJournal),
		Abstract:   at(fields, posAbstract),
	}
	pub.BareQuartile = at(fields, posQuartile)
	return pub
}

// at tolerates short tuples: a missing positional field maps to "".
func at(fields []any, i int) string {
	if i >= len(fields) {
		return ""
	}
	return str(fields[i])
}

func str(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}

func authorList(v any) []string {
	switch authors := v.(type) {
	case []string:
		return authors
	case []any:
		names := make([]string, 0, len(authors))
		for _, a := range authors {
			names = append(names, str(a))
		}
		return names
	default:
		return splitAuthors(str(v))
	}
}

func splitAuthors(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ", ")
}

func issnField(v any) domain.ISSNField {
	switch issn := v.(type) {
	case map[string]any:
		byType := make(map[string]string, len(issn))
		for k, val := range issn {
			byType[k] = str(val)
		}
		return domain.ISSNField{ByType: byType}
	default:
		return domain.ISSNField{Value: str(v)}
	}
}

// quartileField splits the raw Quartils value into a structured history or a
// bare label; the two are mutually exclusive.
func quartileField(v any) ([]domain.QuartileEntry, string) {
	switch q := v.(type) {
	case nil:
		return nil, ""
	case []any:
		history := make([]domain.QuartileEntry, 0, len(q))
		for _, e := range q {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			history = append(history, domain.QuartileEntry{
				Year:  str(entry["année"]),
				Value: entry["quartil"],
			})
		}
		return history, ""
	default:
		return nil, str(v)
	}
}
