package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"biblio_reconciler/internal/domain"
)

// journalNameRe captures the canonical journal name after the marker, up to
// the first parenthesis or newline of the free-text descriptor.
var journalNameRe = regexp.MustCompile(`Published in:\s*([^(\n]+)`)

// JournalName extracts the canonical (deduplication) name from a raw journal
// descriptor. A descriptor without the marker is unresolvable and fails the
// enclosing publication.
func JournalName(descriptor string) (string, error) {
	m := journalNameRe.FindStringSubmatch(descriptor)
	if m == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrJournalNameNotFound, descriptor)
	}
	return strings.TrimSpace(m[1]), nil
}

// ISSN extracts a best-effort ISSN. Mappings prefer the electronic ISSN;
// plain strings are used directly; anything else falls back to the sentinel.
func ISSN(field domain.ISSNField) string {
	if field.ByType != nil {
		if issn, ok := field.ByType["Electronic ISSN"]; ok && issn != "" {
			return issn
		}
		return domain.NotAvailable
	}
	if field.Value != "" {
		return field.Value
	}
	return domain.NotAvailable
}
