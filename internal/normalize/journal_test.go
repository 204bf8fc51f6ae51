package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblio_reconciler/internal/domain"
)

func TestJournalName_ExtractsAndTrims(t *testing.T) {
	name, err := JournalName("Published in: Nature (impact factor 64.8)")
	require.NoError(t, err)
	assert.Equal(t, "Nature", name)
}

func TestJournalName_NoParenthesis(t *testing.T) {
	name, err := JournalName("Published in: IEEE Transactions on Software Engineering")
	require.NoError(t, err)
	assert.Equal(t, "IEEE Transactions on Software Engineering", name)
}

func TestJournalName_StopsAtNewline(t *testing.T) {
	name, err := JournalName("Published in: Cell\nsome trailing text")
	require.NoError(t, err)
	assert.Equal(t, "Cell", name)
}

func TestJournalName_MissingMarker(t *testing.T) {
	_, err := JournalName("Nature")
	assert.ErrorIs(t, err, domain.ErrJournalNameNotFound)
}

func TestJournalName_Empty(t *testing.T) {
	_, err := JournalName("")
	assert.ErrorIs(t, err, domain.ErrJournalNameNotFound)
}

func TestISSN_PlainString(t *testing.T) {
	assert.Equal(t, "1234-5678", ISSN(domain.ISSNField{Value: "1234-5678"}))
}

func TestISSN_MappingPrefersElectronic(t *testing.T) {
	field := domain.ISSNField{ByType: map[string]string{
		"Print ISSN":      "1111-2222",
		"Electronic ISSN": "3333-4444",
	}}
	assert.Equal(t, "3333-4444", ISSN(field))
}

func TestISSN_MappingWithoutElectronic(t *testing.T) {
	field := domain.ISSNField{ByType: map[string]string{"Print ISSN": "1111-2222"}}
	assert.Equal(t, domain.NotAvailable, ISSN(field))
}

func TestISSN_Absent(t *testing.T) {
	assert.Equal(t, domain.NotAvailable, ISSN(domain.ISSNField{}))
}
