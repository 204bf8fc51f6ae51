package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicationDate_WithMarker(t *testing.T) {
	d := PublicationDate("Date of Publication: 12 March 2021")
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2021, time.March, 12, 0, 0, 0, 0, time.UTC), *d)
}

func TestPublicationDate_WithoutMarker(t *testing.T) {
	d := PublicationDate("12 March 2021")
	require.NotNil(t, d)
	assert.Equal(t, 2021, d.Year())
}

func TestPublicationDate_Empty(t *testing.T) {
	assert.Nil(t, PublicationDate(""))
}

func TestPublicationDate_Unparseable(t *testing.T) {
	assert.Nil(t, PublicationDate("Date of Publication: sometime in spring"))
	assert.Nil(t, PublicationDate("Date of Publication: 2021-03-12"))
}
