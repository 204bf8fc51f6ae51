package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlain_StripsBSONTypes(t *testing.T) {
	oid := primitive.NewObjectID()

	doc := bson.M{
		"_id":     oid,
		"Title":   "Paper A",
		"Authors": bson.A{"Alice Smith", "Bob Lee"},
		"Quartils": bson.A{
			bson.D{{Key: "année", Value: "2020"}, {Key: "quartil", Value: 3.0}},
		},
	}

	converted, ok := plain(doc).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, oid.Hex(), converted["_id"])
	assert.Equal(t, "Paper A", converted["Title"])

	authors, ok := converted["Authors"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Alice Smith", "Bob Lee"}, authors)

	history, ok := converted["Quartils"].([]any)
	require.True(t, ok)
	require.Len(t, history, 1)

	entry, ok := history[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2020", entry["année"])
	assert.Equal(t, 3.0, entry["quartil"])
}

func TestPlain_PassesScalarsThrough(t *testing.T) {
	assert.Equal(t, "plain", plain("plain"))
	assert.Equal(t, int32(7), plain(int32(7)))
	assert.Nil(t, plain(nil))
}
