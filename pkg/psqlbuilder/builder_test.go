package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarPlaceholders(t *testing.T) {
	query, args, err := Select("session_id").
		From("salon_selections").
		Where(squirrel.Eq{"session_id": "sess-1"}).
		Where(squirrel.NotEq{"service_id": nil}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT session_id FROM salon_selections WHERE session_id = $1 AND service_id IS NOT NULL", query)
	assert.Equal(t, []interface{}{"sess-1"}, args)
}

func TestUpdate(t *testing.T) {
	query, args, err := Update("salon_selections").
		Set("notes", "short").
		Where(squirrel.Eq{"session_id": "sess-1"}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE salon_selections SET notes = $1 WHERE session_id = $2", query)
	assert.Equal(t, []interface{}{"short", "sess-1"}, args)
}
