package storage

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleToSQL(t *testing.T) {
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("words.id").
		From("words").
		Where(visibleTo(42)).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT words.id FROM words WHERE (words.user_id IS NULL OR words.user_id = $1)", query)
	assert.Equal(t, []interface{}{int64(42)}, args)
}

func TestOwnedBySQL(t *testing.T) {
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Delete("words").
		Where(ownedBy(7)).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM words WHERE words.user_id = $1", query)
	assert.Equal(t, []interface{}{int64(7)}, args)
}
