package storage

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexibot/bot/models"
)

func testStore() *Store {
	return &Store{builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

func TestPickWordQuerySQL(t *testing.T) {
	query, args, err := testStore().pickWordQuery(42, nil).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT words.id AS word_id, words.original_word FROM words "+
			"WHERE (words.user_id IS NULL OR words.user_id = $1) "+
			"ORDER BY random() LIMIT 1",
		query)
	assert.Equal(t, []interface{}{int64(42)}, args)
}

func TestPickWordQuerySQLWithCategory(t *testing.T) {
	categoryID := int64(3)
	query, args, err := testStore().pickWordQuery(42, &categoryID).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT words.id AS word_id, words.original_word FROM words "+
			"JOIN word_categories ON word_categories.word_id = words.id "+
			"WHERE (words.user_id IS NULL OR words.user_id = $1) "+
			"AND word_categories.category_id = $2 "+
			"ORDER BY random() LIMIT 1",
		query)
	assert.Equal(t, []interface{}{int64(42), int64(3)}, args)
}

func TestPickTranslationQuerySQL(t *testing.T) {
	query, args, err := testStore().pickTranslationQuery(10).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id AS translation_id, translation FROM translations "+
			"WHERE word_id = $1 ORDER BY random() LIMIT 1",
		query)
	assert.Equal(t, []interface{}{int64(10)}, args)
}

// The distractor pool must exclude every translation of the target word and
// stay inside the user's visibility scope.
func TestPickDistractorsQuerySQL(t *testing.T) {
	query, args, err := testStore().pickDistractorsQuery(42, 10, 3).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT translations.translation FROM translations "+
			"JOIN words ON words.id = translations.word_id "+
			"WHERE translations.word_id <> $1 "+
			"AND (words.user_id IS NULL OR words.user_id = $2) "+
			"ORDER BY random() LIMIT 3",
		query)
	assert.Equal(t, []interface{}{int64(10), int64(42)}, args)
}

// Deletion is restricted to rows the user owns; shared words never match.
func TestDeleteWordQuerySQL(t *testing.T) {
	query, args, err := testStore().deleteWordQuery(7, "cat").ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"DELETE FROM words WHERE lower(original_word) = lower($1) AND words.user_id = $2",
		query)
	assert.Equal(t, []interface{}{"cat", int64(7)}, args)
}

// The add-word lookup searches every ownership scope, so a spelling held by
// another user is found and can be rejected instead of silently duplicated.
// Usable rows (shared or own) sort ahead of foreign-owned ones.
func TestFindWordQuerySQL(t *testing.T) {
	query, args, err := testStore().findWordQuery(7, "Cat").ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, original_word, example, user_id, created_at FROM words "+
			"WHERE lower(original_word) = lower($1) "+
			"ORDER BY (user_id IS NULL OR user_id = $2) DESC LIMIT 1",
		query)
	assert.Equal(t, []interface{}{"Cat", int64(7)}, args)
}

func TestWordUsableBy(t *testing.T) {
	owner := int64(7)
	other := int64(99)

	assert.True(t, wordUsableBy(models.Word{UserID: nil}, owner), "shared word")
	assert.True(t, wordUsableBy(models.Word{UserID: &owner}, owner), "own word")
	assert.False(t, wordUsableBy(models.Word{UserID: &other}, owner), "foreign word")
}
