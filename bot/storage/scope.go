package storage

import sq "github.com/Masterminds/squirrel"

// visibleTo restricts word queries to rows a user is allowed to see:
// shared words (user_id IS NULL) plus the user's own words.
func visibleTo(userID int64) sq.Sqlizer {
	return sq.Or{
		sq.Eq{"words.user_id": nil},
		sq.Eq{"words.user_id": userID},
	}
}

// ownedBy restricts word queries to rows owned by the user.
func ownedBy(userID int64) sq.Sqlizer {
	return sq.Eq{"words.user_id": userID}
}
