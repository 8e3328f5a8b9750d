package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	styleProfilesTable = "style_profiles"

	colUserID               = "user_id"
	colPlatform             = "platform"
	colEncryptedProfile     = "encrypted_profile"
	colIV                   = "iv"
	colAuthTag              = "auth_tag"
	colAAD                  = "aad"
	colLastRefresh          = "last_refresh"
	colCommentCountSinceRef = "comment_count_since_refresh"
	colUpdatedAt            = "updated_at"

	wherePair = colUserID + " = ? AND " + colPlatform + " = ?"

	upsertConflictClause = `ON CONFLICT (user_id, platform) DO UPDATE SET
		encrypted_profile = EXCLUDED.encrypted_profile,
		iv = EXCLUDED.iv,
		auth_tag = EXCLUDED.auth_tag,
		aad = EXCLUDED.aad,
		last_refresh = EXCLUDED.last_refresh,
		comment_count_since_refresh = EXCLUDED.comment_count_since_refresh,
		updated_at = NOW()`
)

// psql is the squirrel builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var profileColumns = []string{
	colUserID,
	colPlatform,
	colEncryptedProfile,
	colIV,
	colAuthTag,
	colAAD,
	colLastRefresh,
	colCommentCountSinceRef,
}

func buildUpsertProfile(row profileRow) (string, []any, error) {
	return psql.Insert(styleProfilesTable).
		Columns(profileColumns...).
		Values(
			row.UserID,
			row.Platform,
			row.Ciphertext,
			row.IV,
			row.AuthTag,
			row.AAD,
			row.LastRefresh,
			row.CommentsSinceRefresh,
		).
		Suffix(upsertConflictClause).
		ToSql()
}

func buildSelectProfile(userID, platform string) (string, []any, error) {
	return psql.Select(profileColumns...).
		From(styleProfilesTable).
		Where(wherePair, userID, platform).
		ToSql()
}

func buildSelectMetadata(userID, platform string) (string, []any, error) {
	return psql.Select(colLastRefresh, colCommentCountSinceRef).
		From(styleProfilesTable).
		Where(wherePair, userID, platform).
		ToSql()
}

func buildIncrementCommentCount(userID, platform string, n int) (string, []any, error) {
	return psql.Update(styleProfilesTable).
		Set(colCommentCountSinceRef, sq.Expr(colCommentCountSinceRef+" + ?", n)).
		Set(colUpdatedAt, sq.Expr("NOW()")).
		Where(wherePair, userID, platform).
		ToSql()
}
