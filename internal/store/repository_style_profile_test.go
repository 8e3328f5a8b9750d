package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/MKhiriev/style-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	upsertPattern    = `INSERT INTO style_profiles \(user_id,platform,encrypted_profile,iv,auth_tag,aad,last_refresh,comment_count_since_refresh\) VALUES .* ON CONFLICT \(user_id, platform\) DO UPDATE`
	selectPattern    = `SELECT user_id, platform, encrypted_profile, iv, auth_tag, aad, last_refresh, comment_count_since_refresh FROM style_profiles WHERE user_id = \$1 AND platform = \$2`
	metadataPattern  = `SELECT last_refresh, comment_count_since_refresh FROM style_profiles WHERE user_id = \$1 AND platform = \$2`
	incrementPattern = `UPDATE style_profiles SET comment_count_since_refresh = comment_count_since_refresh \+ \$1, updated_at = NOW\(\) WHERE user_id = \$2 AND platform = \$3`
)

var profileRowColumns = []string{
	"user_id", "platform", "encrypted_profile", "iv", "auth_tag", "aad", "last_refresh", "comment_count_since_refresh",
}

func newTestStyleProfileRepo(t *testing.T) (*styleProfileRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &styleProfileRepository{
		db:     newDB(db, l),
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testRecord() models.EncryptedProfileRecord {
	return models.EncryptedProfileRecord{
		UserID:               "user-1",
		Platform:             "twitter",
		Ciphertext:           []byte{0xde, 0xad, 0xbe, 0xef},
		IV:                   []byte("0123456789abcdef"),
		AuthTag:              []byte("fedcba9876543210"),
		AAD:                  []byte("user-1:twitter:style_profile"),
		LastRefresh:          time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		CommentsSinceRefresh: 0,
	}
}

func expectNoPending(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// ── Upsert ────────────────────────────────────────────────────────────────────

func TestUpsert_Success(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)
	record := testRecord()

	mock.ExpectExec(upsertPattern).
		WithArgs(
			"user-1",
			"twitter",
			"deadbeef",
			hex.EncodeToString(record.IV),
			hex.EncodeToString(record.AuthTag),
			base64.StdEncoding.EncodeToString(record.AAD),
			record.LastRefresh,
			0,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectNoPending(t, mock)
}

func TestUpsert_LegacyRecordStoresNullAAD(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)
	record := testRecord()
	record.AAD = nil

	mock.ExpectExec(upsertPattern).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectNoPending(t, mock)
}

func TestUpsert_RetryableDriverError(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)

	mock.ExpectExec(upsertPattern).WillReturnError(pgError(pgerrcode.SerializationFailure))

	err := repo.Upsert(context.Background(), testRecord())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if !IsRetryable(err) {
		t.Error("expected serialization failure to be retryable")
	}
}

func TestUpsert_NonRetryableDriverError(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)

	mock.ExpectExec(upsertPattern).WillReturnError(pgError(pgerrcode.CheckViolation))

	err := repo.Upsert(context.Background(), testRecord())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if IsRetryable(err) {
		t.Error("expected check violation to be non-retryable")
	}
}

func TestUpsert_ContextCancelled(t *testing.T) {
	repo, _ := newTestStyleProfileRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Upsert(ctx, testRecord())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
	if IsRetryable(err) {
		t.Error("cancellation must not be retryable")
	}
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestGet_Success(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)
	want := testRecord()

	rows := sqlmock.NewRows(profileRowColumns).AddRow(
		want.UserID,
		want.Platform,
		hex.EncodeToString(want.Ciphertext),
		hex.EncodeToString(want.IV),
		hex.EncodeToString(want.AuthTag),
		base64.StdEncoding.EncodeToString(want.AAD),
		want.LastRefresh,
		7,
	)
	mock.ExpectQuery(selectPattern).WithArgs("user-1", "twitter").WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "user-1", "twitter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(got.Ciphertext) != string(want.Ciphertext) ||
		string(got.IV) != string(want.IV) ||
		string(got.AuthTag) != string(want.AuthTag) ||
		string(got.AAD) != string(want.AAD) {
		t.Errorf("binary fields were not decoded: %+v", got)
	}
	if !got.LastRefresh.Equal(want.LastRefresh) {
		t.Errorf("expected last refresh %s, got %s", want.LastRefresh, got.LastRefresh)
	}
	if got.CommentsSinceRefresh != 7 {
		t.Errorf("expected 7 comments since refresh, got %d", got.CommentsSinceRefresh)
	}
	expectNoPending(t, mock)
}

func TestGet_LegacyRowWithoutAAD(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)
	rec := testRecord()

	rows := sqlmock.NewRows(profileRowColumns).AddRow(
		rec.UserID, rec.Platform,
		hex.EncodeToString(rec.Ciphertext), hex.EncodeToString(rec.IV), hex.EncodeToString(rec.AuthTag),
		nil, rec.LastRefresh, 0,
	)
	mock.ExpectQuery(selectPattern).WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "user-1", "twitter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AAD != nil {
		t.Errorf("expected nil AAD for legacy row, got %q", got.AAD)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)

	mock.ExpectQuery(selectPattern).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "user-1", "twitter")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGet_EmptyResult(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)

	mock.ExpectQuery(selectPattern).WillReturnRows(sqlmock.NewRows(profileRowColumns))

	_, err := repo.Get(context.Background(), "user-1", "twitter")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGet_CorruptedHex(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)
	rec := testRecord()

	rows := sqlmock.NewRows(profileRowColumns).AddRow(
		rec.UserID, rec.Platform,
		"not-hex", hex.EncodeToString(rec.IV), hex.EncodeToString(rec.AuthTag),
		nil, rec.LastRefresh, 0,
	)
	mock.ExpectQuery(selectPattern).WillReturnRows(rows)

	_, err := repo.Get(context.Background(), "user-1", "twitter")
	if !errors.Is(err, ErrCorruptedRecord) {
		t.Fatalf("expected ErrCorruptedRecord, got %v", err)
	}
}

func TestGet_CorruptedAAD(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)
	rec := testRecord()

	rows := sqlmock.NewRows(profileRowColumns).AddRow(
		rec.UserID, rec.Platform,
		hex.EncodeToString(rec.Ciphertext), hex.EncodeToString(rec.IV), hex.EncodeToString(rec.AuthTag),
		"%%%", rec.LastRefresh, 0,
	)
	mock.ExpectQuery(selectPattern).WillReturnRows(rows)

	_, err := repo.Get(context.Background(), "user-1", "twitter")
	if !errors.Is(err, ErrCorruptedRecord) {
		t.Fatalf("expected ErrCorruptedRecord, got %v", err)
	}
}

func TestGet_DriverError(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)

	mock.ExpectQuery(selectPattern).WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.Get(context.Background(), "user-1", "twitter")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if !IsRetryable(err) {
		t.Error("expected connection failure to be retryable")
	}
}

// ── GetMetadata ───────────────────────────────────────────────────────────────

func TestGetMetadata_Success(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)
	last := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(metadataPattern).
		WithArgs("user-1", "youtube").
		WillReturnRows(sqlmock.NewRows([]string{"last_refresh", "comment_count_since_refresh"}).AddRow(last, 42))

	meta, err := repo.GetMetadata(context.Background(), "user-1", "youtube")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !meta.LastRefresh.Equal(last) || meta.CommentsSinceRefresh != 42 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	expectNoPending(t, mock)
}

func TestGetMetadata_NotFound(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)

	mock.ExpectQuery(metadataPattern).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetMetadata(context.Background(), "user-1", "youtube")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGetMetadata_DriverError(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)

	mock.ExpectQuery(metadataPattern).WillReturnError(errors.New("network down"))

	_, err := repo.GetMetadata(context.Background(), "user-1", "youtube")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

// ── IncrementCommentCount ─────────────────────────────────────────────────────

func TestIncrementCommentCount_Success(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)

	mock.ExpectExec(incrementPattern).
		WithArgs(3, "user-1", "twitch").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.IncrementCommentCount(context.Background(), "user-1", "twitch", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectNoPending(t, mock)
}

func TestIncrementCommentCount_NoProfile(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)

	mock.ExpectExec(incrementPattern).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementCommentCount(context.Background(), "user-1", "twitch", 1)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestIncrementCommentCount_NonPositive(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)

	for _, n := range []int{0, -5} {
		if err := repo.IncrementCommentCount(context.Background(), "user-1", "twitch", n); !errors.Is(err, ErrInvalidIncrement) {
			t.Errorf("n=%d: expected ErrInvalidIncrement, got %v", n, err)
		}
	}
	expectNoPending(t, mock)
}

func TestIncrementCommentCount_DriverError(t *testing.T) {
	repo, mock := newTestStyleProfileRepo(t)

	mock.ExpectExec(incrementPattern).WillReturnError(pgError(pgerrcode.DeadlockDetected))

	err := repo.IncrementCommentCount(context.Background(), "user-1", "twitch", 1)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if !IsRetryable(err) {
		t.Error("expected deadlock to be retryable")
	}
}

func TestNewStorages(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	s := NewStorages(newDB(db, logger.Nop()), logger.Nop())
	if s.StyleProfileRepository == nil {
		t.Fatal("expected style profile repository to be wired")
	}
}
