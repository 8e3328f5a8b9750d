package store

import (
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/MKhiriev/style-keeper/models"
)

// profileRow is the column-level representation of a style profile:
// binary fields are hex encoded and the optional AAD is base64.
type profileRow struct {
	UserID               string
	Platform             string
	Ciphertext           string
	IV                   string
	AuthTag              string
	AAD                  sql.NullString
	LastRefresh          time.Time
	CommentsSinceRefresh int
}

func encodeRecord(record models.EncryptedProfileRecord) profileRow {
	row := profileRow{
		UserID:               record.UserID,
		Platform:             record.Platform,
		Ciphertext:           hex.EncodeToString(record.Ciphertext),
		IV:                   hex.EncodeToString(record.IV),
		AuthTag:              hex.EncodeToString(record.AuthTag),
		LastRefresh:          record.LastRefresh.UTC(),
		CommentsSinceRefresh: record.CommentsSinceRefresh,
	}
	if len(record.AAD) > 0 {
		row.AAD = sql.NullString{String: base64.StdEncoding.EncodeToString(record.AAD), Valid: true}
	}
	return row
}

func (row profileRow) decode() (models.EncryptedProfileRecord, error) {
	ciphertext, err := hex.DecodeString(row.Ciphertext)
	if err != nil {
		return models.EncryptedProfileRecord{}, fmt.Errorf("%w: encrypted_profile: %w", ErrCorruptedRecord, err)
	}
	iv, err := hex.DecodeString(row.IV)
	if err != nil {
		return models.EncryptedProfileRecord{}, fmt.Errorf("%w: iv: %w", ErrCorruptedRecord, err)
	}
	tag, err := hex.DecodeString(row.AuthTag)
	if err != nil {
		return models.EncryptedProfileRecord{}, fmt.Errorf("%w: auth_tag: %w", ErrCorruptedRecord, err)
	}

	var aad []byte
	if row.AAD.Valid && row.AAD.String != "" {
		if aad, err = base64.StdEncoding.DecodeString(row.AAD.String); err != nil {
			return models.EncryptedProfileRecord{}, fmt.Errorf("%w: aad: %w", ErrCorruptedRecord, err)
		}
	}

	return models.EncryptedProfileRecord{
		UserID:               row.UserID,
		Platform:             row.Platform,
		Ciphertext:           ciphertext,
		IV:                   iv,
		AuthTag:              tag,
		AAD:                  aad,
		LastRefresh:          row.LastRefresh,
		CommentsSinceRefresh: row.CommentsSinceRefresh,
	}, nil
}
