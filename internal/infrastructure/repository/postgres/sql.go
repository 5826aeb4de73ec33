package postgres

import (
	"database/sql"
	"errors"
)

// upsertBatchSize keeps multi-row upserts well under the 65535 bind parameter limit.
const upsertBatchSize = 500

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func nullInt32FromPtr(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func ptrFromNullInt32(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int32)
	return &out
}
