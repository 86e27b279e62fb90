package util

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	a := NewULID()
	b := NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.True(t, IsULID(a))
	assert.False(t, IsULID("not-a-ulid"))
}

func TestNullHelpers(t *testing.T) {
	assert.False(t, StringToNullString("").Valid)
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, StringToNullString("x"))
	assert.False(t, TimeToNullTime(time.Time{}).Valid)

	assert.Nil(t, NullStringToPtr(sql.NullString{}))
	assert.Equal(t, "doc", *NullStringToPtr(sql.NullString{String: "doc", Valid: true}))

	assert.Nil(t, NullInt64ToIntPtr(sql.NullInt64{}))
	assert.Equal(t, 3, *NullInt64ToIntPtr(sql.NullInt64{Int64: 3, Valid: true}))

	now := time.Now()
	assert.Nil(t, NullTimeToPtr(sql.NullTime{}))
	assert.Equal(t, now, *NullTimeToPtr(sql.NullTime{Time: now, Valid: true}))

	assert.False(t, PtrToNullString(nil).Valid)
	empty := ""
	assert.False(t, PtrToNullString(&empty).Valid)

	assert.False(t, IntPtrToNullInt64(nil).Valid)
	two := 2
	assert.Equal(t, sql.NullInt64{Int64: 2, Valid: true}, IntPtrToNullInt64(&two))
}
