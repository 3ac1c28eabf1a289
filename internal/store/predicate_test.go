package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/fevertrack/internal/record"
)

func TestPredicates(t *testing.T) {
	r := record.Record{ID: "x", Subject: "ain", Date: "2025-01-13", Time: "08:00", Temperature: 372}

	assert.True(t, MatchTuple("ain", "2025-01-13", "08:00", 372)(r))
	assert.False(t, MatchTuple("ain", "2025-01-13", "08:00", 373)(r))
	assert.True(t, MatchID("x")(r))
	assert.False(t, MatchID("")(record.Record{}), "empty id matches nothing")
	assert.True(t, MatchSubject("ain")(r))
	assert.True(t, MatchDate("2025-01-13")(r))

	assert.True(t, And(MatchSubject("ain"), MatchDate("2025-01-13"))(r))
	assert.False(t, And(MatchSubject("ain"), MatchDate("2025-01-14"))(r))
	assert.False(t, And()(r))
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a, b := gen.Generate(), gen.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b, "UUIDv7 sorts in generation order")
}
