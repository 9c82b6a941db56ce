package audit

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	appctx "github.com/baechuer/real-time-ressys/services/admission-service/internal/pkg/context"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLogger_Records(t *testing.T) {
	var buf bytes.Buffer
	l := New(zerolog.New(&buf))
	ctx := appctx.WithRunID(context.Background(), "run-7")

	l.SeatAssigned(ctx, "s1", "Sci-Math", "general", 2, 1)
	l.Waitlisted(ctx, "s2", 2, 3)
	l.RunCompleted(ctx, "FLAT", 2, 1)

	recs := records(t, &buf)
	require.Len(t, recs, 3)
	for _, rec := range recs {
		assert.Equal(t, true, rec["audit"])
		assert.Equal(t, "run-7", rec["run_id"])
	}

	assert.Equal(t, "seat_assigned", recs[0]["action"])
	assert.Equal(t, "Sci-Math", recs[0]["program"])
	assert.Equal(t, "general", recs[0]["pass"])
	assert.Equal(t, 2.0, recs[0]["choice"])

	assert.Equal(t, "waitlisted", recs[1]["action"])
	assert.Equal(t, 3.0, recs[1]["preferences"])

	assert.Equal(t, "run_completed", recs[2]["action"])
	assert.Equal(t, "FLAT", recs[2]["strategy"])
	assert.Equal(t, 1.0, recs[2]["admitted"])
}

func TestLogger_HonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(zerolog.New(&buf).Level(zerolog.WarnLevel))
	l.RunCompleted(context.Background(), "FLAT", 0, 0)
	assert.Empty(t, buf.String())
}
