package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"scheduling-intelligence/pkg/datemath"
)

func newTestEngine(t *testing.T, tz string) Engine {
	t.Helper()
	days, err := datemath.NewParser(tz)
	require.NoError(t, err)
	return New(days, Config{})
}

func ptrTime(t time.Time) *time.Time { return &t }

func ptrInt(v int) *int { return &v }
