package util

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeProfile(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	p := StartTimeProfile("insert")
	time.Sleep(time.Millisecond)
	assert.Greater(t, p.TilNow(), time.Duration(0))

	d := p.StopAndLog(logger)
	assert.Equal(t, p.Duration, d)
	assert.False(t, p.EndTime.Before(p.StartTime))

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "[profile] insert")
	assert.Equal(t, d, hook.LastEntry().Data["duration"])
}
