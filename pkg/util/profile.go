package util

import (
	"time"

	"github.com/sirupsen/logrus"
)

type TimeProfile struct {
	Name               string
	StartTime, EndTime time.Time
	Duration           time.Duration
}

func StartTimeProfile(name string) TimeProfile {
	return TimeProfile{StartTime: time.Now(), Name: name}
}

func (p *TimeProfile) TilNow() time.Duration {
	return time.Since(p.StartTime)
}

func (p *TimeProfile) Stop() time.Duration {
	p.EndTime = time.Now()
	p.Duration = p.EndTime.Sub(p.StartTime)
	return p.Duration
}

// StopAndLog stops the profile and reports the duration at debug level.
func (p *TimeProfile) StopAndLog(logger logrus.FieldLogger) time.Duration {
	duration := p.Stop()
	logger.WithField("duration", duration).Debugf("[profile] %s %s", p.Name, duration)
	return duration
}
