package logging

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Progress logs at most once per interval. It is safe for concurrent use.
type Progress struct {
	log   logrus.FieldLogger
	every *rate.Sometimes
}

// NewProgress returns a Progress that writes to log. The first call always
// logs; an interval <= 0 logs every call.
func NewProgress(log logrus.FieldLogger, interval time.Duration) *Progress {
	every := &rate.Sometimes{Every: 1}
	if interval > 0 {
		every = &rate.Sometimes{First: 1, Interval: interval}
	}
	return &Progress{log: log, every: every}
}

// Log emits msg with fields unless a line was written within the interval.
func (p *Progress) Log(fields logrus.Fields, msg string) {
	p.every.Do(func() {
		p.log.WithFields(fields).Info(msg)
	})
}
