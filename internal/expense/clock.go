package expense

import (
	"sync"
	"time"
)

// TimestampLayout はソートキーの形式。ナノ秒固定長なので文字列順と時刻順が一致する
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// Clock は同一プロセス内で同じ時刻を二度返さない
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Now は直前の値より必ず後のUTC時刻を返す
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC()
	if !t.After(c.last) {
		t = c.last.Add(time.Nanosecond)
	}
	c.last = t
	return t
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
