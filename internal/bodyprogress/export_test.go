package bodyprogress

import "time"

func (j *Journal) SetClock(now func() time.Time) {
	j.now = now
}

func (handler *Handler) SetClock(now func() time.Time) {
	handler.now = now
}
