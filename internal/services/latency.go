package services

import (
	"context"
	"time"

	"github.com/yoockh/jobboard/internal/utils"
)

// Per-operation response delays used when latency simulation is on.
var simulatedDelays = map[string]time.Duration{
	"AuthService.Authenticate":      800 * time.Millisecond,
	"AuthService.Register":          800 * time.Millisecond,
	"AuthService.EndSession":        300 * time.Millisecond,
	"JobService.List":               500 * time.Millisecond,
	"JobService.Get":                300 * time.Millisecond,
	"JobService.Create":             800 * time.Millisecond,
	"JobService.Update":             600 * time.Millisecond,
	"JobService.Delete":             500 * time.Millisecond,
	"ApplicationService.Apply":      800 * time.Millisecond,
	"ApplicationService.ListMine":   600 * time.Millisecond,
	"ApplicationService.ListForJob": 600 * time.Millisecond,
	"ApplicationService.SetStatus":  500 * time.Millisecond,
	"EmployerService.Jobs":          500 * time.Millisecond,
	"EmployerService.Analytics":     700 * time.Millisecond,
}

// Latency delays operations by a fixed per-operation amount. The zero value
// and a nil *Latency never wait.
type Latency struct {
	delays map[string]time.Duration
}

func NewLatency(enabled bool) *Latency {
	if !enabled {
		return &Latency{}
	}
	return &Latency{delays: simulatedDelays}
}

func (l *Latency) wait(ctx context.Context, op string) error {
	if l == nil {
		return nil
	}
	d := l.delays[op]
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return utils.E(utils.CodeTimeout, op, "request cancelled", ctx.Err())
	case <-t.C:
		return nil
	}
}
