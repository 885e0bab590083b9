// Package companion mirrors the avatar's seat changes into an overlay of
// contextual tools, driven by a script of reactions.
package companion

import (
	"errors"
	"fmt"

	"example.com/office/world/entities"
	"example.com/office/world/scheduler"
	"go.uber.org/zap"
)

type Companion struct {
	script    *Script
	overlay   *Overlay
	scheduler *scheduler.Scheduler
	logger    *zap.Logger
}

func New(script *Script, sched *scheduler.Scheduler, logger *zap.Logger) *Companion {
	if script == nil {
		script = DefaultScript()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Companion{
		script:    script,
		overlay:   NewOverlay(),
		scheduler: sched,
		logger:    logger,
	}
}

func (c *Companion) Overlay() *Overlay { return c.overlay }

// Handle runs every reaction bound to the event's type.
func (c *Companion) Handle(ev entities.Event) error {
	reactions := c.script.Reactions[ev.Type]
	if len(reactions) == 0 {
		return nil
	}

	ctx := &Context{
		Event:     ev,
		Overlay:   c.overlay,
		Rooms:     c.script.Rooms,
		Logger:    c.logger,
		Scheduler: c.scheduler,
	}

	var errs []error
	for i, react := range reactions {
		if err := react(ctx); err != nil {
			errs = append(errs, fmt.Errorf("reaction %d for '%s': %w", i, ev.Type, err))
		}
	}
	return errors.Join(errs...)
}

// Drain handles every event already waiting in inbox and returns how many
// it took. It never blocks. Reactions that fail are logged and skipped.
func (c *Companion) Drain(inbox <-chan entities.Event) int {
	n := 0
	for {
		select {
		case ev, ok := <-inbox:
			if !ok {
				return n
			}
			n++
			if err := c.Handle(ev); err != nil {
				c.logger.Warn("companion reaction failed", zap.String("event", ev.Type), zap.Error(err))
			}
		default:
			return n
		}
	}
}
