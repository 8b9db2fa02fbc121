package telegram

import (
	"context"
	"errors"
	"time"
)

const pollRetryDelay = 3 * time.Second

// Poll runs the getUpdates loop, dispatching each message update in its own
// goroutine. It returns nil once ctx is cancelled.
func (h *handler) Poll(ctx context.Context, timeoutSeconds int) error {
	var offset int64

	h.l.Infof(ctx, "telegram poller: started (timeout=%ds)", timeoutSeconds)

	for {
		if ctx.Err() != nil {
			h.l.Info(ctx, "telegram poller: stopped")
			return nil
		}

		updates, err := h.bot.GetUpdates(ctx, offset, timeoutSeconds)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				h.l.Info(ctx, "telegram poller: stopped")
				return nil
			}
			h.l.Warnf(ctx, "telegram poller: getUpdates failed, retrying in %s: %v", pollRetryDelay, err)
			select {
			case <-time.After(pollRetryDelay):
			case <-ctx.Done():
				h.l.Info(ctx, "telegram poller: stopped")
				return nil
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			if u.Message == nil {
				continue
			}
			h.dispatch(u.Message)
		}
	}
}
