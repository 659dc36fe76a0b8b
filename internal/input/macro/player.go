package macro

import (
	"fmt"

	"github.com/dshills/keynav/internal/input/key"
)

// MaxRepeat bounds the repeat count accepted by Play.
const MaxRepeat = 1000

// Play sends events to fn count times, each as a new *key.Event. It stops
// at the first error fn returns.
func Play(events []key.Event, count int, fn func(*key.Event) error) error {
	if count < 1 {
		count = 1
	}
	if count > MaxRepeat {
		return fmt.Errorf("repeat count %d exceeds %d", count, MaxRepeat)
	}
	for i := 0; i < count; i++ {
		for j := range events {
			ev := snapshot(&events[j])
			if err := fn(&ev); err != nil {
				return fmt.Errorf("replaying %s: %w", ev.Combo(), err)
			}
		}
	}
	return nil
}
