package ports

import "context"

type HealthPort interface {
	// Check reports liveness; name is echoed back in the message.
	Check(ctx context.Context, name string) (healthy bool, msg string)
}
