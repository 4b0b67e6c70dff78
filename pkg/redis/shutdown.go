package redis

import (
	"context"
	"io"
)

// Shutdown closes the client. It fits langneg.ShutdownHook.
func Shutdown(client io.Closer) func(context.Context) error {
	return func(context.Context) error {
		return client.Close()
	}
}
