package main

import (
	"context"

	"brightree-backend/cmd/brightree-cli/commands"
	"brightree-backend/lib/telemetry"
)

func main() {
	ctx := context.Background()
	t, err := telemetry.SetupFromEnv(ctx, "brightree-cli")
	if err == nil {
		defer t.Shutdown(ctx)
	}
	commands.ExecuteContext(ctx)
}
