// cmd/clubhub/main.go
package main

import (
	"context"
	"log"

	"github.com/dalemusser/clubhub/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatalf("clubhub failed to start: %v", err)
	}
}
