package handler_test

import (
	"context"
	"errors"
	"time"

	"study-assistant/internal/domain"
	"study-assistant/internal/handler"
	"study-assistant/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, error) { return "", domain.ErrCacheMiss }
func (failingCache) Set(context.Context, string, string, time.Duration) error {
	return errors.New("down")
}
func (failingCache) Delete(context.Context, string) error { return errors.New("down") }
func (failingCache) Ping(context.Context) error           { return errors.New("down") }

func newHealthApp(db handler.Pinger, cache domain.Cache) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/healthz", handler.NewHealthHandler(db, cache).Check)
	return app
}
