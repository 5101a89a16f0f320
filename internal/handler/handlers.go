// Package handler aggregates the transport handlers of the application.
package handler

import (
	"errors"

	"github.com/apereira/controle-gastos/internal/config"
	"github.com/apereira/controle-gastos/internal/handler/http"
	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/internal/service"
)

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address is
// provided in the server configuration. This is treated as a fatal
// misconfiguration and causes the application to fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
