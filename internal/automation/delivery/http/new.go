package http

import (
	"github.com/gin-gonic/gin"

	"nextplay-automation/internal/automation"
	"nextplay-automation/pkg/log"
)

// Handler is the public interface for the automation HTTP delivery layer.
type Handler interface {
	Automate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc automation.UseCase
}

// New creates a new HTTP handler for the automation domain.
func New(l log.Logger, uc automation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
