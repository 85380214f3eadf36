package portfolio

import (
	"github.com/pofo-ai/pofo/internal/portfolio/internal/domain"
	"github.com/pofo-ai/pofo/internal/portfolio/internal/service"
	"github.com/pofo-ai/pofo/internal/portfolio/internal/web"
)

type Handler = web.Handler
type Document = domain.Document
type GenerateService = service.GenerateService

type Module struct {
	Hdl *Handler
	Svc GenerateService
}
