package notice

import (
	"github.com/pofo-ai/pofo/internal/notice/internal/domain"
	"github.com/pofo-ai/pofo/internal/notice/internal/service"
	"github.com/pofo-ai/pofo/internal/notice/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Notice = domain.Notice
type NoticeService = service.NoticeService

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      NoticeService
}
