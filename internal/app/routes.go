package app

import (
	"github.com/vancomm/memefield/internal/handlers"
)

func (a *App) loadRoutes() {
	fields := handlers.NewFieldHandler(
		a.log, a.store, a.jwt, a.ws, a.cfg.DefaultMines,
	)

	a.router.HandleFunc("POST /field", fields.Create)
	a.router.HandleFunc("GET /field/{id}", fields.Fetch)
	a.router.HandleFunc("DELETE /field/{id}", fields.Delete)
	a.router.HandleFunc("GET /field/{id}/image.png", fields.Image)
	a.router.HandleFunc("POST /field/{id}/reveal", fields.Reveal)
	a.router.HandleFunc("POST /field/{id}/flag", fields.Flag)
	a.router.HandleFunc("POST /field/{id}/batch", fields.Batch)
	a.router.HandleFunc("GET /field/{id}/connect", fields.ConnectWS)
	a.router.HandleFunc("GET /healthz", handlers.Health(a.store.Len))
}
