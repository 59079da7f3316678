package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/meowcal/internal/render"
	"github.com/nikmy/meowcal/internal/session"
	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

// BasePath prefixes every widget route.
const BasePath = "/calendar"

const landingTitle = "Open calendar"

func NewServer(cfg Config, log logger.Logger, store *session.Store, renderer *render.Renderer) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods: []string{
			fiber.MethodGet,
			fiber.MethodHead,
			fiber.MethodPost,
			fiber.MethodDelete,
		},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(map[string]string{"status": "ERROR", "message": fe.Message})
		}

		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		store:    store,
		renderer: renderer,
		http:     fiber.New(fiberCfg),
		addr:     cfg.HTTP.Addr,
		log:      serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	store    *session.Store
	renderer *render.Renderer
	http     *fiber.App
	addr     string
	log      logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return errors.WrapFailf(err, "listen on %s", s.addr)
	case <-ctx.Done():
		return nil
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Get("/", s.handleLanding)
	s.http.Post("/", s.handleMount)

	widgets := s.http.Group(BasePath)
	widgets.Get("/:id", s.handlePage)
	widgets.Get("/:id/fragment", s.handleFragment)
	widgets.Post("/:id/navigate", s.handleNavigate)
	widgets.Post("/:id/mode", s.handleMode)
	widgets.Post("/:id/select", s.handleSelect)
	widgets.Delete("/:id", s.handleUnmount)
}

type widgetState struct {
	ID       string `json:"id"`
	Mode     string `json:"mode"`
	Anchor   string `json:"anchor"`
	Selected string `json:"selected,omitempty"`
}

// handleLanding only offers to mount, so crawlers and prefetches do not
// fill the store.
func (s *server) handleLanding(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return s.renderer.Landing(c, render.LandingData{
		Title:    landingTitle,
		Language: "en",
		Action:   "/",
	})
}

func (s *server) handleMount(c *fiber.Ctx) error {
	id, err := s.store.Mount()
	if err != nil {
		return errors.WrapFail(err, "mount widget")
	}

	return c.Redirect(widgetPath(id), http.StatusSeeOther)
}

func (s *server) handlePage(c *fiber.Ctx) error {
	return s.render(c, func(inst *session.Instance) error {
		w := inst.Widget
		return s.renderer.Page(c, render.PageData{
			View:          w.View(),
			Language:      w.Locale().Language,
			Selected:      formatDate(inst.Selected),
			SelectedLabel: w.Locale().Labels.Selected,
		})
	})
}

func (s *server) handleFragment(c *fiber.Ctx) error {
	return s.render(c, func(inst *session.Instance) error {
		return s.renderer.Widget(c, inst.Widget.View())
	})
}

func (s *server) handleNavigate(c *fiber.Ctx) error {
	dir, err := calendar.ParseDirection(c.Query("dir"))
	if err != nil {
		s.log.Debug(errors.WrapFailf(err, "parse direction %q", c.Query("dir")))
		return s.sendError(c, http.StatusBadRequest, "param \"dir\" must be prev or next")
	}

	return s.mutate(c, func(inst *session.Instance) error {
		return inst.Widget.Navigate(dir)
	})
}

func (s *server) handleMode(c *fiber.Ctx) error {
	mode, err := calendar.ParseViewMode(c.Query("mode"))
	if err != nil {
		s.log.Debug(errors.WrapFailf(err, "parse view mode %q", c.Query("mode")))
		return s.sendError(c, http.StatusBadRequest, "param \"mode\" must be month or week")
	}

	return s.mutate(c, func(inst *session.Instance) error {
		return inst.Widget.SetViewMode(mode)
	})
}

func (s *server) handleSelect(c *fiber.Ctx) error {
	raw := c.Query("date")
	if raw == "" {
		return s.sendError(c, http.StatusBadRequest, "missing required parameter \"date\"")
	}

	return s.mutate(c, func(inst *session.Instance) error {
		date, err := inst.Widget.ParseDate(raw)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "param \"date\" must be YYYY-MM-DD")
		}

		err = inst.Widget.Select(date)
		if errors.Is(err, calendar.ErrNotVisible) {
			return fiber.NewError(http.StatusBadRequest, "date is not visible")
		}
		return err
	})
}

func (s *server) handleUnmount(c *fiber.Ctx) error {
	if !s.store.Unmount(c.Params("id")) {
		return s.sendError(c, http.StatusNotFound, "widget is not mounted")
	}
	return c.Status(http.StatusNoContent).Send(nil)
}

// render writes an HTML response while holding the instance.
func (s *server) render(c *fiber.Ctx, do func(inst *session.Instance) error) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	err := s.store.Do(c.Params("id"), do)
	if errors.Is(err, session.ErrNotMounted) {
		return s.sendError(c, http.StatusNotFound, "widget is not mounted")
	}
	return errors.WrapFail(err, "render widget")
}

// mutate applies a widget operation and answers with the new state for JSON
// clients or with a redirect back to the page for browsers.
func (s *server) mutate(c *fiber.Ctx, do func(inst *session.Instance) error) error {
	id := c.Params("id")

	var state widgetState
	err := s.store.Do(id, func(inst *session.Instance) error {
		if err := do(inst); err != nil {
			return err
		}
		state = snapshot(inst)
		return nil
	})

	var fe *fiber.Error
	switch {
	case errors.Is(err, session.ErrNotMounted):
		return s.sendError(c, http.StatusNotFound, "widget is not mounted")
	case errors.As(err, &fe):
		return s.sendError(c, fe.Code, fe.Message)
	case err != nil:
		return errors.WrapFailf(err, "update widget %s", id)
	}

	if wantsJSON(c) {
		return c.Status(http.StatusOK).JSON(state)
	}
	return c.Redirect(widgetPath(id), http.StatusSeeOther)
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

func snapshot(inst *session.Instance) widgetState {
	return widgetState{
		ID:       inst.ID,
		Mode:     inst.Widget.Mode().String(),
		Anchor:   formatDate(inst.Widget.Anchor()),
		Selected: formatDate(inst.Selected),
	}
}

func wantsJSON(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

func widgetPath(id string) string {
	return BasePath + "/" + id
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(calendar.DateLayout)
}
