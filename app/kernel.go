package app

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/km-arc/go-forms/config"
	"github.com/km-arc/go-forms/dates"
	"github.com/km-arc/go-forms/forms"
	gohttp "github.com/km-arc/go-forms/http"
	"github.com/km-arc/go-forms/routing"
)

// Application ties configuration, logging, routing and views together.
type Application struct {
	Config *config.Config
	Router *routing.Router
	Views  *gohttp.ViewEngine
	Logger *slog.Logger
	Clock  forms.Clock
}

// New bootstraps the application.
//
//	application, err := app.New()
//	application.Router.Get("/", handler)
//	application.Run()
func New(envFiles ...string) (*Application, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}
	logger := NewLogger(cfg.App)

	return &Application{
		Config: cfg,
		Router: routing.New(),
		Views:  gohttp.NewViewEngine("./views", ".html", logger),
		Logger: logger,
		Clock:  time.Now,
	}, nil
}

// NewLogger builds a JSON logger in production and a text logger elsewhere.
// Debug output is enabled by APP_DEBUG.
func NewLogger(cfg config.AppConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
	}

	var h slog.Handler
	if cfg.Env == "production" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(h).With("app", cfg.Name)
}

// DateField builds a DateField using the configured order, message routing
// and day attribution, plus the application's clock and logger.
func (a *Application) DateField(name, title, value string) *forms.DateField {
	fc := a.Config.Forms
	opts := []forms.Option{
		forms.WithClock(a.Clock),
		forms.WithLogger(a.Logger),
	}
	if fc.YearMessagesOnYear {
		opts = append(opts, forms.RouteYearMessagesToYearField())
	}
	if fc.DayAttribution {
		opts = append(opts, forms.WithDaysInMonth(dates.DaysInMonth))
	} else {
		opts = append(opts, forms.WithDaysInMonth(nil))
	}
	return forms.NewDateField(name, title, value, fc.Order(), opts...)
}

// Run starts the HTTP server on APP_PORT.
func (a *Application) Run() error {
	addr := ":" + a.Config.App.Port
	a.Logger.Info("server starting",
		"addr", addr, "env", a.Config.App.Env, "date_order", a.Config.Forms.Order().String())

	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		a.Logger.Error("server stopped", "error", err)
		return err
	}
	return nil
}

// ── Controller base ───────────────────────────────────────────────────────────

// Controller is an embeddable base for controllers, providing Req/Res
// factory methods.
type Controller struct{}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}

func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}
