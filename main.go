package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-forms/app"
	"github.com/km-arc/go-forms/forms"
	gohttp "github.com/km-arc/go-forms/http"
	"github.com/km-arc/go-forms/http/validation"
	"github.com/km-arc/go-forms/routing"
)

func main() {
	application, err := app.New() // loads .env when present
	if err != nil {
		slog.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	routes(application)

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}

func routes(application *app.Application) {
	profile := &ProfileController{app: application}
	dates := &DateController{app: application}

	r := application.Router

	// GET shows the form, POST validates it
	r.Form("/profile", profile.Show, profile.Submit)

	r.Prefix("/api", func(api *routing.Router) {
		api.Middleware(middleware.NoCache)
		api.Get("/dates/{date}", dates.Normalize)
		api.Post("/dates", dates.Check)
	})

	r.NotFound(notFound)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	gohttp.NewResponse(w).NotFound("No route for " + req.Method() + " " + req.Path() + ".")
}

// ── Profile form ─────────────────────────────────────────────────────────────

// ProfileController serves an HTML form with a name and a birthday.
type ProfileController struct {
	app.Controller
	app *app.Application
}

type profileView struct {
	Form     *forms.Form
	Name     *forms.TextField
	Birthday *forms.DateField
	Saved    bool
}

func (c *ProfileController) form() profileView {
	name := forms.NewTextField("name", "Name").SetRules("required|min:2|max:100")
	birthday := c.app.DateField("birthday", "Birthday", "")
	return profileView{
		Form:     forms.NewForm("profile", name, birthday),
		Name:     name,
		Birthday: birthday,
	}
}

func (c *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	c.app.Views.View(w, "profile", c.form())
}

// Submit answers 422 with the routed messages when the form is invalid or
// the birthday lies in the future, and 201 with the canonical birthday
// otherwise. JSON clients get the error bag,
// browsers get the form back.
func (c *ProfileController) Submit(w http.ResponseWriter, r *http.Request) {
	req := c.Request(r)
	res := c.Response(w)
	view := c.form()

	ok := view.Form.Submit(req.Form()).Validate()
	if ok && view.Birthday.HasValue() {
		v := validation.Make(
			map[string]string{"birthday": view.Birthday.Value()},
			validation.Rules{"birthday": "before_or_equal:today"},
		).WithClock(c.app.Clock)
		if v.Fails() {
			view.Birthday.SetMessage(v.Errors().First("birthday"), forms.KindError, forms.CastText)
			ok = false
		}
	}

	if !ok {
		if req.IsJSON() {
			res.ValidationError(view.Form.Messages())
			return
		}
		c.app.Views.ViewStatus(w, http.StatusUnprocessableEntity, "profile", view)
		return
	}

	c.app.Logger.Info("profile saved", "birthday", view.Birthday.Value())
	if req.IsJSON() {
		res.Created(map[string]string{
			"name":     view.Name.Value(),
			"birthday": view.Birthday.Value(),
		})
		return
	}
	view.Saved = true
	c.app.Views.ViewStatus(w, http.StatusCreated, "profile", view)
}

// ── Date API ─────────────────────────────────────────────────────────────────

// DateController exposes DateField parsing over JSON.
type DateController struct {
	app.Controller
	app *app.Application
}

type dateResult struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

func result(f *forms.DateField) dateResult {
	return dateResult{
		Date:  f.Value(),
		Day:   f.DayField().Value(),
		Month: f.MonthField().Value(),
		Year:  f.YearField().Value(),
	}
}

// Normalize turns "2020-02-29", "March 5, 2021" or "tomorrow" into a
// canonical date. Optional ?after= and ?before= bounds are checked too.
func (c *DateController) Normalize(w http.ResponseWriter, r *http.Request) {
	req := c.Request(r)
	res := c.Response(w)

	f := c.app.DateField("date", "Date", req.RouteParam("date"))
	if !f.HasValue() {
		res.Error(http.StatusUnprocessableEntity, "date not understood")
		return
	}
	if errs := c.bounds(req, f.Value()); errs.Has() {
		res.ValidationError(errs)
		return
	}
	res.Success(result(f))
}

// Check validates a split date as a form would: date[_Day], date[_Month]
// and date[_Year] form inputs, or a JSON {"day", "month", "year"} body.
func (c *DateController) Check(w http.ResponseWriter, r *http.Request) {
	req := c.Request(r)
	res := c.Response(w)

	f := c.app.DateField("date", "Date", "")
	if strings.Contains(req.ContentType(), "application/json") {
		var sub forms.Submission
		if err := req.Bind(&sub); err != nil {
			res.Error(http.StatusBadRequest, err.Error())
			return
		}
		f.Submit(sub)
	} else {
		f.SetSubmittedValue(req.Group("date"))
	}

	errs := &validation.Errors{}
	if f.Validate(errs) {
		errs.Merge(c.bounds(req, f.Value()))
	}
	if errs.Has() {
		res.ValidationError(errs)
		return
	}
	res.Success(result(f))
}

// bounds checks value against the after and before query parameters, e.g.
// ?before=today or ?after=2000-01-01.
func (c *DateController) bounds(req *gohttp.Request, value string) *validation.Errors {
	rules := []string{"date"}
	for _, rule := range []string{"after", "before"} {
		if param := req.Query(rule); param != "" {
			rules = append(rules, rule+":"+param)
		}
	}
	v := validation.Make(
		map[string]string{"date": value},
		validation.Rules{"date": strings.Join(rules, "|")},
	).WithClock(c.app.Clock)
	v.Fails()
	return v.Errors()
}
