// Package http provides request and response helpers for form handlers.
//
// # Request
//
//	req := gohttp.NewRequest(r)
//
//	values := req.Form()              // query + body, url.Values
//	parts  := req.Group("birthday")   // {"_Day": "5", "_Month": "3", "_Year": "90"}
//	before := req.Query("before", "today")
//	date   := req.RouteParam("date")  // chi route parameter
//
//	var payload struct {
//	    Date string `json:"date"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
// # Response
//
//	res := gohttp.NewResponse(w)
//
//	res.Success(data)             // 200 {"data": ...}
//	res.Created(data)             // 201 {"data": ...}
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.NotFound()                // 404 {"message": "Not found."}
//	res.ValidationError(errs)     // 422 {"errors": {"birthday[_Day]": ["Day invalid"]}}
//
// # ViewEngine
//
//	engine := gohttp.NewViewEngine("./views", ".html", logger)
//	engine.View(w, "profile", data)
//	engine.ViewStatus(w, http.StatusUnprocessableEntity, "profile", data)
package http
