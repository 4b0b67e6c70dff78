package internal

// Handler declares routes on a router.
//
// Example:
//
//	type PagesHandler struct {
//	    greetings map[langcode.Code]string
//	}
//
//	func (h *PagesHandler) Routes(r langneg.Router) {
//	    r.Localized(func(r langneg.Router) {
//	        r.GET("/hello", h.hello) // also /{lang}/hello
//	    })
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc handles a request. A returned error goes to the App's error
// handler unless a response was already written.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc. Global middleware runs after the language
// state is attached, so it may call c.Language().
//
// Example:
//
//	func ContentLanguage(next langneg.HandlerFunc) langneg.HandlerFunc {
//	    return func(c langneg.Context) error {
//	        if lang, err := c.Language(); err == nil {
//	            c.SetHeader("Content-Language", lang.String())
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
