package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signin"
	"github.com/dmitrymomot/signin/handler"
	"github.com/dmitrymomot/signin/pkg/binder"
	"github.com/dmitrymomot/signin/pkg/logger"
)

// Config is the environment configuration of the HTTP renderer.
type Config struct {
	// BasePath is the path the service is mounted at, used to build form URLs.
	BasePath   string        `env:"SIGNIN_BASE_PATH" envDefault:""`
	SuccessURL string        `env:"SIGNIN_SUCCESS_URL" envDefault:"/welcome"`
	FormTTL    time.Duration `env:"SIGNIN_FORM_TTL" envDefault:"30m"`
}

// Service serves sign-in forms over HTTP. Every page load creates a form
// instance; field changes and submits are routed to that instance by id.
type Service struct {
	cfg          Config
	forms        *Registry
	views        Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService creates the service. engineOpts configure every form instance,
// typically signin.WithSink and the values from signin.Config.
func NewService(cfg Config, views Views, log *slog.Logger, engineOpts ...signin.Option) *Service {
	if log == nil {
		log = logger.Discard()
	}
	if cfg.FormTTL <= 0 {
		cfg.FormTTL = 30 * time.Minute
	}
	if cfg.SuccessURL == "" {
		cfg.SuccessURL = "/"
	}
	cfg.BasePath = strings.TrimRight(cfg.BasePath, "/")

	log = log.With(logger.Component("signin_web"))
	return &Service{
		cfg:          cfg,
		forms:        NewRegistry(cfg.FormTTL, log, engineOpts...),
		views:        views.withDefaults(),
		log:          log,
		errorHandler: handler.NewErrorHandler(log),
	}
}

// Forms exposes the instance registry, e.g. to run its sweeper.
func (s *Service) Forms() *Registry {
	return s.forms
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Route("/{id}", func(r chi.Router) {
		r.Use(formContext)
		r.Get("/stream", handler.Wrap(s.stream,
			handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		))
		r.Post("/fields/{field}", handler.Wrap(s.setField,
			handler.WithBinders[handler.Context, ValuesRequest](binder.Signals(), binder.Form()),
			handler.WithErrorHandler[handler.Context, ValuesRequest](s.errorHandler),
		))
		r.Post("/", handler.Wrap(s.submit,
			handler.WithBinders[handler.Context, ValuesRequest](binder.Signals(), binder.Form()),
			handler.WithErrorHandler[handler.Context, ValuesRequest](s.errorHandler),
		))
	})

	return r
}

// formContext stores the form id of the route in the request context, so
// records logged with it carry the id.
func formContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithFormID(r.Context(), chi.URLParam(r, "id"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ValuesRequest carries the form values, as datastar signals or form fields.
type ValuesRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Remember bool   `json:"remember" form:"remember"`
}

func (req ValuesRequest) value(f signin.Field) signin.Value {
	switch f {
	case signin.Email:
		return signin.Text(req.Email)
	case signin.Password:
		return signin.Text(req.Password)
	default:
		return signin.Flag(req.Remember)
	}
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	e, err := s.forms.Create()
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.views.Page(s.formParams(e.State())))
}

func (s *Service) stream(ctx handler.Context, _ struct{}) handler.Response {
	e, ok := s.forms.Get(chi.URLParam(ctx.Request(), "id"))
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		sub := e.Subscribe(stream)
		defer sub.Close()

		if err := s.sendState(stream, e.State()); err != nil {
			return err
		}
		for {
			select {
			case <-stream.Done():
				return nil
			case st, ok := <-sub.Receive():
				if !ok {
					return nil
				}
				if err := s.sendState(stream, st); err != nil {
					return err
				}
			}
		}
	})
}

func (s *Service) sendState(stream handler.StreamContext, st signin.State) error {
	patches := s.views.statePatches(st)
	out := make([]handler.TemplPatch, 0, len(patches))
	for _, c := range patches {
		out = append(out, handler.Patch(c))
	}
	return stream.SendMultiple(out...)
}

func (s *Service) setField(ctx handler.Context, req ValuesRequest) handler.Response {
	e, ok := s.forms.Get(chi.URLParam(ctx.Request(), "id"))
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}

	field, err := signin.ParseField(chi.URLParam(ctx.Request(), "field"))
	if err != nil {
		return handler.Error(errors.Join(handler.NewHTTPError(http.StatusNotFound, "unknown_field"), err))
	}
	if _, err := e.SetValue(field, req.value(field)); err != nil {
		return handler.Error(errors.Join(handler.ErrBadRequest, err))
	}
	return handler.Empty()
}

func (s *Service) submit(ctx handler.Context, req ValuesRequest) handler.Response {
	id := chi.URLParam(ctx.Request(), "id")
	e, ok := s.forms.Get(id)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}

	for _, f := range signin.Fields() {
		if _, err := e.SetValue(f, req.value(f)); err != nil {
			return handler.Error(errors.Join(handler.ErrBadRequest, err))
		}
	}

	if _, err := e.TrySubmit(); err != nil {
		var failure *signin.ValidationFailure
		if !errors.As(err, &failure) {
			return handler.Error(err)
		}
		return handler.ValidationFailed(validationError(failure), s.views.Form(s.formParams(e.State())))
	}

	s.forms.Remove(id)
	return handler.Redirect(s.cfg.SuccessURL)
}

// validationError lists the message of every failing field by field name.
func validationError(failure *signin.ValidationFailure) handler.ValidationError {
	verr := handler.NewValidationError()
	for _, f := range failure.Fields() {
		verr.Add(f.String(), failure.Errors[f].Message)
	}
	return verr
}

func (s *Service) formParams(st signin.State) FormParams {
	base := s.cfg.BasePath + "/" + st.FormID
	return FormParams{
		State:     st,
		ActionURL: base,
		StreamURL: base + "/stream",
		FieldURL: func(f signin.Field) string {
			return base + "/fields/" + f.String()
		},
	}
}
