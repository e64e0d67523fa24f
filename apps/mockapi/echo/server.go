// Package echoapi is an in-memory stand-in for the remote exam-evaluation
// backend. It implements the surface the console consumes (auth, templates,
// question papers, students, evaluation, timetable) with uuid ids and stub
// generation/evaluation, for local development and the examapi tests.
// Nothing here persists and nothing here is the real AI.
package echoapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/core"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		Store          *Store
		Logger         core.Logger
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	if opts.Store == nil {
		opts.Store = NewStore()
	}
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.GetBool("debug")

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = detailErrorHandler(s.opts.Logger)
	s.app.HideBanner = true
	s.app.Debug = debug

	s.app.GET("/", home)

	api := api{store: s.opts.Store}
	s.app.POST("/auth/login", api.login)

	jwtmw := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(core.Conf.GetString("secretKey")),
	})
	g := s.app.Group("", jwtmw)
	api.registerTemplates(g)
	api.registerPapers(g)
	api.registerStudents(g)
	api.registerEvaluation(g)
	api.registerTimetable(g)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "ExamEval mock API")
}

// detailErrorHandler renders every failure the way the real backend does:
// a non-2xx status with a JSON {"detail": message} body.
func detailErrorHandler(logger core.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code := http.StatusInternalServerError
		detail := http.StatusText(code)

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			code = origErr.Code
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
					code = herr.Code
				}
			}
			if msg, ok := origErr.Message.(string); ok {
				detail = msg
			}
		case *core.ValidationError:
			code = http.StatusBadRequest
			if len(origErr.Fields) > 0 {
				parts := make([]string, 0, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					parts = append(parts, fErr.Field+": "+fErr.Error)
				}
				detail = strings.Join(parts, "; ")
			} else {
				detail = origErr.Error()
			}
		default:
			if logger != nil {
				logger.Error(detail, err)
			}
		}

		if !ctx.Response().Committed {
			if jErr := ctx.JSON(code, echo.Map{"detail": detail}); jErr != nil {
				ctx.Echo().Logger.Error(jErr)
			}
		}
	}
}

func issueToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": jwt.TimeFunc().Add(core.Conf.GetDuration("jwtExpirationDelta")).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(core.Conf.GetString("secretKey")))
}
