package main

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mager/talentfinder/config"
	"github.com/mager/talentfinder/finder"
	"github.com/mager/talentfinder/handler/health"
	historyHandler "github.com/mager/talentfinder/handler/history"
	"github.com/mager/talentfinder/handler/predict"
	"github.com/mager/talentfinder/handler/search"
	"github.com/mager/talentfinder/history"
	"github.com/mager/talentfinder/logger"
	"github.com/mager/talentfinder/metrics"
	"github.com/mager/talentfinder/predictor"
	"github.com/mager/talentfinder/spotify"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string
}

//	@title			Talent Finder
//	@version		1.0
//	@description	Predicts track popularity and artist revenue from Spotify data

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host		localhost:8080
// @BasePath	/
func main() {
	fx.New(
		fx.Provide(
			NewHTTPServer,
			config.Options,
			logger.Options,
			spotify.Options,
			predictor.ProvidePredictor,
			history.Options,
			metrics.Options,
			finder.ProvideFinder,

			AsRoute(health.NewHealthHandler),
			AsRoute(search.NewSearchHandler),
			AsRoute(predict.NewPredictHandler),
			AsRoute(historyHandler.NewHistoryHandler),
		),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}

type ServerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Logger    *zap.SugaredLogger
	Metrics   *metrics.Metrics
	Routes    []Route `group:"routes"`
}

func NewHTTPServer(p ServerParams) *http.Server {
	r := mux.NewRouter()
	for _, route := range p.Routes {
		r.Handle(route.Pattern(), route).Methods(http.MethodGet)
	}
	r.Handle("/metrics", p.Metrics.Handler()).Methods(http.MethodGet)

	srv := &http.Server{Addr: fmt.Sprintf(":%d", p.Config.Port), Handler: r}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			p.Logger.Infow("Starting HTTP server", "addr", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

// AsRoute annotates the given constructor to state that
// it provides a route to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(Route)),
		fx.ResultTags(`group:"routes"`),
	)
}
