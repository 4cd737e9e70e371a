package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/signin"
	"github.com/dmitrymomot/signin/modules/web"
	"github.com/dmitrymomot/signin/pkg/config"
	"github.com/dmitrymomot/signin/pkg/httpserver"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr          string
	SweepInterval time.Duration
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sign-in form over HTTP",
		Long: `Serve the sign-in page. Every page load creates a form instance that
validates input through datastar requests and streams updates back over SSE.

Example:
  signin serve --addr :8080
  SIGNIN_MODE=change SIGNIN_BASE_PATH=/login signin serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address, overrides HTTP_ADDR")
	cmd.Flags().DurationVar(&opts.SweepInterval, "sweep-interval", time.Minute, "how often expired forms are removed")

	return cmd
}

func runServe(ctx context.Context, opts *ServeOptions, cmd *cobra.Command) error {
	var (
		webCfg    web.Config
		serverCfg httpserver.Config
	)
	if err := config.Load(&webCfg); err != nil {
		return err
	}
	if err := config.Load(&serverCfg); err != nil {
		return err
	}
	if opts.Addr != "" {
		serverCfg.Addr = opts.Addr
	}

	engineOpts, err := engineOptions(opts.RootOptions)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	sink := newPrintSink(cmd.OutOrStdout(), "", opts.log)
	engineOpts = append(engineOpts, signin.WithSink(func(p signin.Payload) {
		mu.Lock()
		defer mu.Unlock()
		sink(p)
	}))

	svc := web.NewService(webCfg, web.DefaultViews(), opts.log, engineOpts...)
	go svc.Forms().Run(ctx, opts.SweepInterval)

	server := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(opts.log))
	return server.Run(ctx, newRouter(webCfg, svc, opts))
}

func newRouter(cfg web.Config, svc *web.Service, opts *ServeOptions) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(opts.log))

	base := strings.TrimRight(cfg.BasePath, "/")
	if base == "" {
		r.Mount("/", svc.Handle())
		return r
	}
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, base+"/", http.StatusFound)
	})
	r.Mount(base, svc.Handle())
	return r
}
