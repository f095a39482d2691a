// @title         Network Name Matcher API
// @version       0.1.0
// @description   Fuzzy lookup over affiliate networks, groups and traffic sources

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"netmatch/internal/adapters/upstream"
	"netmatch/internal/core/fuzzy"
	"netmatch/internal/modkit/httpkit"
	"netmatch/internal/platform/config"
	"netmatch/internal/platform/logger"
	phttp "netmatch/internal/platform/net/http"
	"netmatch/internal/platform/net/middleware"

	"netmatch/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	upCfg := root.Prefix("SERVICE_UPSTREAM_") // upstream tracker API lives under SERVICE_UPSTREAM_*

	// bring up logging early (LOG_LEVEL, LOG_FORMAT, ...)
	logger.Init(root.Prefix("LOG_").Logging())
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// upstream entity API (rate limited, circuit broken)
	client := upstream.NewClient(upstream.Options{
		BaseURL:         upCfg.MustURL("URL").String(),
		APIKey:          upCfg.MustString("KEY"),
		Timeout:         upCfg.MayDuration("TIMEOUT", 10*time.Second),
		RPS:             upCfg.MayFloat64("RPS", 10),
		Burst:           upCfg.MayInt("BURST", 20),
		BreakerFailures: uint32(upCfg.MayInt("BREAKER_FAILURES", 5)),
		BreakerCooldown: upCfg.MayDuration("BREAKER_COOLDOWN", 30*time.Second),
	})
	defer client.Close()

	// http server (reads CORE_API_API_PORT / CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Upstream:       client,
			Matcher:        fuzzy.New(apiCfg.MayInt("MATCH_THRESHOLD", fuzzy.DefaultThreshold)),
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			Stack: httpkit.StackOptions{
				CORS:        middleware.CORSOptions{AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"})},
				Timeout:     apiCfg.MayDuration("TIMEOUT", 30*time.Second),
				MaxInFlight: apiCfg.MayInt("MAX_INFLIGHT", 0),
				SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", 2*time.Second),
			},
		},
	)

	l.Info().Str("upstream", client.BaseURL()).Msg("netmatch api starting")

	// run until SIGINT or SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("netmatch api stopped")
}
