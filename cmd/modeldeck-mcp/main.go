package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/modeldeck/browse"
	"github.com/qyinm/modeldeck/catalog"
	"github.com/qyinm/modeldeck/config"
	"github.com/qyinm/modeldeck/logging"
	"github.com/qyinm/modeldeck/mcpsrv"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	log := logging.Console(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	cat, err := catalog.Open(cfg.Catalog)
	if err != nil {
		log.Fatal().Err(err).Str("catalog", cfg.Catalog).Msg("load catalog")
	}
	log.Info().Str("origin", cat.Origin()).Int("count", cat.Len()).Msg("catalog loaded")

	engine := browse.NewEngine(cat)
	server := mcpsrv.NewServer(engine, version, &mcpsrv.ServerOptions{
		EnableAdmin: cfg.MCPEnableAdmin,
		Logger:      &log,
	})

	if cfg.MCPCacheClearInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.MCPCacheClearInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					n := engine.CacheSize()
					engine.ClearCache()
					log.Debug().Int("cleared", n).Msg("filter cache cleared")
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal().Err(err).Msg("stdio mcp server failed")
	}
}
