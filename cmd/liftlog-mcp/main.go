package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// liftlog-mcp exposes workout data to MCP clients over stdio. Two modes:
//
//	remote: -server and -token talk to a running LiftLog instance's REST API
//	local:  -config and -user read the database directly
func main() {
	serverURL := flag.String("server", "", "LiftLog server URL for remote mode")
	token := flag.String("token", "", "session token for remote mode")
	configPath := flag.String("config", "", "config file for local database mode")
	userEmail := flag.String("user", "", "user email for local database mode")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftlog-mcp", Version)
		return
	}

	// MCP uses stdout for the protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	ctxFunc := func(ctx context.Context) context.Context { return ctx }

	switch {
	case *serverURL != "" && *token != "":
		ds = mcp.NewHTTPClient(*serverURL, *token)
		log.Info("remote mode", "server", *serverURL)

	case *configPath != "" && *userEmail != "":
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		u, err := db.GetUserByEmail(context.Background(), *userEmail)
		if err != nil {
			log.Error("user lookup failed", "email", *userEmail, "error", err)
			os.Exit(1)
		}
		ds = db
		ctxFunc = func(ctx context.Context) context.Context {
			return mcp.WithUserID(ctx, u.ID)
		}
		log.Info("local mode", "user", *userEmail)

	default:
		fmt.Fprintf(os.Stderr, "Usage: liftlog-mcp -server <URL> -token <token>\n")
		fmt.Fprintf(os.Stderr, "       liftlog-mcp -config config.yaml -user <email>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	srv := mcp.New(ds, Version, log)
	if err := mcpserver.ServeStdio(srv, mcpserver.WithStdioContextFunc(ctxFunc)); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
