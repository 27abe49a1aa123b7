package main

import (
	"context"
	"log/slog"
	baseHttp "net/http"

	_ "github.com/lib/pq"

	"github.com/Samuel-Loga/Personal-Website/metal/kernel"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("failed to read the .env file/values: " + err.Error())
	}

	if app, err = kernel.MakeApp(secrets, validate); err != nil {
		panic("failed to bootstrap the application: " + err.Error())
	}
}

func main() {
	defer app.CloseDB()
	defer app.CloseLogs()

	app.Boot()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.StartSchedulers(ctx); err != nil {
		slog.Error("Error starting schedulers", "error", err)
		panic("Error starting schedulers." + err.Error())
	}
	defer app.StopSchedulers()

	addr := app.GetEnv().Network.GetHostURL()

	server := &baseHttp.Server{
		Addr: addr,
		Handler: endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
			Mux:          app.GetMux(),
			IsProduction: app.IsProduction(),
			DevHost:      app.GetEnv().App.URL,
			Wrap:         app.GetSentry().Handler.Handle,
		}),
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("Error starting server", "error", err)
		panic("Error starting server." + err.Error())
	}
}
