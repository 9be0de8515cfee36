// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor runs the long-lived parts of the Reelmatch server under a
suture v4 supervisor tree.

	reelmatch (root)
	├── catalog-layer
	│   └── CatalogService   file watch, periodic refresh, SIGHUP reloads
	└── api-layer
	    └── HTTPServerService

Crashed services restart with backoff. The layers count failures
separately, so a catalog watcher that keeps failing does not take the HTTP
server down with it; requests keep being answered from the last catalog
that loaded.

Supervisor events are logged through sutureslog. The server passes an
*slog.Logger backed by the zerolog logger (logging.NewSlogLogger), so
supervisor events share the application's log format.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logging.Logger()), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddCatalogService(services.NewCatalogService(live, catalogCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout, logger))
	errCh := tree.ServeBackground(ctx)

After shutdown, UnstoppedServiceReport names services that ignored the
shutdown timeout.
*/
package supervisor
