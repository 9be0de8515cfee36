// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services adapts Reelmatch components to suture.Service.

HTTPServerService turns http.Server's blocking ListenAndServe into a
context-aware Serve with a bounded graceful shutdown.

CatalogService keeps the served catalog current. It watches the catalog
file (catalog.Watcher), reloads on a timer, and accepts manual reload
requests through Trigger. Reloads go through a CatalogReloader, normally a
*recommend.Live, so a failed reload leaves the previous catalog serving.
*/
package services
