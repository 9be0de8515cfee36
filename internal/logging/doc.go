// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides zerolog-based structured logging for Reelmatch.
//
// A single global logger is configured once at startup with Init and used
// through package-level helpers. JSON output is the default; console output
// is available for local development.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("titles", n).Msg("Catalog loaded")
//
// # Configuration
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Context
//
// HTTP middleware stores the request ID in the request context. Ctx returns
// a logger that carries it, along with the correlation ID attached to
// background work such as catalog reloads:
//
//	logging.Ctx(r.Context()).Warn().Str("title", title).Msg("Title not found")
//
// # slog
//
// SlogHandler adapts zerolog to log/slog for libraries that only accept a
// *slog.Logger, most notably the suture supervisor hooks.
package logging
