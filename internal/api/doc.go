// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api is the HTTP layer of Reelmatch.

Routes:

	GET  /                              title picker page
	POST /recommend                     {"title": ...} -> {"ok", "results", "error"}
	GET  /api/v1/recommendations        ?title=&limit=
	GET  /api/v1/suggest                ?q=&limit=
	GET  /api/v1/titles                 ?limit=&offset=
	GET  /api/v1/catalog/status
	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /metrics

POST /recommend is the endpoint used by the title picker page:
it always answers 200 and reports failure in the body. The /api/v1 routes
use the standard envelope:

	{
	  "success": true,
	  "data": {...},
	  "error": {"code": "NOT_FOUND", "message": "...", "details": {...}},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 0}
	}

Handlers read the current engine from an EngineSource on every request, so a
catalog reload takes effect without restarting the server.
*/
package api
