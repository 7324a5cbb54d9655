// Package http implements the gin handlers of the statcalc REST API.
//
// Routes:
//
//	GET  /                   service banner
//	GET  /health             registry stats and uptime
//	GET  /services           list services, optional ?category=
//	GET  /services/discover  rank services by ?intent=
//	POST /services/execute   run a tool: {"tool_id": "...", "params": {...}}
//	GET  /metrics/json       metric totals as JSON
//
// A tool that rejects its input still answers 200 with success=false; non-2xx
// codes are reserved for malformed requests and unknown services.
package http
