// Package api exposes the numeric and text operation catalogs over HTTP.
//
// Each operation is called with a JSON body:
//
//	POST /v1/numeric/clamp
//	{"args": [15, 0, 10], "profile": "strict", "config": {"max": null}}
//
// Configuration layers are applied in order: defaults, then the named
// profile, then config. A failing operation is still a 200 response whose
// data carries {"ok": false, "error": {...}}; 4xx statuses are reserved for
// requests that cannot be served at all.
package api
