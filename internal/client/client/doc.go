// Package client talks to the external deals catalog (the CheapShark REST
// API).
//
// # Overview
//
// The DealsAPI interface is the transport-agnostic contract used by the
// session; CheapSharkClient implements it with plain GET requests:
//
//	GET {base}/games?title=<title>   → []models.Game
//	GET {base}/deals?gameID=<id>     → []models.Deal
//
// # Error Handling
//
// Transport failures, non-2xx statuses and undecodable bodies are returned as
// oops errors that match common.ErrExternalService with errors.Is. Nothing is
// retried and nothing is cached: every call is a fresh round trip.
package client
