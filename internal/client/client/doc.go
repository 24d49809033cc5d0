// Package client talks to the verifier.
//
// Client is the transport-agnostic contract used by the prover; GRPCClient
// implements it over gRPC. After a successful VerifyAnswer the client keeps
// the session access token and attaches it, via a unary interceptor, to
// every following call as the session_token metadata entry.
//
// Status codes are mapped to sentinel errors that callers match with
// errors.Is: ErrInvalidRequest, ErrNotRegistered, ErrNotFound,
// ErrUnauthorized, ErrUnavailable.
package client
