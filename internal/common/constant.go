package common

// SessionTokenHeaderName is the gRPC metadata key carrying the signed session
// token issued after a successful proof.
const SessionTokenHeaderName = "session_token"
