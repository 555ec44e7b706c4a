package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// session token on inbound requests.
const AccessTokenHeaderName = "access_token"
