package domain

// The host's authentication layer identifies the caller and forwards the
// opaque identity in a trusted header. The core never authenticates itself.
const (
	RequesterIdCtxKey = "s360-requesterId"
)

const (
	RequesterIdHeader = "S360-Requester-Id"
)
