package constants

// Token kinds embedded in signed payloads and token records.
// These values are a wire contract shared with the inbound-request
// authenticator and must not change.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// Portals served by the surrounding application
const (
	PortalUser  = "user"
	PortalAdmin = "admin"
)

// User roles
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
	RoleBuyer  = "buyer"
)
