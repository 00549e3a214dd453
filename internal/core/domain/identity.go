package domain

// IdentityKind discriminates the principal variants an Identity can carry.
type IdentityKind int

const (
	IdentityAnonymous IdentityKind = iota
	IdentityAdmin
	IdentityCliente
)

// Identity is the per-request resolved principal. It is an immutable value
// built by the auth middleware and passed to handlers and services; a single
// Identity carries either an admin, a cliente, or nothing. The zero value is
// anonymous.
type Identity struct {
	Kind IdentityKind

	AdminID    string
	AdminNome  string
	AdminNivel int

	ClienteID   string
	ClienteNome string
}

// AdminIdentity builds an Identity for an authenticated administrator.
func AdminIdentity(id, nome string, nivel int) Identity {
	return Identity{Kind: IdentityAdmin, AdminID: id, AdminNome: nome, AdminNivel: nivel}
}

// ClienteIdentity builds an Identity for an authenticated cliente.
func ClienteIdentity(id, nome string) Identity {
	return Identity{Kind: IdentityCliente, ClienteID: id, ClienteNome: nome}
}

func (i Identity) IsAdmin() bool     { return i.Kind == IdentityAdmin }
func (i Identity) IsCliente() bool   { return i.Kind == IdentityCliente }
func (i Identity) IsAnonymous() bool { return i.Kind == IdentityAnonymous }

// IsOwnerOrSelf reports whether the identity's own identifier equals ownerID.
// Admins get no special treatment here: this is the strict ownership-equality
// predicate used for profile mutation.
func (i Identity) IsOwnerOrSelf(ownerID string) bool {
	if ownerID == "" {
		return false
	}
	switch i.Kind {
	case IdentityAdmin:
		return i.AdminID == ownerID
	case IdentityCliente:
		return i.ClienteID == ownerID
	}
	return false
}

// CanAccess reports whether the identity may read or delete a resource owned
// by ownerID. Any admin passes; a cliente passes only for its own records.
func (i Identity) CanAccess(ownerID string) bool {
	if i.Kind == IdentityAdmin {
		return true
	}
	return i.Kind == IdentityCliente && ownerID != "" && i.ClienteID == ownerID
}
