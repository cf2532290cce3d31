package league

// OID identifies a domain entity. Callers supply it at construction (the
// store mints fresh values) and it never changes afterward. Two entities
// are the same iff they are the same kind and carry the same OID, so an
// OID is safe to use as a map key for any one entity kind.
type OID int64

// entity is embedded by every domain type to carry its immutable OID.
type entity struct {
	oid OID
}

// OID returns the entity's identifier.
func (e entity) OID() OID {
	return e.oid
}
