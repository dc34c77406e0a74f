package store

// Both implementations must satisfy the Store contract the services depend
// on; a drift in either breaks one of the startup modes.
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*PostgresStore)(nil)
)

// The bootstrap sequence in cmd/api: wrap the pool, ensure the schema, then
// hand the store to the services. Kept as a compile-time guard; exercising
// it needs a live database.
var _ = func() Store {
	ps := NewPostgresStore(nil)
	_ = ps.EnsureSchema
	return ps
}
