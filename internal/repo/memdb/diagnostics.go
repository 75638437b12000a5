package memdb

type DiagnosticsRepo struct {
	*Store
}

func NewDiagnosticsRepo(s *Store) *DiagnosticsRepo {
	return &DiagnosticsRepo{s}
}

// Ping always succeeds: the in-memory store has nothing to reach.
func (r *DiagnosticsRepo) Ping() error {
	return nil
}
