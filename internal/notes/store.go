package notes

import "context"

//go:generate mockgen -source=$GOFILE -destination=store_mock_test.go -package=notes

const (
	BackendMemory  = "memory"
	BackendSQL     = "sql"
	BackendPgxPool = "pgxpool"
	BackendGorm    = "gorm"
	BackendMongo   = "mongo"
	BackendRedis   = "redis"
)

var Backends = []string{
	BackendMemory,
	BackendSQL,
	BackendPgxPool,
	BackendGorm,
	BackendMongo,
	BackendRedis,
}

// Store is the CRUD surface every backend implements.
// Get returns (nil, nil) when no note matches. Update and Delete of a missing
// note are no-ops, not errors.
type Store interface {
	List(ctx context.Context) ([]Note, error)
	Get(ctx context.Context, id ID) (*Note, error)
	Add(ctx context.Context, note *Note) (*Note, error)
	Update(ctx context.Context, note *Note) (*Note, error)
	Delete(ctx context.Context, id ID) error
	DeleteAll(ctx context.Context) error

	IsValidID(raw string) bool
	ParseID(raw string) (ID, error)
	NewID() (ID, error)
}
