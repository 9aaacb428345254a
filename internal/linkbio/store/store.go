package store

import (
	"context"
	"errors"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
type Store interface {
	Users() Users
	Links() Links
	Settings() Settings
	Products() Products

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user and returns its assigned id.
	// Returns ErrAlreadyExists when username or email is taken.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// GetUserByUsername is used during login and identity resolution.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)
}

type Links interface {
	// CreateLink inserts a new link for its owning user and returns its id.
	CreateLink(ctx context.Context, l domain.Link) (int64, error)

	// ListLinksByUser returns all links owned by userID, oldest first.
	ListLinksByUser(ctx context.Context, userID int64) ([]domain.Link, error)

	// GetLinkByID returns a link only when it is owned by userID;
	// a row owned by someone else reads as ErrNotFound.
	GetLinkByID(ctx context.Context, id, userID int64) (domain.Link, error)

	// UpdateLink rewrites title/url of an owned link. ErrNotFound when the
	// row is absent or owned by another user.
	UpdateLink(ctx context.Context, l domain.Link) error

	// DeleteLink removes an owned link. ErrNotFound when the row is absent
	// or owned by another user.
	DeleteLink(ctx context.Context, id, userID int64) error
}

type Settings interface {
	// GetSettingsByUserID returns the settings row for a user, or
	// ErrNotFound when none has been materialized yet.
	GetSettingsByUserID(ctx context.Context, userID int64) (domain.Settings, error)

	// CreateSettingsIfAbsent inserts s unless the user already has a row.
	// Safe under the benign concurrent first-access race: the insert is
	// conflict-ignoring on the user id, so at most one row ever exists.
	CreateSettingsIfAbsent(ctx context.Context, s domain.Settings) error

	// UpdateSettings rewrites the mutable fields of a user's settings row.
	UpdateSettings(ctx context.Context, s domain.Settings) error
}

type Products interface {
	// CreateProduct inserts a product with its client-assigned id.
	CreateProduct(ctx context.Context, p domain.Product) error

	// GetProductByID returns a product by id.
	GetProductByID(ctx context.Context, id int64) (domain.Product, error)

	// ListProducts returns the whole catalog ordered by id.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// UpdateProduct rewrites name/price/quantity. ErrNotFound when absent.
	UpdateProduct(ctx context.Context, p domain.Product) error

	// DeleteProduct removes a product. ErrNotFound when absent.
	DeleteProduct(ctx context.Context, id int64) error

	// CountProducts reports catalog size; used by startup seeding.
	CountProducts(ctx context.Context) (int64, error)
}
