package file

import (
	"bpump/fitness-backend/internal/domain"
	"bpump/fitness-backend/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"
)

// userDocument is the on-disk shape of one user file: the full account
// record with its program list embedded. The password digest is persisted
// here on purpose; the domain.User JSON tags hide it from API responses,
// so the store needs its own serialisation.
type userDocument struct {
	Username   string            `json:"username"`
	Password   string            `json:"password"`
	Metabolism domain.Metabolism `json:"metabolism"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	Progs      []domain.Program  `json:"progs"`
}

func (d *userDocument) toDomain() *domain.User {
	return &domain.User{
		Username:     d.Username,
		PasswordHash: d.Password,
		Metabolism:   d.Metabolism,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// loadUser reads one user document. Callers must hold the store lock.
func (s *Store) loadUser(username string) (*userDocument, error) {
	if !validKey(username) {
		return nil, repository.ErrNotFound
	}
	data, err := s.readFile(s.userPath(username))
	if err != nil {
		return nil, err
	}
	var doc userDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// saveUser writes one user document. Callers must hold the store lock.
func (s *Store) saveUser(ctx context.Context, doc *userDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return s.writeFile(ctx, s.userPath(doc.Username), data)
}

// fileUserRepository implements repository.UserRepository on a Store.
type fileUserRepository struct {
	store *Store
}

// NewUserRepository creates a user repository backed by the given store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &fileUserRepository{store: store}
}

// Create writes a fresh user file. An existing file for the same username
// means the name is taken.
func (r *fileUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.Username == "" || user.PasswordHash == "" {
		return errors.New("username and password hash are required")
	}
	if !validKey(user.Username) {
		return errors.New("username is not usable as a storage key")
	}

	unlock := r.store.lock(ctx)
	defer unlock()

	if _, err := os.Stat(r.store.userPath(user.Username)); err == nil {
		return repository.ErrConflict
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc := &userDocument{
		Username:   user.Username,
		Password:   user.PasswordHash,
		Metabolism: user.Metabolism,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
		Progs:      []domain.Program{},
	}
	return r.store.saveUser(ctx, doc)
}

func (r *fileUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	doc, err := r.store.loadUser(username)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// Update replaces the account fields of an existing user, leaving the
// embedded program list untouched.
func (r *fileUserRepository) Update(ctx context.Context, user *domain.User) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	doc, err := r.store.loadUser(user.Username)
	if err != nil {
		return err
	}

	user.UpdatedAt = time.Now().UTC()
	doc.Password = user.PasswordHash
	doc.Metabolism = user.Metabolism
	doc.UpdatedAt = user.UpdatedAt
	return r.store.saveUser(ctx, doc)
}

// Rename moves the user file to the new name. The embedded programs keep
// stale owner strings until ReassignOwner rewrites them.
func (r *fileUserRepository) Rename(ctx context.Context, oldName, newName string) error {
	if !validKey(newName) {
		return errors.New("username is not usable as a storage key")
	}

	unlock := r.store.lock(ctx)
	defer unlock()

	doc, err := r.store.loadUser(oldName)
	if err != nil {
		return err
	}
	if _, err := os.Stat(r.store.userPath(newName)); err == nil {
		return repository.ErrConflict
	}

	doc.Username = newName
	doc.UpdatedAt = time.Now().UTC()
	if err := r.store.saveUser(ctx, doc); err != nil {
		return err
	}
	return r.store.removeFile(ctx, r.store.userPath(oldName))
}

// Delete removes the user file, and with it the embedded programs.
func (r *fileUserRepository) Delete(ctx context.Context, username string) error {
	if !validKey(username) {
		return repository.ErrNotFound
	}

	unlock := r.store.lock(ctx)
	defer unlock()

	return r.store.removeFile(ctx, r.store.userPath(username))
}
