package file

import (
	"bpump/fitness-backend/internal/domain"
	"bpump/fitness-backend/internal/repository"
	"context"
)

// fileProgramRepository implements repository.ProgramRepository on the
// program list embedded in each user document. A missing user file and a
// missing program both surface as ErrNotFound.
type fileProgramRepository struct {
	store *Store
}

// NewProgramRepository creates a program repository backed by the given store.
func NewProgramRepository(store *Store) repository.ProgramRepository {
	return &fileProgramRepository{store: store}
}

func (r *fileProgramRepository) Create(ctx context.Context, program *domain.Program) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	doc, err := r.store.loadUser(program.Owner)
	if err != nil {
		return err
	}
	for _, p := range doc.Progs {
		if p.ID == program.ID {
			return repository.ErrConflict
		}
	}
	doc.Progs = append(doc.Progs, *program)
	return r.store.saveUser(ctx, doc)
}

func (r *fileProgramRepository) Get(ctx context.Context, owner, id string) (*domain.Program, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	doc, err := r.store.loadUser(owner)
	if err != nil {
		return nil, err
	}
	for i := range doc.Progs {
		if doc.Progs[i].ID == id {
			program := doc.Progs[i]
			return &program, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fileProgramRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Program, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	doc, err := r.store.loadUser(owner)
	if err != nil {
		return nil, err
	}
	programs := make([]domain.Program, len(doc.Progs))
	copy(programs, doc.Progs)
	return programs, nil
}

func (r *fileProgramRepository) Update(ctx context.Context, program *domain.Program) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	doc, err := r.store.loadUser(program.Owner)
	if err != nil {
		return err
	}
	for i := range doc.Progs {
		if doc.Progs[i].ID == program.ID {
			doc.Progs[i] = *program
			return r.store.saveUser(ctx, doc)
		}
	}
	return repository.ErrNotFound
}

func (r *fileProgramRepository) Delete(ctx context.Context, owner, id string) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	doc, err := r.store.loadUser(owner)
	if err != nil {
		return err
	}
	for i := range doc.Progs {
		if doc.Progs[i].ID == id {
			doc.Progs = append(doc.Progs[:i], doc.Progs[i+1:]...)
			return r.store.saveUser(ctx, doc)
		}
	}
	return repository.ErrNotFound
}

// DeleteAllByOwner clears the embedded program list. An unknown owner is
// not an error here: the account-deletion cascade must stay idempotent.
func (r *fileProgramRepository) DeleteAllByOwner(ctx context.Context, owner string) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	doc, err := r.store.loadUser(owner)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil
		}
		return err
	}
	doc.Progs = []domain.Program{}
	return r.store.saveUser(ctx, doc)
}

// ReassignOwner rewrites the owner string on the programs riding along in
// the renamed user document. The document already lives under newOwner
// when this runs.
func (r *fileProgramRepository) ReassignOwner(ctx context.Context, oldOwner, newOwner string) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	doc, err := r.store.loadUser(newOwner)
	if err != nil {
		return err
	}
	for i := range doc.Progs {
		doc.Progs[i].Owner = newOwner
	}
	return r.store.saveUser(ctx, doc)
}
