package usecase_test

import (
	"context"

	"github.com/tu-usuario/portal-empleo/internal/domain"
	"github.com/tu-usuario/portal-empleo/internal/domain/entity"
	"github.com/tu-usuario/portal-empleo/internal/domain/repository"
)

// Ids de prueba con forma de UUID (las columnas de id son UUID).
const (
	idCompany   = "00000000-0000-0000-0000-000000000001"
	idPoC1      = "00000000-0000-0000-0000-000000000002"
	idPoC2      = "00000000-0000-0000-0000-000000000003"
	idEmployer1 = "00000000-0000-0000-0000-000000000004"
	idEmployer2 = "00000000-0000-0000-0000-000000000005"
	idEmployee  = "00000000-0000-0000-0000-000000000006"
	idUnknown   = "00000000-0000-0000-0000-0000000000ff" // bien formado pero inexistente
)

// Fakes en memoria de los puertos de persistencia. Emulan las constraints
// únicas y de FK igual que los adaptadores PostgreSQL.

type fakeCompanyRepo struct {
	companies map[string]*entity.Company // por id
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	for _, existing := range f.companies {
		if existing.Name == c.Name || existing.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	f.companies[c.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) List() ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range f.companies {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

type fakePoCRepo struct {
	pocs         map[string]*entity.PointOfContact // por id
	associations map[string][]string               // employerID -> pocIDs
}

func newFakePoCRepo() *fakePoCRepo {
	return &fakePoCRepo{
		pocs:         make(map[string]*entity.PointOfContact),
		associations: make(map[string][]string),
	}
}

func (f *fakePoCRepo) Create(p *entity.PointOfContact) error {
	for _, existing := range f.pocs {
		if existing.Email == p.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	f.pocs[p.ID] = &cp
	return nil
}

func (f *fakePoCRepo) GetByID(id string) (*entity.PointOfContact, error) {
	p, ok := f.pocs[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePoCRepo) GetByEmail(email string) (*entity.PointOfContact, error) {
	for _, p := range f.pocs {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakePoCRepo) GetByIDs(ids []string) ([]*entity.PointOfContact, error) {
	// Como el WHERE id = ANY($1) real: una fila por id existente, sin repetidos.
	seen := make(map[string]struct{}, len(ids))
	var list []*entity.PointOfContact
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := f.pocs[id]; ok {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakePoCRepo) List() ([]*entity.PointOfContact, error) {
	var list []*entity.PointOfContact
	for _, p := range f.pocs {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakePoCRepo) ListByEmployer(employerID string) ([]*entity.PointOfContact, error) {
	var list []*entity.PointOfContact
	for _, id := range f.associations[employerID] {
		if p, ok := f.pocs[id]; ok {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakePoCRepo) Update(p *entity.PointOfContact) error {
	for id, existing := range f.pocs {
		if id != p.ID && existing.Email == p.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	f.pocs[p.ID] = &cp
	return nil
}

func (f *fakePoCRepo) Delete(id string) error {
	delete(f.pocs, id)
	// cascade: solo caen las filas de asociación
	for employerID, ids := range f.associations {
		var kept []string
		for _, pocID := range ids {
			if pocID != id {
				kept = append(kept, pocID)
			}
		}
		f.associations[employerID] = kept
	}
	return nil
}

type fakeEmployerRepo struct {
	employers map[string]*entity.Employer // por id
	pocRepo   *fakePoCRepo                // comparte la tabla de asociación
}

func newFakeEmployerRepo(pocRepo *fakePoCRepo) *fakeEmployerRepo {
	return &fakeEmployerRepo{employers: make(map[string]*entity.Employer), pocRepo: pocRepo}
}

func (f *fakeEmployerRepo) Create(e *entity.Employer) error {
	for _, existing := range f.employers {
		if existing.Email == e.Email || existing.Name == e.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *e
	f.employers[e.ID] = &cp
	return nil
}

func (f *fakeEmployerRepo) GetByID(id string) (*entity.Employer, error) {
	e, ok := f.employers[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployerRepo) GetByEmail(email string) (*entity.Employer, error) {
	for _, e := range f.employers {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployerRepo) List() ([]*entity.Employer, error) {
	var list []*entity.Employer
	for _, e := range f.employers {
		cp := *e
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeEmployerRepo) Update(e *entity.Employer) error {
	for id, existing := range f.employers {
		if id != e.ID && (existing.Email == e.Email || existing.Name == e.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *e
	f.employers[e.ID] = &cp
	return nil
}

func (f *fakeEmployerRepo) ReplacePoCs(employerID string, pocIDs []string) error {
	for _, id := range pocIDs {
		if _, ok := f.pocRepo.pocs[id]; !ok {
			return domain.ErrPoCNotFound // emula la FK de la tabla de asociación
		}
	}
	f.pocRepo.associations[employerID] = append([]string(nil), pocIDs...)
	return nil
}

func (f *fakeEmployerRepo) Delete(id string) error {
	delete(f.employers, id)
	delete(f.pocRepo.associations, id)
	return nil
}

// fakeTxRunner emula la transacción: si fn falla, restaura el estado previo
// de empleadores y asociaciones (rollback).
type fakeTxRunner struct {
	employerRepo *fakeEmployerRepo
	pocRepo      *fakePoCRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	employerRepo repository.EmployerRepository,
	pocRepo repository.PointOfContactRepository,
) error) error {
	employersSnapshot := make(map[string]*entity.Employer, len(f.employerRepo.employers))
	for id, e := range f.employerRepo.employers {
		cp := *e
		employersSnapshot[id] = &cp
	}
	assocSnapshot := make(map[string][]string, len(f.pocRepo.associations))
	for id, ids := range f.pocRepo.associations {
		assocSnapshot[id] = append([]string(nil), ids...)
	}

	if err := fn(f.employerRepo, f.pocRepo); err != nil {
		f.employerRepo.employers = employersSnapshot
		f.pocRepo.associations = assocSnapshot
		return err
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
