package memory

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct {
	s  *Store
	lk locker
}

// NewUserRepository construye el repo sobre s.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s, lk: &s.mu}
}

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	if err := r.checkUnique(user); err != nil {
		return err
	}
	user.ID = r.s.nextID("users")
	user.CreatedAt = r.s.now()
	r.s.users[user.ID] = *user
	return nil
}

// checkUnique emula users_username_key y users_email_key. Llamar con mu tomado.
func (r *UserRepo) checkUnique(user *entity.User) error {
	for id, u := range r.s.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username {
			return domain.ErrUsernameExists
		}
		if u.Email == user.Email {
			return domain.ErrEmailExists
		}
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Username == username }), nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email }), nil
}

func (r *UserRepo) find(pred func(entity.User) bool) *entity.User {
	r.lk.RLock()
	defer r.lk.RUnlock()
	for _, u := range r.s.users {
		if pred(u) {
			return &u
		}
	}
	return nil
}

func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	current, ok := r.s.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if err := r.checkUnique(user); err != nil {
		return err
	}
	user.CreatedAt = current.CreatedAt
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) List(ctx context.Context, q filter.Query) ([]*entity.User, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()
	list := []*entity.User{}
	for _, u := range r.s.users {
		get := func(field string) (any, bool) {
			if field == filter.UserRole {
				return u.Role, true
			}
			return nil, false
		}
		if match(q, get, nil) {
			list = append(list, &u)
		}
	}
	return paginate(list, func(u *entity.User) int64 { return u.ID }, q.Page), nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.s.users, id)
	return nil
}
