package usecase

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/ports"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher ports.PasswordHasher
}

// maxPasswordBytes límite de bcrypt; se cuenta en bytes, no en caracteres.
const maxPasswordBytes = 72

var errPasswordTooLong = domain.NewError(domain.ErrInvalidInput, "password must be at most 72 bytes")

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el hasher.
func NewUserUseCase(repo repository.UserRepository, hasher ports.PasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher}
}

// Create registra un usuario. Username y email deben ser únicos; el rol por defecto es guest.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleGuest
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	if err := uc.checkUnique(ctx, 0, in.Username, in.Email); err != nil {
		return nil, err
	}
	hash, err := uc.hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (uc *UserUseCase) hashPassword(plain string) (string, error) {
	if len(plain) > maxPasswordBytes {
		return "", errPasswordTooLong
	}
	return uc.hasher.Hash(plain)
}

// checkUnique verifica username y luego email contra usuarios distintos de selfID.
func (uc *UserUseCase) checkUnique(ctx context.Context, selfID int64, username, email string) error {
	if username != "" {
		existing, err := uc.repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != selfID {
			return domain.ErrUsernameExists
		}
	}
	if email != "" {
		existing, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != selfID {
			return domain.ErrEmailExists
		}
	}
	return nil
}

// List devuelve los usuarios filtrados por rol y paginados.
func (uc *UserUseCase) List(ctx context.Context, f dto.UserFilter) (*dto.UserListResponse, error) {
	q := filter.New(filter.UserFields...).
		Equals(filter.UserRole, f.Role).
		Paginate(f.Page).
		Build()
	users, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, *toUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Update aplica sólo los campos presentes; la password se vuelve a hashear.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	var username, email string
	if in.Username != nil && *in.Username != user.Username {
		username = *in.Username
	}
	if in.Email != nil && *in.Email != user.Email {
		email = *in.Email
	}
	if err := uc.checkUnique(ctx, user.ID, username, email); err != nil {
		return nil, err
	}
	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := uc.hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// EnsureAdmin crea el administrador si no existe ningún usuario con ese email. Devuelve true si lo creó.
func (uc *UserUseCase) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	_, err = uc.Create(ctx, dto.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
