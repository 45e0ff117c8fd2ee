package usecase

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// ClientUseCase aplica reglas de negocio para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registra un cliente con email único.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := uc.checkEmail(ctx, 0, in.Email); err != nil {
		return nil, err
	}
	client := &entity.Client{FullName: in.FullName, TaxID: in.TaxID, Email: in.Email}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func (uc *ClientUseCase) checkEmail(ctx context.Context, selfID int64, email string) error {
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrEmailExists
	}
	return nil
}

// List devuelve los clientes filtrados por nombre (contiene), cpf (contiene) y email (exacto).
func (uc *ClientUseCase) List(ctx context.Context, f dto.ClientFilter) (*dto.ClientListResponse, error) {
	q := filter.New(filter.ClientFields...).
		Contains(filter.ClientFullName, f.FullName).
		Contains(filter.ClientTaxID, f.TaxID).
		Equals(filter.ClientEmail, f.Email).
		Paginate(f.Page).
		Build()
	clients, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	out := &dto.ClientListResponse{Clients: make([]dto.ClientResponse, 0, len(clients))}
	for _, c := range clients {
		out.Clients = append(out.Clients, *toClientResponse(c))
	}
	return out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return toClientResponse(client), nil
}

// Update aplica sólo los campos presentes.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if in.Email != nil && *in.Email != client.Email {
		if err := uc.checkEmail(ctx, client.ID, *in.Email); err != nil {
			return nil, err
		}
		client.Email = *in.Email
	}
	if in.FullName != nil {
		client.FullName = *in.FullName
	}
	if in.TaxID != nil {
		client.TaxID = *in.TaxID
	}
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina el cliente y en cascada sus pedidos.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		TaxID:     c.TaxID,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
