package managing

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profile-health-api/infrastructure/repository"
	"github.com/vfg2006/profile-health-api/internal/domain"
	"github.com/vfg2006/profile-health-api/pkg/utils"
)

var ErrBusinessNotFound = pkgerrors.New("negócio não encontrado")

// BusinessManager expõe o cadastro de negócios do painel: criação, consulta,
// atualização parcial e vínculo com uma conta conectada
type BusinessManager interface {
	Create(ctx context.Context, req *domain.CreateBusinessRequest) (*domain.Business, error)
	Get(ctx context.Context, id string) (*domain.Business, error)
	List(ctx context.Context) ([]*domain.Business, error)
	Update(ctx context.Context, req *domain.UpdateBusinessRequest) error
	Link(ctx context.Context, businessID, accountID string) error
}

type Service struct {
	businesses repository.BusinessRepository
	accounts   repository.ConnectedAccountRepository
}

func NewService(
	businesses repository.BusinessRepository,
	accounts repository.ConnectedAccountRepository,
) *Service {
	return &Service{
		businesses: businesses,
		accounts:   accounts,
	}
}

func (s *Service) Create(ctx context.Context, req *domain.CreateBusinessRequest) (*domain.Business, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao gerar identificador do negócio")
	}

	business := &domain.Business{
		ID:      id,
		Name:    req.Name,
		PlaceID: req.PlaceID,
		Status:  domain.BusinessActive,
		Location: domain.LocationReference{
			AccountID:  req.AccountID,
			LocationID: req.LocationID,
		},
	}

	if err := s.businesses.Save(ctx, business); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao persistir o negócio")
	}

	logrus.WithFields(logrus.Fields{
		"business_id": business.ID,
		"name":        business.Name,
	}).Info("managing: business created")

	return business, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Business, error) {
	business, err := s.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar o negócio")
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	return business, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Business, error) {
	businesses, err := s.businesses.List(ctx, []domain.BusinessStatus{domain.BusinessActive})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar os negócios")
	}

	return businesses, nil
}

func (s *Service) Update(ctx context.Context, req *domain.UpdateBusinessRequest) error {
	business, err := s.businesses.GetByID(ctx, req.ID)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao buscar o negócio")
	}
	if business == nil {
		return ErrBusinessNotFound
	}

	return s.businesses.Update(ctx, req)
}

// Link vincula um negócio a uma conta conectada existente. A conta precisa
// existir; a LocationReference do negócio não muda no vínculo.
func (s *Service) Link(ctx context.Context, businessID, accountID string) error {
	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao buscar o negócio")
	}
	if business == nil {
		return ErrBusinessNotFound
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao buscar a conta conectada")
	}
	if account == nil {
		return pkgerrors.New("conta conectada não encontrada")
	}

	return s.businesses.LinkAccount(ctx, businessID, accountID)
}
