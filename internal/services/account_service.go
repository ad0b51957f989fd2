package services

import (
	"context"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/db_models"
	"github.com/GAJULASAINATH/MacroVerse/internal/models/request_models"
	"github.com/GAJULASAINATH/MacroVerse/internal/repositories"
	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}
