package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GAJULASAINATH/MacroVerse/internal/repositories"
	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

type CreditServiceInterface interface {
	AddCredits(ctx context.Context, userID string, amount int64) (int64, error)
}

type CreditService struct {
	userRepo repositories.UserRepository
}

func NewCreditService(userRepo repositories.UserRepository) CreditServiceInterface {
	return &CreditService{
		userRepo: userRepo,
	}
}

func (s *CreditService) AddCredits(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, utils.ErrInvalidAction
	}

	balance, err := s.userRepo.AddCredits(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, utils.ErrUserNotFound
		}
		return 0, utils.ErrDatabaseError
	}
	return balance, nil
}
