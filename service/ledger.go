package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/store"
)

// LedgerService manages user balances outside of checkout: explicit top-ups
// and withdrawals. Balances never go below zero.
type LedgerService struct {
	store store.Store
	log   *zap.Logger
}

func NewLedgerService(st store.Store, log *zap.Logger) *LedgerService {
	return &LedgerService{store: st, log: log}
}

func (s *LedgerService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.store.GetUser(ctx, userID)
}

func (s *LedgerService) Balance(ctx context.Context, userID uint) (decimal.Decimal, error) {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return u.Balance, nil
}

func (s *LedgerService) TopUp(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, models.ErrInvalidAmount
	}
	var balance decimal.Decimal
	err := s.store.Transact(ctx, func(tx store.Store) error {
		u, err := tx.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		balance = u.Balance.Add(amount)
		return tx.UpdateUserBalance(ctx, userID, balance)
	})
	if err != nil {
		return decimal.Zero, err
	}
	s.log.Info("balance top-up",
		zap.Uint("user_id", userID),
		zap.String("amount", amount.String()))
	return balance, nil
}

func (s *LedgerService) Withdraw(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, models.ErrInvalidAmount
	}
	var balance decimal.Decimal
	err := s.store.Transact(ctx, func(tx store.Store) error {
		u, err := tx.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if u.Balance.LessThan(amount) {
			return models.ErrInsufficientFunds
		}
		balance = u.Balance.Sub(amount)
		return tx.UpdateUserBalance(ctx, userID, balance)
	})
	if err != nil {
		return decimal.Zero, err
	}
	s.log.Info("balance withdrawal",
		zap.Uint("user_id", userID),
		zap.String("amount", amount.String()))
	return balance, nil
}

// WithdrawAll empties the balance and returns the withdrawn amount.
func (s *LedgerService) WithdrawAll(ctx context.Context, userID uint) (decimal.Decimal, error) {
	var withdrawn decimal.Decimal
	err := s.store.Transact(ctx, func(tx store.Store) error {
		u, err := tx.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		withdrawn = u.Balance
		return tx.UpdateUserBalance(ctx, userID, decimal.Zero)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return withdrawn, nil
}
