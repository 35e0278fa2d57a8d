package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the user's wallet, creating an empty one on first touch.
func (s *Service) Get(ctx context.Context, userID string) (*Wallet, error) {
	return s.getOrCreate(ctx, s.db, userID, false)
}

func (s *Service) getOrCreate(ctx context.Context, tx *gorm.DB, userID string, forUpdate bool) (*Wallet, error) {
	q := tx.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var w Wallet
	err := q.Where("user_id = ?", userID).First(&w).Error
	if err == nil {
		return &w, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	w = Wallet{UserID: userID, Currency: "USD"}
	if err := tx.WithContext(ctx).Create(&w).Error; err != nil {
		if isUniqueViolation(err) {
			// Lost the race to another request; re-read.
			err = q.Where("user_id = ?", userID).First(&w).Error
		}
		if err != nil {
			return nil, err
		}
	}
	return &w, nil
}

// Topup credits the wallet. The idempotency key makes retries safe: a
// repeated key returns the original entry without crediting again.
func (s *Service) Topup(ctx context.Context, userID string, req TopupRequest) (*Transaction, error) {
	if req.AmountCents <= 0 {
		return nil, ErrValidation
	}
	return s.applyOwn(ctx, userID, KindTopup, req.AmountCents, "", req.IdempotencyKey)
}

// Withdraw debits the wallet, failing when the balance would go negative.
func (s *Service) Withdraw(ctx context.Context, userID string, req WithdrawRequest) (*Transaction, error) {
	if req.AmountCents <= 0 {
		return nil, ErrValidation
	}
	return s.applyOwn(ctx, userID, KindWithdraw, -req.AmountCents, "", req.IdempotencyKey)
}

func (s *Service) applyOwn(ctx context.Context, userID string, kind TransactionKind, delta int64, reference, idemKey string) (*Transaction, error) {
	var entry *Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		entry, txErr = s.apply(ctx, tx, userID, kind, delta, "USD", reference, idemKey)
		return txErr
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateRequest) && idemKey != "" {
			return s.findByIdempotencyKey(ctx, idemKey)
		}
		return nil, err
	}
	return entry, nil
}

// apply posts one ledger entry inside the caller's transaction. delta is
// signed. Used directly by the booking flow so seat reservation, booking
// row and payment commit or roll back together.
func (s *Service) apply(ctx context.Context, tx *gorm.DB, userID string, kind TransactionKind, delta int64, currency, reference, idemKey string) (*Transaction, error) {
	w, err := s.getOrCreate(ctx, tx, userID, true)
	if err != nil {
		return nil, err
	}
	if currency != "" && currency != w.Currency {
		return nil, ErrCurrencyMismatch
	}
	after := w.BalanceCents + delta
	if after < 0 {
		return nil, ErrInsufficientFunds
	}
	if err := tx.WithContext(ctx).Model(&Wallet{}).Where("id = ?", w.ID).
		Update("balance_cents", after).Error; err != nil {
		return nil, err
	}
	entry := &Transaction{
		WalletID:          w.ID,
		UserID:            userID,
		Kind:              kind,
		AmountCents:       delta,
		BalanceAfterCents: after,
		Currency:          w.Currency,
		Reference:         reference,
	}
	if idemKey != "" {
		entry.IdempotencyKey = &idemKey
	}
	if err := tx.WithContext(ctx).Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}
	return entry, nil
}

// Pay debits userID for a purchase within the caller's transaction and
// returns the ledger entry ID as the payment reference.
func (s *Service) Pay(ctx context.Context, tx *gorm.DB, userID string, amountCents int64, currency, reference string) (string, error) {
	if amountCents < 0 {
		return "", ErrValidation
	}
	entry, err := s.apply(ctx, tx, userID, KindPayment, -amountCents, currency, reference, "")
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// Refund credits a previous payment back within the caller's transaction.
func (s *Service) Refund(ctx context.Context, tx *gorm.DB, userID string, amountCents int64, currency, reference string) (string, error) {
	if amountCents < 0 {
		return "", ErrValidation
	}
	entry, err := s.apply(ctx, tx, userID, KindRefund, amountCents, currency, reference, "")
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// Payout credits a guide their earnings within the caller's transaction.
// The gross amount and the platform commission are posted as separate
// ledger entries, so the net balance change is gross - commission and the
// commission stays visible in the history.
func (s *Service) Payout(ctx context.Context, tx *gorm.DB, userID string, grossCents, commissionCents int64, currency, reference string) error {
	if grossCents <= 0 || commissionCents < 0 || commissionCents > grossCents {
		return ErrValidation
	}
	if _, err := s.apply(ctx, tx, userID, KindPayout, grossCents, currency, reference, ""); err != nil {
		return err
	}
	if commissionCents == 0 {
		return nil
	}
	_, err := s.apply(ctx, tx, userID, KindCommission, -commissionCents, currency, reference, "")
	return err
}

func (s *Service) History(ctx context.Context, userID string, limit, offset int) ([]Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	var entries []Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(limit).Offset(offset).
		Find(&entries).Error
	return entries, err
}

func (s *Service) findByIdempotencyKey(ctx context.Context, key string) (*Transaction, error) {
	var entry Transaction
	if err := s.db.WithContext(ctx).Where("idempotency_key = ?", key).First(&entry).Error; err != nil {
		return nil, fmt.Errorf("lookup idempotent entry: %w", err)
	}
	return &entry, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite surfaces constraint failures as plain errors.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
