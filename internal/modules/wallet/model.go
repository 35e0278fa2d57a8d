package wallet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionKind string

const (
	KindTopup      TransactionKind = "topup"
	KindWithdraw   TransactionKind = "withdraw"
	KindPayment    TransactionKind = "payment"
	KindRefund     TransactionKind = "refund"
	KindPayout     TransactionKind = "payout"
	KindCommission TransactionKind = "commission"
)

// Wallet holds a user's balance in integer minor units. One wallet per
// user, single currency.
type Wallet struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	UserID       string    `json:"user_id" gorm:"size:36;uniqueIndex;not null"`
	BalanceCents int64     `json:"balance_cents" gorm:"not null;default:0"`
	Currency     string    `json:"currency" gorm:"size:3;not null;default:USD"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Wallet) TableName() string { return "wallets" }

func (w *Wallet) BeforeCreate(_ *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// Transaction is one ledger entry. AmountCents is signed (credits
// positive, debits negative) and BalanceAfterCents is the wallet balance
// immediately after this entry was applied, so the ledger replays to the
// current balance.
type Transaction struct {
	ID                string          `json:"id" gorm:"primaryKey;size:36"`
	WalletID          string          `json:"wallet_id" gorm:"size:36;index;not null"`
	UserID            string          `json:"user_id" gorm:"size:36;index;not null"`
	Kind              TransactionKind `json:"kind" gorm:"size:16;not null"`
	AmountCents       int64           `json:"amount_cents" gorm:"not null"`
	BalanceAfterCents int64           `json:"balance_after_cents" gorm:"not null"`
	Currency          string          `json:"currency" gorm:"size:3;not null"`
	Reference         string          `json:"reference,omitempty" gorm:"size:128"`
	IdempotencyKey    *string         `json:"idempotency_key,omitempty" gorm:"size:64;uniqueIndex"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (Transaction) TableName() string { return "wallet_transactions" }

func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Migrate creates the wallet tables. Called at wiring time so the module
// owns its own schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Wallet{}, &Transaction{})
}
