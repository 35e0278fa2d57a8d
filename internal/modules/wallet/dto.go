package wallet

import "localguide/internal/pkg/money"

type TopupRequest struct {
	AmountCents    int64  `json:"amount_cents" binding:"required"`
	IdempotencyKey string `json:"idempotency_key"`
}

type WithdrawRequest struct {
	AmountCents    int64  `json:"amount_cents" binding:"required"`
	IdempotencyKey string `json:"idempotency_key"`
}

type WalletResponse struct {
	ID               string `json:"id"`
	BalanceCents     int64  `json:"balance_cents"`
	Currency         string `json:"currency"`
	BalanceFormatted string `json:"balance_formatted"`
}

func walletResponse(w *Wallet) WalletResponse {
	return WalletResponse{
		ID:               w.ID,
		BalanceCents:     w.BalanceCents,
		Currency:         w.Currency,
		BalanceFormatted: money.Format(w.BalanceCents, w.Currency),
	}
}
