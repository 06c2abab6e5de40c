package account

import (
	"github.com/amirasaad/pinbank/pkg/domain/account"
)

//revive:disable

// CreateAccountRequest represents the request body for opening an account.
type CreateAccountRequest struct {
	OwnerName string `json:"owner_name" validate:"required,max=50"`
	Pin       string `json:"pin" validate:"required"`
}

// UpdateAccountRequest represents the request body for changing an account's
// owner name and/or PIN. Omitted fields are left untouched.
type UpdateAccountRequest struct {
	OwnerName *string `json:"owner_name" validate:"omitempty,max=50"`
	Pin       *string `json:"pin" validate:"omitempty"`
}

// Credentials identify and authorize the calling account.
type Credentials struct {
	AccountNumber int64  `reqHeader:"X-User-Account-Number" validate:"required"`
	PinCode       string `reqHeader:"X-User-Pin-Code" validate:"required"`
}

// ActionQuery carries the query parameters of a deposit or withdrawal.
type ActionQuery struct {
	Action string `query:"action" validate:"required"`
	Amount string `query:"amount" validate:"required,numeric"`
}

// TransferQuery carries the query parameters of a transfer.
type TransferQuery struct {
	Amount string `query:"amount" validate:"required,numeric"`
}

// TransferResponse is returned by a successful transfer.
type TransferResponse struct {
	Sender    account.Summary `json:"sender"`
	Recipient account.Summary `json:"recipient"`
}
