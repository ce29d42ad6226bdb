package receipts

import (
	"context"
	"medipos-service/internal/app/contracts"
)

type noopReceiptArchiver struct{}

func NewNoopReceiptArchiver() contracts.ReceiptArchiver {
	return &noopReceiptArchiver{}
}

func (a *noopReceiptArchiver) ArchiveReceipt(ctx context.Context, receiptNumber string, payload interface{}) error {
	return nil
}
