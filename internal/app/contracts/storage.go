package contracts

import "context"

type ReceiptArchiver interface {
	ArchiveReceipt(ctx context.Context, receiptNumber string, payload interface{}) error
}
