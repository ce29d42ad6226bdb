package receipts

import (
	"bytes"
	"context"
	"fmt"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

type minioReceiptArchiver struct {
	client     *minio.Client
	bucketName string
}

// NewMinioReceiptArchiver stores a JSON copy of every issued receipt under
// receipts/<receiptNumber>.json for later reprint and audit.
func NewMinioReceiptArchiver(client *minio.Client, bucketName string) contracts.ReceiptArchiver {
	return &minioReceiptArchiver{
		client:     client,
		bucketName: bucketName,
	}
}

func (a *minioReceiptArchiver) ArchiveReceipt(ctx context.Context, receiptNumber string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := fmt.Sprintf("receipts/%s.json", receiptNumber)
	_, err = a.client.PutObject(ctx, a.bucketName, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, a.bucketName)
	}
	return nil
}
