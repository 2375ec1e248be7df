package usecase

import "context"

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (string, error)
	CleanupImage(key string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
