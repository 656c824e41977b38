package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var s3Client *s3.Client

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// UploadBase64ToS3 stores a data-URL payload ("data:<mime>;base64,<data>")
// under keyPrefix and returns the object URL. Compliance documents are
// private; retrieval goes through the same bucket credentials.
func UploadBase64ToS3(base64Data, keyPrefix string) (url, contentType string, err error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid base64 payload")
	}
	meta := parts[0]
	data := parts[1]

	mediaType := strings.SplitN(meta, ":", 2)
	if len(mediaType) != 2 {
		return "", "", fmt.Errorf("invalid base64 payload")
	}
	contentType = strings.SplitN(mediaType[1], ";", 2)[0] // "application/pdf"

	ext := extensionFor(contentType)

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode payload: %v", err)
	}

	key := fmt.Sprintf("%s/%s%s", keyPrefix, uuid.NewString(), ext)

	bucket := os.Getenv("S3_BUCKET")
	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), contentType, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "application/pdf":
		return ".pdf"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}
