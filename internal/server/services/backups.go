package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	sc "github.com/dmitrijs2005/passkeeper/internal/server/config"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const backupLinkValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return s3.NewPresignClient(c).PresignGetObject(ctx, in, optFns...)
	}
)

// Backup locates an uploaded export.
type Backup struct {
	Key         string
	DownloadURL string
	Count       int
}

// backupDocument is the exported JSON. It carries cipher texts only; the
// export is useless without the server's encryption key.
type backupDocument struct {
	OwnerID     string         `json:"owner_id"`
	ExportedAt  time.Time      `json:"exported_at"`
	Credentials []backupRecord `json:"credentials"`
}

type backupRecord struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	LoginName  *string         `json:"login_name,omitempty"`
	LoginEmail *string         `json:"login_email,omitempty"`
	URL        *string         `json:"url,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
	CipherText string          `json:"cipher_text"`
	History    models.History  `json:"history"`
	IsFavorite bool            `json:"is_favorite"`
	Category   models.Category `json:"category"`
	CreatedAt  time.Time       `json:"created_at"`
	ModifiedAt *time.Time      `json:"modified_at,omitempty"`
}

// BackupService exports an owner's encrypted credentials to S3-compatible
// object storage.
type BackupService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	logger      logging.Logger
	now         func() time.Time
}

func NewBackupService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config, logger logging.Logger) *BackupService {
	return &BackupService{
		db:          db,
		repomanager: m,
		config:      config,
		logger:      logger.With("module", "backups"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func backupStorageKey(ownerID string, d time.Time) string {
	return fmt.Sprintf("backups/%s/%d/%02d/%02d/%v.json", ownerID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *BackupService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Export uploads every credential of ownerID and returns the object key with
// a short-lived download link.
func (s *BackupService) Export(ctx context.Context, ownerID string) (*Backup, error) {
	list, err := s.repomanager.Credentials(s.db).List(ctx, ownerID, models.CredentialFilter{})
	if err != nil {
		return nil, err
	}

	now := s.now()
	doc := backupDocument{OwnerID: ownerID, ExportedAt: now, Credentials: make([]backupRecord, 0, len(list))}
	for _, c := range list {
		doc.Credentials = append(doc.Credentials, backupRecord{
			ID:         c.ID,
			Title:      c.Title,
			LoginName:  c.LoginName,
			LoginEmail: c.LoginEmail,
			URL:        c.URL,
			Notes:      c.Notes,
			CipherText: c.CipherText,
			History:    c.History,
			IsFavorite: c.IsFavorite,
			Category:   c.Category,
			CreatedAt:  c.CreatedAt,
			ModifiedAt: c.ModifiedAt,
		})
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := backupStorageKey(ownerID, now)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return nil, fmt.Errorf("upload backup: %w", err)
	}

	req, err := presignGetObject(client, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(backupLinkValidity))
	if err != nil {
		return nil, fmt.Errorf("presign backup: %w", err)
	}

	s.logger.Info(ctx, "backup exported", "owner_id", ownerID, "key", key, "count", len(doc.Credentials))
	return &Backup{Key: key, DownloadURL: req.URL, Count: len(doc.Credentials)}, nil
}
