package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	sc "github.com/dmitrijs2005/passkeeper/internal/server/config"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackupFixture(t *testing.T) (*BackupService, *fakeRepoManager) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "passkeeper-backups",
	}
	repos := newFakeRepoManager()
	return NewBackupService(db, repos, cfg, logging.Nop{}), repos
}

func stubS3(t *testing.T) {
	t.Helper()
	origLoad, origNew, origPut, origPresign := loadDefaultAWSConfig, newS3ClientFromConfig, putObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		putObject = origPut
		presignGetObject = origPresign
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://127.0.0.1:9000" {
			t.Fatalf("BaseEndpoint not applied")
		}
		return &s3.Client{}
	}
}

func TestBackupExport_UploadsCipherTextsOnly(t *testing.T) {
	svc, repos := newBackupFixture(t)
	stubS3(t)

	repos.credentials.byID["c1"] = &models.Credential{
		ID: "c1", OwnerID: "o1", Title: "Mail", CipherText: "ct-1",
		History: models.History{{CipherText: "ct-0"}}, Category: models.CategoryOther,
	}
	repos.credentials.byID["c2"] = &models.Credential{ID: "c2", OwnerID: "o2", Title: "Other", CipherText: "ct-x"}

	var uploaded []byte
	var uploadedKey string
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		assert.Equal(t, "passkeeper-backups", *in.Bucket)
		uploadedKey = *in.Key
		b, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		uploaded = b
		return &s3.PutObjectOutput{}, nil
	}
	presignGetObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		assert.Equal(t, uploadedKey, *in.Key)
		return &v4.PresignedHTTPRequest{URL: "https://s3.local/" + *in.Key}, nil
	}

	b, err := svc.Export(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Count)
	assert.True(t, strings.HasPrefix(b.Key, "backups/o1/"))
	assert.True(t, strings.HasSuffix(b.Key, ".json"))
	assert.Equal(t, "https://s3.local/"+b.Key, b.DownloadURL)

	var doc backupDocument
	require.NoError(t, json.Unmarshal(uploaded, &doc))
	assert.Equal(t, "o1", doc.OwnerID)
	require.Len(t, doc.Credentials, 1)
	assert.Equal(t, "ct-1", doc.Credentials[0].CipherText)
	assert.Equal(t, "ct-0", doc.Credentials[0].History[0].CipherText)
}

func TestBackupExport_Errors(t *testing.T) {
	t.Run("repo", func(t *testing.T) {
		svc, repos := newBackupFixture(t)
		repos.credentials.err = errors.New("db down")
		_, err := svc.Export(context.Background(), "o1")
		assert.Error(t, err)
	})

	t.Run("aws config", func(t *testing.T) {
		svc, _ := newBackupFixture(t)
		stubS3(t)
		loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("load-fail")
		}
		_, err := svc.Export(context.Background(), "o1")
		assert.EqualError(t, err, "load-fail")
	})

	t.Run("upload", func(t *testing.T) {
		svc, _ := newBackupFixture(t)
		stubS3(t)
		putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			return nil, errors.New("put-fail")
		}
		_, err := svc.Export(context.Background(), "o1")
		assert.ErrorContains(t, err, "upload backup: put-fail")
	})

	t.Run("presign", func(t *testing.T) {
		svc, _ := newBackupFixture(t)
		stubS3(t)
		putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			return &s3.PutObjectOutput{}, nil
		}
		presignGetObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			return nil, errors.New("presign-fail")
		}
		_, err := svc.Export(context.Background(), "o1")
		assert.ErrorContains(t, err, "presign backup")
	})
}

func TestBackupStorageKey(t *testing.T) {
	svc, _ := newBackupFixture(t)
	k1 := backupStorageKey("o1", svc.now())
	k2 := backupStorageKey("o1", svc.now())
	assert.NotEqual(t, k1, k2)
}
