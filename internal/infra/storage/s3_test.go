package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestArchive(t *testing.T) {
	fake := &fakePutter{}
	a := &S3Archiver{client: fake, bucket: "viki", prefix: "exports"}

	key, err := a.Archive(context.Background(), "viki_finance_2026-10-19.csv", "text/csv", []byte("payment_id\n"))
	require.NoError(t, err)
	require.Equal(t, "exports/viki_finance_2026-10-19.csv", key)
	require.Equal(t, "viki", aws.ToString(fake.input.Bucket))
	require.Equal(t, "text/csv", aws.ToString(fake.input.ContentType))
	require.Equal(t, "payment_id\n", string(fake.body))
}

func TestArchiveError(t *testing.T) {
	a := &S3Archiver{client: &fakePutter{err: errors.New("denied")}, bucket: "viki", prefix: "exports"}
	_, err := a.Archive(context.Background(), "x.csv", "text/csv", nil)
	require.Error(t, err)
}

func TestNewS3Archiver(t *testing.T) {
	a := NewS3Archiver(S3Config{Bucket: "viki", Region: "us-east-1", Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"})
	require.NotNil(t, a.client)
	require.Equal(t, "viki", a.bucket)
}
