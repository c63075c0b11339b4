package s3

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"
)

const testDocument = `
left:
  - name: Dashboard
    path: dashboard
dropdown:
  - name: API Help
    path: api
    session: read
`

func TestSource(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcminio.Run(ctx, "minio/minio:RELEASE.2024-01-16T16-07-38Z")
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	endpoint, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(container.Username, container.Password, ""),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	const bucket = "menud-test"

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	document := []byte(testDocument)

	_, err = client.PutObject(ctx, bucket, "menu.yml", bytes.NewReader(document), int64(len(document)), minio.PutObjectOptions{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	src, err := CreateSourceFromOptions(map[string]any{
		"endpoint":        endpoint,
		"accessKeyId":     container.Username,
		"secretAccessKey": container.Password,
		"bucket":          bucket,
		"key":             "menu.yml",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	cfg, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(cfg.Left); e != g {
		t.Fatalf("len(cfg.Left): expected %d, got %d", e, g)
	}

	if e, g := "Dashboard", cfg.Left[0].Name; e != g {
		t.Errorf("cfg.Left[0].Name: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(cfg.Dropdown); e != g {
		t.Fatalf("len(cfg.Dropdown): expected %d, got %d", e, g)
	}
}
