package s3

import (
	"log/slog"

	"github.com/bornholm/menud/internal/source"
	"github.com/bornholm/menud/pkg/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const Type source.Type = "s3"

func init() {
	source.Register(Type, CreateSourceFromOptions)
}

type Options struct {
	Endpoint        string `mapstructure:"endpoint" yaml:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey" yaml:"secretAccessKey"`
	UseSSL          bool   `mapstructure:"useSsl" yaml:"useSsl"`
	Region          string `mapstructure:"region" yaml:"region"`
	Bucket          string `mapstructure:"bucket" yaml:"bucket"`
	Key             string `mapstructure:"key" yaml:"key"`
}

func CreateSourceFromOptions(options any) (source.Source, error) {
	opts := Options{}

	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' menu source options", Type)
	}

	if opts.Bucket == "" || opts.Key == "" {
		return nil, errors.Errorf("'%s' menu source requires a bucket and a key", Type)
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not create '%s' menu source client", Type)
	}

	slog.Debug("configured s3 menu source",
		log.ScrubbedURL("endpoint", opts.Endpoint),
		slog.String("bucket", opts.Bucket),
		slog.String("key", opts.Key),
	)

	return NewSource(client, opts.Bucket, opts.Key), nil
}
