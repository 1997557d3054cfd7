package envconfig

import "github.com/caarlos0/env/v11"

type s3Env struct {
	Bucket        string `env:"S3_BUCKET,required"`
	Region        string `env:"S3_REGION" envDefault:"us-east-1"`
	Endpoint      string `env:"S3_ENDPOINT"`
	PathStyle     bool   `env:"S3_PATH_STYLE" envDefault:"false"`
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

type s3 struct {
	raw s3Env
}

func NewS3Config() (*s3, error) {
	var raw s3Env
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &s3{raw: raw}, nil
}

func (cfg *s3) Bucket() string        { return cfg.raw.Bucket }
func (cfg *s3) Region() string        { return cfg.raw.Region }
func (cfg *s3) Endpoint() string      { return cfg.raw.Endpoint }
func (cfg *s3) PathStyle() bool       { return cfg.raw.PathStyle }
func (cfg *s3) PublicBaseURL() string { return cfg.raw.PublicBaseURL }
