package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server: {}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("port = %d; want 5000", cfg.Server.Port)
	}
	if cfg.Upload.MaxSizeMB != 100 {
		t.Errorf("max upload = %d; want 100", cfg.Upload.MaxSizeMB)
	}
	if cfg.Charts.Backend != "echarts" {
		t.Errorf("chart backend = %q; want echarts", cfg.Charts.Backend)
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("db driver = %q; want mysql", cfg.Database.Driver)
	}
	if cfg.OpenAI.MaxReviews != 200 {
		t.Errorf("max reviews = %d; want 200", cfg.OpenAI.MaxReviews)
	}
	if cfg.RateLimit.Capacity != 10 || cfg.RateLimit.RefillRate != 1 {
		t.Errorf("rate limit = %d/%d; want 10/1", cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)
	}
	if cfg.MaxUploadBytes() != 100*1024*1024 {
		t.Errorf("upload bytes = %d; want 100MB", cfg.MaxUploadBytes())
	}
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: 8080
  apiToken: secret
upload:
  maxSizeMB: 25
charts:
  backend: plotly
database:
  enabled: true
  driver: postgres
  host: db.local
  port: 5432
  user: app
  password: pw
  name: reviews
minio:
  enabled: true
  endpoint: minio.local:9000
  bucketName: reports
openai:
  apiKey: sk-test
  model: gpt-4o-mini
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 || cfg.Server.APIToken != "secret" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Charts.Backend != "plotly" {
		t.Errorf("chart backend = %q; want plotly", cfg.Charts.Backend)
	}
	if !cfg.Database.Enabled || cfg.Database.Driver != "postgres" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if !cfg.Minio.Enabled || cfg.Minio.BucketName != "reports" {
		t.Errorf("minio = %+v", cfg.Minio)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("openai = %+v", cfg.OpenAI)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "server: [not: a: map\n")); err == nil {
		t.Error("invalid yaml accepted")
	}
}

func TestDSNBuilders(t *testing.T) {
	var cfg Config
	cfg.Database.Host = "db.local"
	cfg.Database.Port = 3306
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Name = "reviews"

	mysql := cfg.MySQLDSN()
	if mysql != "app:pw@tcp(db.local:3306)/reviews?parseTime=true&charset=utf8mb4&loc=UTC" {
		t.Errorf("mysql dsn = %q", mysql)
	}

	cfg.Database.Port = 5432
	pg := cfg.PostgresDSN()
	if pg != "host=db.local port=5432 user=app password=pw dbname=reviews sslmode=disable" {
		t.Errorf("postgres dsn = %q", pg)
	}
}
