package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/freshcart-backend/pkg/logger"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(logger.NewSlogLogger())
	if err != nil {
		t.Fatalf("can't load config: %v", err)
	}

	if cfg.Http.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Http.Port)
	}
	if cfg.Store.KeyPrefix != "freshcart" {
		t.Fatalf("unexpected default key prefix: %s", cfg.Store.KeyPrefix)
	}
	if cfg.Store.Backend != StoreBackendRedis {
		t.Fatalf("unexpected default backend: %s", cfg.Store.Backend)
	}
	if cfg.Kafka != nil {
		t.Fatal("kafka config must be nil when KAFKA_BROKERS is unset")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")
	t.Setenv("STORE_KEY_PREFIX", "shop")
	t.Setenv("STORE_BACKEND", StoreBackendMemory)
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_TOPIC", "shop.events")

	cfg, err := Load(logger.NewSlogLogger())
	if err != nil {
		t.Fatalf("can't load config: %v", err)
	}

	if cfg.Http.Port != "9000" {
		t.Fatalf("unexpected port: %s", cfg.Http.Port)
	}
	if cfg.Http.ReadTimeout != 2*time.Second {
		t.Fatalf("unexpected read timeout: %s", cfg.Http.ReadTimeout)
	}
	if cfg.Store.KeyPrefix != "shop" || cfg.Store.Backend != StoreBackendMemory {
		t.Fatalf("unexpected store config: %+v", cfg.Store)
	}
	if cfg.Kafka == nil {
		t.Fatal("kafka config must be present when KAFKA_BROKERS is set")
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Topic != "shop.events" {
		t.Fatalf("unexpected kafka config: %+v", cfg.Kafka)
	}
}

func TestLoad_InvalidIntEnv(t *testing.T) {
	t.Setenv("REDIS_DB_ID", "not-a-number")

	if _, err := Load(logger.NewSlogLogger()); err == nil {
		t.Fatal("expected error for invalid REDIS_DB_ID")
	}
}
