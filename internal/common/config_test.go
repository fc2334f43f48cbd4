package common

import (
	"testing"
	"time"

	"github.com/labelcheck/labelcheck/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("GRPCAddr = %q, want :8080", cfg.Server.GRPCAddr)
	}
	if cfg.Verify.PipelineTimeout != 2*time.Minute {
		t.Errorf("PipelineTimeout = %v, want 2m", cfg.Verify.PipelineTimeout)
	}
	if cfg.Verify.BatchConcurrency != 4 {
		t.Errorf("BatchConcurrency = %d, want 4", cfg.Verify.BatchConcurrency)
	}
	if cfg.Verify.AutoApprove {
		t.Error("AutoApprove = true, want false by default")
	}
	if cfg.Verify.MinorFields != nil {
		t.Errorf("MinorFields = %v, want nil (built-in defaults)", cfg.Verify.MinorFields)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("VERIFY_TIMEOUT", "90s")
	t.Setenv("VERIFY_AUTO_APPROVE", "true")
	t.Setenv("VERIFY_AUTO_APPROVE_THRESHOLD", "70")
	t.Setenv("VERIFY_MINOR_FIELDS", "vintage, appellation")
	t.Setenv("OPENAI_TEMPERATURE", "0.2")

	cfg := LoadConfig()
	if cfg.Verify.PipelineTimeout != 90*time.Second {
		t.Errorf("PipelineTimeout = %v, want 90s", cfg.Verify.PipelineTimeout)
	}
	if !cfg.Verify.AutoApprove || cfg.Verify.AutoApproveThreshold != 70 {
		t.Errorf("auto-approve = (%v, %d), want (true, 70)",
			cfg.Verify.AutoApprove, cfg.Verify.AutoApproveThreshold)
	}
	if len(cfg.Verify.MinorFields) != 2 {
		t.Fatalf("MinorFields = %v, want 2 entries", cfg.Verify.MinorFields)
	}
	if _, ok := cfg.Verify.MinorFields[constants.FieldVintage]; !ok {
		t.Error("vintage missing from MinorFields")
	}
	if cfg.LLM.Temperature != 0.2 {
		t.Errorf("Temperature = %v, want 0.2", cfg.LLM.Temperature)
	}
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("VERIFY_TIMEOUT", "soon")
	t.Setenv("VERIFY_CONCURRENCY", "many")

	cfg := LoadConfig()
	if cfg.Verify.PipelineTimeout != 2*time.Minute {
		t.Errorf("PipelineTimeout = %v, want default on parse failure", cfg.Verify.PipelineTimeout)
	}
	if cfg.Verify.BatchConcurrency != 4 {
		t.Errorf("BatchConcurrency = %d, want default on parse failure", cfg.Verify.BatchConcurrency)
	}
}
