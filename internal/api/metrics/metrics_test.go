package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegister_CustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := Register(reg); err != nil {
		t.Fatalf("second register should be a no-op, got %v", err)
	}

	RejectAuth(GuardAdmin)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == "blog_auth_rejections_total" {
			return
		}
	}
	t.Fatalf("expected blog_auth_rejections_total on the custom registry")
}

func TestRegister_DefaultRegistryIsNoOp(t *testing.T) {
	if err := Register(prometheus.DefaultRegisterer); err != nil {
		t.Fatalf("expected already registered metrics to be skipped, got %v", err)
	}
}
