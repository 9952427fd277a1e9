package secret

import (
	"context"
	"errors"
	"testing"
)

func TestParseSecretRef(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		wantProvider string
		wantRef      string
		wantOK       bool
	}{
		{"valid ref", "secretref:vault:app/password", "vault", "app/password", true},
		{"ref with colons", "secretref:vault:kv/data/app:field", "vault", "kv/data/app:field", true},
		{"plain value", "hunter2", "", "", false},
		{"missing ref part", "secretref:vault", "", "", false},
		{"empty provider", "secretref::ref", "", "", false},
		{"empty ref", "secretref:vault:", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, ref, ok := ParseSecretRef(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if provider != tt.wantProvider || ref != tt.wantRef {
				t.Errorf("ParseSecretRef() = (%q, %q), want (%q, %q)", provider, ref, tt.wantProvider, tt.wantRef)
			}
		})
	}
}

func TestResolver_ResolveValue_Plain(t *testing.T) {
	r := NewResolver(false)

	got, err := r.ResolveValue(context.Background(), "plain-secret")
	if err != nil {
		t.Fatalf("ResolveValue() error = %v", err)
	}
	if got != "plain-secret" {
		t.Errorf("ResolveValue() = %q, want %q", got, "plain-secret")
	}
}

func TestResolver_ResolveValue_EnvExpansion(t *testing.T) {
	t.Setenv("DIRTRUST_TEST_APP_SECRET", "from-env")
	r := NewResolver(false)

	got, err := r.ResolveValue(context.Background(), "${DIRTRUST_TEST_APP_SECRET}")
	if err != nil {
		t.Fatalf("ResolveValue() error = %v", err)
	}
	if got != "from-env" {
		t.Errorf("ResolveValue() = %q, want %q", got, "from-env")
	}
}

func TestResolver_ResolveValue_Provider(t *testing.T) {
	static := NewStaticProvider("static", map[string]string{
		"app/password": "resolved-secret",
	})
	r := NewResolver(false, static)

	got, err := r.ResolveValue(context.Background(), "secretref:static:app/password")
	if err != nil {
		t.Fatalf("ResolveValue() error = %v", err)
	}
	if got != "resolved-secret" {
		t.Errorf("ResolveValue() = %q, want %q", got, "resolved-secret")
	}
}

func TestResolver_ResolveValue_UnknownProvider(t *testing.T) {
	r := NewResolver(false)

	_, err := r.ResolveValue(context.Background(), "secretref:vault:app/password")
	if err == nil {
		t.Fatal("ResolveValue() error = nil, want error for unregistered provider")
	}
}

func TestResolver_ResolveValue_UnknownRef(t *testing.T) {
	static := NewStaticProvider("static", map[string]string{})
	r := NewResolver(false, static)

	_, err := r.ResolveValue(context.Background(), "secretref:static:nope")
	if !errors.Is(err, ErrUnknownRef) {
		t.Errorf("ResolveValue() error = %v, want ErrUnknownRef", err)
	}
}

func TestResolver_StrictRejectsEmpty(t *testing.T) {
	static := NewStaticProvider("static", map[string]string{"empty": ""})

	strict := NewResolver(true, static)
	if _, err := strict.ResolveValue(context.Background(), "secretref:static:empty"); err == nil {
		t.Error("strict resolver accepted an empty secret")
	}

	lax := NewResolver(false, static)
	got, err := lax.ResolveValue(context.Background(), "secretref:static:empty")
	if err != nil {
		t.Fatalf("ResolveValue() error = %v", err)
	}
	if got != "" {
		t.Errorf("ResolveValue() = %q, want empty", got)
	}
}

func TestResolver_Register(t *testing.T) {
	r := NewResolver(false)
	r.Register(NewStaticProvider("late", map[string]string{"k": "v"}))

	got, err := r.ResolveValue(context.Background(), "secretref:late:k")
	if err != nil {
		t.Fatalf("ResolveValue() error = %v", err)
	}
	if got != "v" {
		t.Errorf("ResolveValue() = %q, want %q", got, "v")
	}
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider("static", map[string]string{"k": "v"})

	if p.Name() != "static" {
		t.Errorf("Name() = %q, want %q", p.Name(), "static")
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

var _ Provider = (*StaticProvider)(nil)
