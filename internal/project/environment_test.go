package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func installPackage(t *testing.T, root, pkg, version string) {
	t.Helper()

	dir := filepath.Join(root, "node_modules", pkg)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if version == "" {
		return
	}
	manifest := `{"name": "` + pkg + `", "version": "` + version + `"}`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNodeModulesProbe(t *testing.T) {
	tests := []struct {
		name     string
		packages []string
		want     Environment
	}{
		{name: "no markers", want: Unsupported},
		{name: "vue only", packages: []string{"vue"}, want: Vue3},
		{name: "nuxt only", packages: []string{"nuxt"}, want: Nuxt3},
		{name: "nuxt wins over vue", packages: []string{"vue", "nuxt"}, want: Nuxt3},
		{name: "unrelated packages", packages: []string{"react", "pinia"}, want: Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, pkg := range tt.packages {
				installPackage(t, root, pkg, "")
			}

			got, err := NewNodeModulesProbe(root).Detect(context.Background())
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNodeModulesProbe_NoNodeModules(t *testing.T) {
	root := t.TempDir()

	got, err := NewNodeModulesProbe(root).Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if got != Unsupported {
		t.Errorf("Detect() = %v, want Unsupported", got)
	}

	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("probe must not create anything, found %d entries", len(entries))
	}
}

func TestStaticProbe(t *testing.T) {
	got, err := StaticProbe(Vue3).Detect(context.Background())
	if err != nil || got != Vue3 {
		t.Errorf("StaticProbe(Vue3).Detect() = %v, %v", got, err)
	}
}

func TestEnvironment_String(t *testing.T) {
	if Nuxt3.String() != "Nuxt 3" {
		t.Errorf("Nuxt3.String() = %q", Nuxt3.String())
	}
	if Vue3.String() != "Vue 3" {
		t.Errorf("Vue3.String() = %q", Vue3.String())
	}
	if Unsupported.Package() != "" {
		t.Errorf("Unsupported.Package() = %q, want empty", Unsupported.Package())
	}
}
