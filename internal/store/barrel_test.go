package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBarrel(t *testing.T) {
	assert.Equal(t, "export * from \"./cart\";\n", string(NewBarrel("cart")))
}

func TestAppendExport(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		want     string
	}{
		{
			name:     "after generated barrel",
			existing: "export * from \"./cart\";\n",
			want:     "export * from \"./cart\";\nexport * from \"./user\";",
		},
		{
			name:     "no trailing newline",
			existing: "export * from \"./cart\";",
			want:     "export * from \"./cart\";\nexport * from \"./user\";",
		},
		{
			name:     "only one trailing blank line is dropped",
			existing: "export * from \"./cart\";\n\n",
			want:     "export * from \"./cart\";\n\nexport * from \"./user\";",
		},
		{
			name:     "empty file",
			existing: "",
			want:     "export * from \"./user\";",
		},
		{
			name:     "hand-written content is kept",
			existing: "// stores\nexport { default as legacy } from \"./legacy\";\n",
			want:     "// stores\nexport { default as legacy } from \"./legacy\";\nexport * from \"./user\";",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(AppendExport([]byte(tt.existing), "user")))
		})
	}
}
