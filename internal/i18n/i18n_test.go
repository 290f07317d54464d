package i18n

import "testing"

func TestMain(m *testing.M) {
	if err := Load(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestT(t *testing.T) {
	tests := []struct {
		name   string
		lang   string
		key    string
		params map[string]string
		want   string
	}{
		{
			"placeholder substitution",
			"en-US", "message.getSuccess", map[string]string{"field": "Role"},
			"Role retrieved successfully",
		},
		{
			"nested key without params",
			"en-US", "auth.noToken", nil,
			"No token provided",
		},
		{
			"translated language",
			"fr-FR", "auth.noToken", nil,
			"Aucun jeton fourni",
		},
		{
			"missing key returns the key itself",
			"en-US", "no.such.key", nil,
			"no.such.key",
		},
		{
			"unknown language falls back to default",
			"de-DE", "auth.noToken", nil,
			"No token provided",
		},
		{
			"unsupplied placeholder stays literal",
			"en-US", "validation.notFound", nil,
			"{{field}} not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.lang, tt.key, tt.params); got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	if !Supported("en-US") || !Supported("fr-FR") {
		t.Error("embedded catalogues should be supported")
	}
	if Supported("de-DE") {
		t.Error("unembedded language reported as supported")
	}
}

func TestLookupNonLeaf(t *testing.T) {
	if _, ok := Lookup("en-US", "auth"); ok {
		t.Error("a subtree is not a renderable message")
	}
}
