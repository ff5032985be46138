package settings

import "testing"

func TestEnvKey(t *testing.T) {
	if got := EnvKey("LOG_LEVEL"); got != "REACTION_GAME_LOG_LEVEL" {
		t.Fatalf("unexpected env key: %v", got)
	}
}

func TestGetenvInt(t *testing.T) {
	tests := map[string]struct {
		Value string
		Want  int
	}{
		"unset":      {Value: "", Want: 0},
		"number":     {Value: "42", Want: 42},
		"not number": {Value: "forty-two", Want: 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if test.Value != "" {
				t.Setenv(EnvKey("TEST_INT"), test.Value)
			}

			if got := GetenvInt("TEST_INT"); got != test.Want {
				t.Fatalf("expected %v, got %v", test.Want, got)
			}
		})
	}
}

func TestGetenvBool(t *testing.T) {
	t.Setenv(EnvKey("TEST_BOOL"), "true")
	if !GetenvBool("TEST_BOOL") {
		t.Fatal("expected true")
	}
}
