package config

import (
	"testing"
)

func TestParseSecurityModel(t *testing.T) {
	testCases := []struct {
		name string
		want SecurityModel
	}{
		{"munge", SecurityMunge},
		{"lmon", SecurityKeyLMon},
		{"keyfile", SecurityKeyFile},
		{"none", SecurityNone},
		{"MUNGE", SecurityMunge}, // config files get to be sloppy about case
	}
	for _, tc := range testCases {
		got, err := ParseSecurityModel(tc.name)
		if err != nil {
			t.Errorf("ParseSecurityModel(%q) returned error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSecurityModel(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParseSecurityModelRejectsUnknown(t *testing.T) {
	if _, err := ParseSecurityModel("kerberos"); err == nil {
		t.Error("ParseSecurityModel accepted a model outside the compiled set")
	}
	if _, err := ParseSecurityModel(""); err == nil {
		t.Error("ParseSecurityModel accepted an empty name")
	}
}

func TestAvailableSecurityModelsIsACopy(t *testing.T) {
	models := AvailableSecurityModels()
	if len(models) != 4 {
		t.Fatalf("expected 4 compiled-in models, got %d", len(models))
	}
	models[0] = SecurityNone
	if AvailableSecurityModels()[0] != SecurityMunge {
		t.Error("AvailableSecurityModels exposed the internal slice")
	}
}
