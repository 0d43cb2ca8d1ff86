package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRenderPlan(t *testing.T) {
	cfg := New(Params{
		Reloc:          RelocOptions{Executable: true, Libraries: true, FollowFork: true},
		Misc:           MiscOptions{Strip: true},
		Network:        NetworkCobo,
		Transfer:       TransferPull,
		Security:       SecurityMunge,
		Port:           21940,
		LocationRoot:   "/tmp/spindle",
		PythonPrefixes: "/usr",
		UseMPI:         true,
		HideFDs:        true,
		JobCommand:     []string{"srun", "./app", "--verbose"},
	})

	out, err := cfg.RenderPlan()
	if err != nil {
		t.Fatalf("RenderPlan() returned error: %v", err)
	}

	var plan map[string]interface{}
	if err := yaml.Unmarshal(out, &plan); err != nil {
		t.Fatalf("RenderPlan() produced invalid yaml: %v", err)
	}

	if plan["network"] != "cobo" {
		t.Errorf("network = %v, want cobo", plan["network"])
	}
	if plan["transfer"] != "pull" {
		t.Errorf("transfer = %v, want pull", plan["transfer"])
	}
	if plan["security"] != "munge" {
		t.Errorf("security = %v, want munge", plan["security"])
	}
	if plan["port"] != 21940 {
		t.Errorf("port = %v, want 21940", plan["port"])
	}
	if _, ok := plan["preload_file"]; ok {
		t.Error("unset preload_file should be omitted from the plan")
	}

	cmd, ok := plan["job_command"].([]interface{})
	if !ok || len(cmd) != 3 {
		t.Fatalf("job_command = %v, want 3 entries", plan["job_command"])
	}
	if cmd[2] != "--verbose" {
		t.Errorf("job command arguments must survive verbatim, got %v", cmd[2])
	}

	reloc, ok := plan["reloc"].(map[string]interface{})
	if !ok {
		t.Fatalf("reloc section missing from plan")
	}
	if reloc["executable"] != true || reloc["follow_fork"] != true {
		t.Errorf("reloc toggles not rendered: %v", reloc)
	}
}
