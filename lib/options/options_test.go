package options

import (
	"testing"

	"github.com/go-spindle/spindle/lib/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownOption(t *testing.T) {
	d, err := Lookup("reloc-aout")
	require.NoError(t, err)
	assert.Equal(t, CodeRelocAout, d.Code)
	assert.Equal(t, GroupReloc, d.Group)
	assert.Equal(t, BoolToggle, d.Kind)
}

func TestLookupUnknownOption(t *testing.T) {
	_, err := Lookup("turbo-mode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "turbo-mode")
}

func TestLookupShortAliases(t *testing.T) {
	testCases := []struct {
		short byte
		name  string
	}{
		{'a', "reloc-aout"},
		{'l', "reloc-libs"},
		{'y', "reloc-python"},
		{'x', "reloc-exec"},
		{'f', "follow-fork"},
		{'p', "push"},
		{'q', "pull"},
		{'c', "cobo"},
		{'t', "port"},
		{'o', "location"},
		{'r', "python-prefix"},
		{'d', "debug"},
		{'e', "preload"},
		{'s', "strip"},
		{'n', "noclean"},
		{'z', "disable-logging"},
		{'m', "no-mpi"},
		{'h', "no-hide"},
	}
	for _, tc := range testCases {
		d, err := LookupShort(tc.short)
		require.NoError(t, err, "short -%c", tc.short)
		assert.Equal(t, tc.name, d.Name)
	}

	_, err := LookupShort('w')
	assert.Error(t, err)
}

// Bitmask-group options need distinct, non-overlapping codes or the set
// algebra in the resolution engine would silently merge them.
func TestCodesAreDisjoint(t *testing.T) {
	var seen Code
	for _, d := range All() {
		if d.Code == 0 {
			continue
		}
		assert.Zero(t, seen&d.Code, "option %s reuses an already assigned code", d.Name)
		seen |= d.Code
	}
}

func TestGroupMasksCoverTheirOptions(t *testing.T) {
	for _, d := range All() {
		if d.Code == 0 {
			continue
		}
		switch d.Group {
		case GroupReloc:
			assert.NotZero(t, AllRelocCodes&d.Code, "%s missing from reloc mask", d.Name)
		case GroupNetwork:
			assert.NotZero(t, AllNetworkCodes&d.Code, "%s missing from network mask", d.Name)
		case GroupPushPull:
			assert.NotZero(t, AllPushPullCodes&d.Code, "%s missing from push/pull mask", d.Name)
		case GroupMisc:
			assert.NotZero(t, AllMiscCodes&d.Code, "%s missing from misc mask", d.Name)
		}
	}
}

func TestSecuritySelectorsCoverCompiledSet(t *testing.T) {
	selected := make(map[config.SecurityModel]bool)
	for _, d := range All() {
		if d.Group == GroupSecurity {
			assert.Equal(t, ModeSelector, d.Kind, "%s must be a mode selector", d.Name)
			selected[d.Security] = true
		}
	}
	for _, m := range config.AvailableSecurityModels() {
		assert.True(t, selected[m], "no selector registered for model %s", m)
	}
}

func TestAllReturnsACopy(t *testing.T) {
	table := All()
	require.NotEmpty(t, table)
	original := table[0].Name
	table[0].Name = "clobbered"
	assert.Equal(t, original, All()[0].Name)
}
