package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionEvents(t *testing.T, events []Event) []Event {
	t.Helper()
	var opts []Event
	for _, ev := range events {
		if ev.Kind == EventOption {
			opts = append(opts, ev)
		}
	}
	return opts
}

func TestScanLongInlineArgument(t *testing.T) {
	events, err := Scan([]string{"--reloc-libs=no", "app"})
	require.NoError(t, err)
	opts := optionEvents(t, events)
	require.Len(t, opts, 1)
	assert.Equal(t, "reloc-libs", opts[0].Option.Name)
	assert.Equal(t, "no", opts[0].Arg)
}

func TestScanLongSeparateArgument(t *testing.T) {
	events, err := Scan([]string{"--port", "1234", "app"})
	require.NoError(t, err)
	opts := optionEvents(t, events)
	require.Len(t, opts, 1)
	assert.Equal(t, "port", opts[0].Option.Name)
	assert.Equal(t, "1234", opts[0].Arg)
}

func TestScanShortForms(t *testing.T) {
	// separate argument
	events, err := Scan([]string{"-t", "1234", "app"})
	require.NoError(t, err)
	opts := optionEvents(t, events)
	require.Len(t, opts, 1)
	assert.Equal(t, "port", opts[0].Option.Name)
	assert.Equal(t, "1234", opts[0].Arg)

	// inline argument
	events, err = Scan([]string{"-ayes", "app"})
	require.NoError(t, err)
	opts = optionEvents(t, events)
	require.Len(t, opts, 1)
	assert.Equal(t, "reloc-aout", opts[0].Option.Name)
	assert.Equal(t, "yes", opts[0].Arg)

	// presence flag
	events, err = Scan([]string{"-p", "app"})
	require.NoError(t, err)
	opts = optionEvents(t, events)
	require.Len(t, opts, 1)
	assert.Equal(t, "push", opts[0].Option.Name)
	assert.Empty(t, opts[0].Arg)
}

func TestScanTrailingCommandCapture(t *testing.T) {
	events, err := Scan([]string{"--pull", "srun", "--pull", "--not-an-option", "app"})
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, EventOption, events[0].Kind)
	assert.Equal(t, "pull", events[0].Option.Name)

	// option-like tokens after the command start are data, not options
	last := events[len(events)-1]
	assert.Equal(t, EventTrailingArgs, last.Kind)
	assert.Equal(t, []string{"srun", "--pull", "--not-an-option", "app"}, last.Args)
}

func TestScanDoubleDashTerminator(t *testing.T) {
	events, err := Scan([]string{"--push", "--", "--port", "bad"})
	require.NoError(t, err)
	last := events[len(events)-1]
	require.Equal(t, EventTrailingArgs, last.Kind)
	assert.Equal(t, []string{"--port", "bad"}, last.Args)
}

func TestScanNoTrailingCommand(t *testing.T) {
	events, err := Scan([]string{"--push"})
	require.NoError(t, err)
	for _, ev := range events {
		assert.NotEqual(t, EventTrailingArgs, ev.Kind)
	}
}

func TestScanUnknownOption(t *testing.T) {
	_, err := Scan([]string{"--turbo", "app"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "turbo")

	_, err = Scan([]string{"-w", "app"})
	require.Error(t, err)
}

func TestScanMissingArgument(t *testing.T) {
	_, err := Scan([]string{"--port"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires an argument")

	_, err = Scan([]string{"-t"})
	require.Error(t, err)
}

func TestScanUnexpectedArgument(t *testing.T) {
	_, err := Scan([]string{"--push=yes", "app"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doesn't allow an argument")
}

func TestScanEmptyInput(t *testing.T) {
	events, err := Scan(nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}
