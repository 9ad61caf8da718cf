package discover

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_EndToEnd(t *testing.T) {
	groups := Partition([]string{"kick_01", "kick_02", "snare_01", "vocal_fx"})

	assert.Equal(t, []Group{
		{Stems: []string{"kick_01", "kick_02"}, Prefix: "kick_0"},
		{Stems: []string{"snare_01"}, Prefix: "snare_01"},
		{Stems: []string{"vocal_fx"}, Prefix: "vocal_fx"},
	}, groups)

	assert.Equal(t, []Pattern{
		{Prefix: "kick_0", Count: 2},
		{Prefix: "snare_01", Count: 1},
		{Prefix: "vocal_fx", Count: 1},
	}, SelectPatterns(groups))
}

func TestPartition_ThresholdIsHard(t *testing.T) {
	t.Run("three shared characters never group", func(t *testing.T) {
		patterns := DiscoverPatterns([]string{"ab_x", "ab_y", "ac_z"})
		assert.Equal(t, []Pattern{
			{Prefix: "ab_x", Count: 1},
			{Prefix: "ab_y", Count: 1},
			{Prefix: "ac_z", Count: 1},
		}, patterns)
	})

	t.Run("four shared characters group", func(t *testing.T) {
		patterns := DiscoverPatterns([]string{"abcd1", "abcd2"})
		assert.Equal(t, []Pattern{{Prefix: "abcd", Count: 2}}, patterns)
	})

	t.Run("short stem equal to shared prefix", func(t *testing.T) {
		patterns := DiscoverPatterns([]string{"abc", "abcdef"})
		assert.Equal(t, []Pattern{
			{Prefix: "abc", Count: 1},
			{Prefix: "abcdef", Count: 1},
		}, patterns)
	})
}

func TestPartition_CaseVariants(t *testing.T) {
	patterns := DiscoverPatterns([]string{"Loop1", "loop2"})
	assert.Equal(t, []Pattern{{Prefix: "Loop", Count: 2}}, patterns)
}

func TestPartition_RunningPrefixShrinks(t *testing.T) {
	// Each admission shortens the running prefix; the reported prefix is the
	// common prefix of the whole group.
	groups := Partition([]string{"hihat_open", "hihat_closed", "kick", "hiha"})
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"hihat_open", "hihat_closed", "hiha"}, groups[0].Stems)
	assert.Equal(t, "hiha", groups[0].Prefix)
	assert.Equal(t, []string{"kick"}, groups[1].Stems)
}

func TestPartition_ContinuesScanAfterRemoval(t *testing.T) {
	groups := Partition([]string{"bass_a", "bass_b", "bass_c", "lead"})
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"bass_a", "bass_b", "bass_c"}, groups[0].Stems)
	assert.Equal(t, "bass_", groups[0].Prefix)
}

func TestPartition_SeedOrderIsScanOrder(t *testing.T) {
	groups := Partition([]string{"zeta", "alpha_1", "zeta_2", "alpha_2"})
	require.Len(t, groups, 2)
	assert.Equal(t, "zeta", groups[0].Stems[0])
	assert.Equal(t, "alpha_1", groups[1].Stems[0])
}

func TestPartition_Empty(t *testing.T) {
	assert.Empty(t, Partition(nil))
	assert.Empty(t, DiscoverPatterns([]string{}))
}

func TestPartition_EveryStemExactlyOnce(t *testing.T) {
	inputs := [][]string{
		{"kick_01", "kick_02", "snare_01", "vocal_fx"},
		{"a", "b", "", "", "abcd", "ABCD", "abce"},
		{"Loop1", "loop2", "LOOP3", "loo", "pad", "pad_1", "pad_2"},
		{"x1", "x1", "x1"},
	}

	for i, stems := range inputs {
		t.Run(fmt.Sprintf("input %d", i), func(t *testing.T) {
			var got []string
			for _, g := range Partition(stems) {
				require.NotEmpty(t, g.Stems)
				got = append(got, g.Stems...)
			}
			want := append([]string(nil), stems...)
			sort.Strings(want)
			sort.Strings(got)
			assert.Equal(t, want, got)
		})
	}
}

func TestPartition_DoesNotModifyInput(t *testing.T) {
	stems := []string{"kick_01", "snare", "kick_02"}
	Partition(stems)
	assert.Equal(t, []string{"kick_01", "snare", "kick_02"}, stems)
}

func TestSelectPatterns_DropsEmptyAndDuplicatePrefixes(t *testing.T) {
	groups := []Group{
		{Stems: []string{""}, Prefix: ""},
		{Stems: []string{"Kick", "kick"}, Prefix: "Kick"},
		{Stems: []string{"KICK"}, Prefix: "KICK"},
		{Stems: []string{"snare"}, Prefix: "snare"},
	}

	assert.Equal(t, []Pattern{
		{Prefix: "Kick", Count: 2},
		{Prefix: "snare", Count: 1},
	}, SelectPatterns(groups))
}

func TestDiscoverPatterns_DuplicateStems(t *testing.T) {
	// Identical stems group together, and a short stem that repeats after its
	// group is gone is reported once.
	patterns := DiscoverPatterns([]string{"ab", "ab", "take", "take"})
	assert.Equal(t, []Pattern{
		{Prefix: "ab", Count: 1},
		{Prefix: "take", Count: 2},
	}, patterns)
}

func TestPattern_String(t *testing.T) {
	assert.Equal(t, "kick_0*", Pattern{Prefix: "kick_0", Count: 2}.String())
}
