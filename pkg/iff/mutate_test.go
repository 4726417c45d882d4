package iff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iffkit/iffkit/internal/testutil"
	"github.com/iffkit/iffkit/pkg/iff"
)

func TestReplaceAllGrowsPayload(t *testing.T) {
	leaf := testutil.Chunk("NAME", []byte("shared_armor_vest\x00"))
	src := testutil.Form("OUTR", testutil.Form("INNR", leaf))

	out, count, err := iff.ReplaceAll(src, []iff.Rule{
		{Old: []byte("armor_vest"), New: []byte("armor_vest_mk2")},
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// Reparse and verify every ancestor size matches an independent
	// computation over the new content.
	tree, err := iff.Parse(out)
	require.NoError(t, err)
	inner := tree.FindForm("INNR")
	require.NotNil(t, inner)
	require.Equal(t, []byte("shared_armor_vest_mk2\x00"), inner.Children[0].Data)

	err = tree.Walk(func(n *iff.Node) error {
		if n.IsForm() {
			want := 4
			for _, c := range n.Children {
				want += c.SerializedSize()
			}
			require.Equal(t, want, int(n.SrcSize), "form %s header size", n.FormName)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestReplaceAllShrinksPayload(t *testing.T) {
	leaf := testutil.Chunk("NAME", []byte("a_very_long_name"))
	src := testutil.Form("OUTR", leaf)

	out, count, err := iff.ReplaceAll(src, []iff.Rule{
		{Old: []byte("a_very_long_name"), New: []byte("short")},
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	tree, err := iff.Parse(out)
	require.NoError(t, err)
	require.Equal(t, []byte("short"), tree.Children[0].Data)
}

func TestReplaceRepeatsWithinLeaf(t *testing.T) {
	leaf := testutil.Chunk("DATA", []byte("ab ab ab"))
	src := testutil.Form("OUTR", leaf)

	out, count, err := iff.ReplaceAll(src, []iff.Rule{{Old: []byte("ab"), New: []byte("xyz")}})
	require.NoError(t, err)
	require.Equal(t, 3, count)

	tree, err := iff.Parse(out)
	require.NoError(t, err)
	require.Equal(t, []byte("xyz xyz xyz"), tree.Children[0].Data)
}

func TestReplaceRescansUntilExhausted(t *testing.T) {
	// Each "aa" -> "a" pass halves the run and leaves a fresh occurrence;
	// the rule must keep running until none remains.
	leaf := testutil.Chunk("DATA", []byte("aaaa"))
	src := testutil.Form("OUTR", leaf)

	out, count, err := iff.ReplaceAll(src, []iff.Rule{{Old: []byte("aa"), New: []byte("a")}})
	require.NoError(t, err)
	require.Equal(t, 3, count)

	tree, err := iff.Parse(out)
	require.NoError(t, err)
	require.Equal(t, []byte("a"), tree.Children[0].Data)
}

func TestReplaceSelfContainingRuleTerminates(t *testing.T) {
	// "a" -> "aa" reintroduces its own pattern; the rule gets exactly one
	// left-to-right pass.
	leaf := testutil.Chunk("DATA", []byte("aa"))
	src := testutil.Form("OUTR", leaf)

	out, count, err := iff.ReplaceAll(src, []iff.Rule{{Old: []byte("a"), New: []byte("aa")}})
	require.NoError(t, err)
	require.Equal(t, 2, count)

	tree, err := iff.Parse(out)
	require.NoError(t, err)
	require.Equal(t, []byte("aaaa"), tree.Children[0].Data)
}

func TestReplaceNeverCrossesLeafBoundaries(t *testing.T) {
	// "spl" ends one leaf and "it" begins the next; the rule must not see
	// the concatenation.
	a := testutil.Chunk("AAAA", []byte("spl"))
	b := testutil.Chunk("BBBB", []byte("it"))
	src := testutil.Form("OUTR", a, b)

	out, count, err := iff.ReplaceAll(src, []iff.Rule{{Old: []byte("split"), New: []byte("x")}})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, src, out)
}

func TestReplaceRulesApplyInOrder(t *testing.T) {
	leaf := testutil.Chunk("DATA", []byte("one"))
	src := testutil.Form("OUTR", leaf)

	out, count, err := iff.ReplaceAll(src, []iff.Rule{
		{Old: []byte("one"), New: []byte("two")},
		{Old: []byte("two"), New: []byte("three")},
	})
	require.NoError(t, err)
	require.Equal(t, 2, count)

	tree, err := iff.Parse(out)
	require.NoError(t, err)
	require.Equal(t, []byte("three"), tree.Children[0].Data)
}

func TestReplaceIgnoresEmptyRule(t *testing.T) {
	src := testutil.Form("OUTR", testutil.Chunk("DATA", []byte("abc")))
	out, count, err := iff.ReplaceAll(src, []iff.Rule{{Old: nil, New: []byte("x")}})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, src, out)
}

func TestReplaceAllBadRoot(t *testing.T) {
	_, _, err := iff.ReplaceAll([]byte("not an iff buffer"), []iff.Rule{{Old: []byte("a"), New: []byte("b")}})
	require.Error(t, err)
}
