package statics

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/lacuna-lang/lacuna/pkg/syntax"
	"github.com/lacuna-lang/lacuna/pkg/typ"
)

func buildFactorial() syntax.Exp {
	b := &tb{}
	root, _, _ := factorial(b)
	return root
}

func TestSessionReplaysEqualTrees(t *testing.T) {
	s, err := NewSession(8)
	require.NoError(t, err)

	first := buildFactorial()
	second := buildFactorial()
	require.True(t, syntax.Equal(first, second))

	got1 := s.Compute(first)
	got2 := s.Compute(second)
	require.Equal(t, 1, s.Len())

	// replay or recompute, the caller cannot tell the difference
	require.Equal(t, got1, got2)
	require.Equal(t, Check(first), got1)
}

func TestSessionDistinguishesTrees(t *testing.T) {
	s, err := NewSession(8)
	require.NoError(t, err)

	b := &tb{}
	small := b.intLit(1)
	big := buildFactorial()

	smallInfos := s.Compute(small)
	bigInfos := s.Compute(big)
	require.Equal(t, 2, s.Len())
	require.Len(t, smallInfos, 1)
	require.Greater(t, len(bigInfos), 1)
}

func TestSessionEvictsOldest(t *testing.T) {
	s, err := NewSession(2)
	require.NoError(t, err)

	roots := []syntax.Exp{}
	for i := int64(1); i <= 3; i++ {
		b := &tb{}
		roots = append(roots, b.intLit(i))
	}
	for _, root := range roots {
		s.Compute(root)
	}
	require.Equal(t, 2, s.Len())

	// an evicted tree is recomputed, not lost
	again := s.Compute(roots[0])
	ty, err := again.FixedType(syntax.PrimaryID(roots[0]))
	require.NoError(t, err)
	require.True(t, ty.Eq(typ.Int))
	require.Equal(t, 2, s.Len())
}

func TestSessionDefaultSize(t *testing.T) {
	s, err := NewSession(0)
	require.NoError(t, err)
	require.NotNil(t, s)

	s, err = NewSession(-5)
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestSessionPurge(t *testing.T) {
	s, err := NewSession(8)
	require.NoError(t, err)
	s.Compute(buildFactorial())
	require.Equal(t, 1, s.Len())
	s.Purge()
	require.Equal(t, 0, s.Len())
}

func TestSessionContext(t *testing.T) {
	build := func() syntax.Exp {
		b := &tb{}
		return b.varRef("nan")
	}

	builtin, err := NewSession(4)
	require.NoError(t, err)
	infos := builtin.Compute(build())
	require.Empty(t, infos.ErrorIDs())

	bare, err := NewSessionInCtx(typ.Ctx{}, 4)
	require.NoError(t, err)
	infos = bare.Compute(build())
	require.Len(t, infos.ErrorIDs(), 1)
}

func TestSessionConcurrentUse(t *testing.T) {
	s, err := NewSession(16)
	require.NoError(t, err)
	want := Check(buildFactorial())

	var eg errgroup.Group
	for i := 0; i < 8; i++ {
		eg.Go(func() error {
			got := s.Compute(buildFactorial())
			if len(got) != len(want) {
				return errors.Errorf("got %d records, want %d", len(got), len(want))
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	require.Equal(t, 1, s.Len())
}
