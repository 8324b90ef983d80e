package frozen_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/magicsquare/frozen"
)

// ParamsSuite exercises the first-call-wins singleton rule.
type ParamsSuite struct {
	suite.Suite
}

func (s *ParamsSuite) SetupTest() {
	frozen.ResetForTesting()
}

func (s *ParamsSuite) TearDownTest() {
	frozen.ResetForTesting()
}

// TestFirstCallWins verifies later arguments are discarded.
func (s *ParamsSuite) TestFirstCallWins() {
	p1 := frozen.Instance(map[string]any{"side": 5})
	p2 := frozen.Instance(map[string]any{"side": 7, "base": 1})

	require.Same(s.T(), p1, p2)
	side, ok := p2.Field("side")
	require.True(s.T(), ok)
	n, _ := side.Int()
	require.Equal(s.T(), 5, n)
	_, ok = p2.Field("base")
	require.False(s.T(), ok, "second call's data must be discarded")
}

// TestNilData verifies a nil first call still initializes the singleton.
func (s *ParamsSuite) TestNilData() {
	p := frozen.Instance(nil)
	require.True(s.T(), p.Value().IsNil())
	require.Same(s.T(), p, frozen.Instance(map[string]any{"a": 1}))
}

// TestReset verifies ResetForTesting allows a fresh initialization.
func (s *ParamsSuite) TestReset() {
	p1 := frozen.Instance(map[string]any{"a": 1})
	frozen.ResetForTesting()
	p2 := frozen.Instance(map[string]any{"a": 2})
	require.NotSame(s.T(), p1, p2)

	v, err := p2.Get("a")
	require.NoError(s.T(), err)
	n, _ := v.Int()
	require.Equal(s.T(), 2, n)
}

func TestParamsSuite(t *testing.T) {
	suite.Run(t, new(ParamsSuite))
}

// TestRegistry_Concurrent verifies concurrent first calls agree on one instance.
func TestRegistry_Concurrent(t *testing.T) {
	var reg frozen.Registry
	require.False(t, reg.Initialized())

	const workers = 16
	got := make([]*frozen.Params, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = reg.Instance(map[string]any{"worker": i})
		}(i)
	}
	wg.Wait()

	require.True(t, reg.Initialized())
	for _, p := range got {
		require.Same(t, got[0], p)
	}
}

// TestRegistry_InitializedDuringInstance verifies Initialized can be polled
// while the first Instance call is in flight, and flips only once a Params exists.
func TestRegistry_InitializedDuringInstance(t *testing.T) {
	var reg frozen.Registry
	done := make(chan *frozen.Params)
	go func() { done <- reg.Instance(map[string]any{"side": 3}) }()

	var p *frozen.Params
	for p == nil {
		select {
		case p = <-done:
		default:
			_ = reg.Initialized()
		}
	}
	require.True(t, reg.Initialized())
	require.Same(t, p, reg.Instance(nil))
}

// TestRegistry_LogsDiscard verifies the optional logger records discarded arguments.
func TestRegistry_LogsDiscard(t *testing.T) {
	var buf bytes.Buffer
	reg := frozen.Registry{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	reg.Instance(map[string]any{"a": 1})
	require.Empty(t, buf.String())
	reg.Instance(map[string]any{"a": 2})
	require.Contains(t, buf.String(), "arguments discarded")
}

// TestParams_Forwarding verifies Params forwards Lookup and String to its data.
func TestParams_Forwarding(t *testing.T) {
	var reg frozen.Registry
	p := reg.Instance(map[string]any{"import": "x"})

	_, ok := p.Lookup("import_")
	require.True(t, ok)
	n, ok := p.Lookup("len")
	require.True(t, ok)
	require.Equal(t, 1, n)
	require.Equal(t, "map[import_:x]", p.String())
}

// TestParseAndLoad covers YAML, JSON, empty and malformed documents.
func TestParseAndLoad(t *testing.T) {
	v, err := frozen.Parse([]byte("side: 5\nbase: 41\nfor: [1, 2]\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"base", "for_", "side"}, v.Keys())

	v, err = frozen.Parse([]byte(`{"square": [[8, 1, 6], [3, 5, 7], [4, 9, 2]]}`))
	require.NoError(t, err)
	cell, err := v.Get("square", "2", "1")
	require.NoError(t, err)
	n, _ := cell.Int()
	require.Equal(t, 9, n)

	v, err = frozen.Parse(nil)
	require.NoError(t, err)
	require.True(t, v.IsNil())

	_, err = frozen.Parse([]byte("a: [1, 2\n"))
	require.ErrorIs(t, err, frozen.ErrParse)

	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: fixture\n"), 0o644))
	v, err = frozen.Load(path)
	require.NoError(t, err)
	name, _ := v.Field("name")
	s, _ := name.Text()
	require.Equal(t, "fixture", s)

	_, err = frozen.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
