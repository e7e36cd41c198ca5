package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"testing"

	"card-shuffler-go/internal/game/common"
	"card-shuffler-go/internal/models"

	"github.com/stretchr/testify/require"
)

func clearShufflerEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SHUFFLER_SEED", "SHUFFLER_SORT", "SHUFFLER_FORMAT", "SHUFFLER_SHOW_SEED", "SHUFFLER_TRACE"} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRoot_DefaultPrintsShuffledDeck(t *testing.T) {
	clearShufflerEnv(t)
	out, _, err := execute(t)
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, common.DeckSize)
	seen := map[string]bool{}
	for _, l := range got {
		_, err := common.ParseCard(l)
		require.NoError(t, err, l)
		require.False(t, seen[l], "duplicate %q", l)
		seen[l] = true
	}
}

func TestRoot_SeedReplaysGolden(t *testing.T) {
	clearShufflerEnv(t)
	out, _, err := execute(t, "--seed", "2147483647")
	require.NoError(t, err)

	got := lines(out)
	require.Equal(t, "Queen of Diamonds", got[0])
	require.Equal(t, "Four of Hearts", got[1])
	require.Equal(t, "Two of Diamonds", got[common.DeckSize-1])
}

func TestRoot_ShowSeedRoundTrips(t *testing.T) {
	clearShufflerEnv(t)
	out, errOut, err := execute(t, "--show-seed")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(errOut, "seed: "), errOut)

	seed := strings.TrimSpace(strings.TrimPrefix(errOut, "seed: "))
	_, err = strconv.ParseInt(seed, 10, 32)
	require.NoError(t, err)

	replay, _, err := execute(t, "--seed", seed)
	require.NoError(t, err)
	require.Equal(t, out, replay)
}

func TestRoot_Sort(t *testing.T) {
	clearShufflerEnv(t)
	out, errOut, err := execute(t, "--sort", "--show-seed")
	require.NoError(t, err)
	require.Empty(t, errOut)

	d := common.NewDeck()
	d.Sort()
	require.Equal(t, d.String()+"\n", out)
}

func TestRoot_JSON(t *testing.T) {
	clearShufflerEnv(t)
	out, _, err := execute(t, "--seed", "-9", "--format", "json")
	require.NoError(t, err)

	var resp models.DeckResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, models.OrderShuffled, resp.Order)
	require.Equal(t, int32(-9), *resp.Seed)

	d := common.NewDeck()
	d.ShuffleWithSeed(-9)
	require.Equal(t, d.Cards(), resp.Cards)
}

func TestRoot_EnvBinding(t *testing.T) {
	clearShufflerEnv(t)
	t.Setenv("SHUFFLER_SEED", "42")
	t.Setenv("SHUFFLER_SHOW_SEED", "true")
	out, errOut, err := execute(t)
	require.NoError(t, err)
	require.Equal(t, "seed: 42\n", errOut)

	d := common.NewDeck()
	d.ShuffleWithSeed(42)
	require.Equal(t, d.String()+"\n", out)

	// flags beat the environment
	out, _, err = execute(t, "--seed", "43")
	require.NoError(t, err)
	d = common.NewDeck()
	d.ShuffleWithSeed(43)
	require.Equal(t, d.String()+"\n", out)
}

func TestRoot_TraceToStderr(t *testing.T) {
	clearShufflerEnv(t)
	out, errOut, err := execute(t, "--seed", "1", "--trace", "stdout")
	require.NoError(t, err)
	require.Len(t, lines(out), common.DeckSize)
	require.Contains(t, errOut, "shuffler.run")
	require.Contains(t, errOut, "deck.seed")
}

func TestRoot_Errors(t *testing.T) {
	clearShufflerEnv(t)

	_, _, err := execute(t, "--seed", "99999999999")
	require.ErrorIs(t, err, models.ErrInvalidSeed)

	_, _, err = execute(t, "--format", "yaml")
	require.ErrorIs(t, err, models.ErrInvalidFormat)

	_, _, err = execute(t, "--sort", "--seed", "3")
	require.ErrorIs(t, err, errSeedWithSort)

	_, _, err = execute(t, "--trace", "jaeger")
	require.ErrorContains(t, err, "invalid --trace")

	_, _, err = execute(t, "extra-arg")
	require.Error(t, err)
}

func TestFlushTraces_LogsShutdownError(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	flushTraces(context.Background(), func(context.Context) error { return nil })
	require.Empty(t, buf.String())

	flushTraces(context.Background(), func(context.Context) error { return errors.New("exporter closed") })
	require.Contains(t, buf.String(), "shuffler: tracing shutdown: exporter closed")
}
