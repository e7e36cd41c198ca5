package models

import (
	"testing"

	"card-shuffler-go/internal/game/common"

	"github.com/stretchr/testify/require"
)

func TestParseSeed(t *testing.T) {
	for in, want := range map[string]int32{
		"0":           0,
		"42":          42,
		" -7 ":        -7,
		"2147483647":  2147483647,
		"-2147483648": -2147483648,
	} {
		got, err := ParseSeed(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "abc", "1.5", "2147483648", "-2147483649"} {
		_, err := ParseSeed(bad)
		require.ErrorIs(t, err, ErrInvalidSeed, bad)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f)

	f, err = ParseFormat("TEXT")
	require.NoError(t, err)
	require.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestBuildDeck_Orders(t *testing.T) {
	_, resp, err := BuildDeck(DeckRequest{})
	require.NoError(t, err)
	require.Equal(t, OrderInitial, resp.Order)
	require.Nil(t, resp.Seed)
	require.Equal(t, common.DeckSize, resp.Count)
	require.Equal(t, common.NewDeck().Cards(), resp.Cards)

	_, resp, err = BuildDeck(DeckRequest{Order: OrderSorted})
	require.NoError(t, err)
	require.Equal(t, common.NewCard(common.Ace, common.Spades), resp.Cards[0])
	require.Equal(t, common.NewCard(common.Ace, common.Clubs), resp.Cards[1])

	_, _, err = BuildDeck(DeckRequest{Order: "backwards"})
	require.ErrorIs(t, err, ErrInvalidOrder)
}

func TestBuildDeck_SeededShuffleReplays(t *testing.T) {
	seed := int32(2024)
	d, resp, err := BuildDeck(DeckRequest{Order: OrderShuffled, Seed: &seed})
	require.NoError(t, err)
	require.NotNil(t, resp.Seed)
	require.Equal(t, seed, *resp.Seed)
	require.Equal(t, d.Cards(), resp.Cards)

	want := common.NewDeck()
	want.ShuffleWithSeed(seed)
	require.Equal(t, want.Cards(), resp.Cards)
}

func TestBuildDeck_FreshSeedIsReported(t *testing.T) {
	_, resp, err := BuildDeck(DeckRequest{Order: OrderShuffled})
	require.NoError(t, err)
	require.NotNil(t, resp.Seed)

	replay := common.NewDeck()
	replay.ShuffleWithSeed(*resp.Seed)
	require.Equal(t, replay.Cards(), resp.Cards)
}

func TestCompareCards(t *testing.T) {
	resp, err := CompareCards("AS", "Ace of Hearts")
	require.NoError(t, err)
	require.Equal(t, -1, resp.Result)
	require.False(t, resp.Equal)

	resp, err = CompareCards("kd", "King of Diamonds")
	require.NoError(t, err)
	require.Equal(t, 0, resp.Result)
	require.True(t, resp.Equal)

	_, err = CompareCards("ZZ", "AS")
	require.ErrorIs(t, err, ErrInvalidCard)

	_, err = CompareCards("", "AS")
	require.ErrorIs(t, err, ErrMissingCard)
}
