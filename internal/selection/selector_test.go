package selection

import (
	"fmt"
	"testing"

	"auction-dashboard/internal/dashboarderrors"
	"auction-dashboard/internal/models"

	"github.com/stretchr/testify/require"
)

func roster(ids ...int) []models.Auction {
	out := make([]models.Auction, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Auction{
			AuctionID:  id,
			Item:       &models.Item{Name: fmt.Sprintf("item-%d", id)},
			HighestBid: float64(id * 10),
			WinnerID:   models.NoWinner,
		})
	}
	return out
}

func TestSelect(t *testing.T) {
	t.Parallel()

	list := roster(3, 1, 7, 5)

	tests := []struct {
		name    string
		input   []models.Auction
		key     Key
		wantIDs []int
	}{
		{name: "all_keeps_order", input: list, key: All, wantIDs: []int{3, 1, 7, 5}},
		{name: "present_id", input: list, key: ByID(7), wantIDs: []int{7}},
		{name: "first_element", input: list, key: ByID(3), wantIDs: []int{3}},
		{name: "absent_id", input: list, key: ByID(42), wantIDs: []int{}},
		{name: "empty_list_all", input: []models.Auction{}, key: All, wantIDs: []int{}},
		{name: "empty_list_id", input: nil, key: ByID(1), wantIDs: []int{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Select(tc.input, tc.key)
			ids := make([]int, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.AuctionID)
			}
			require.Equal(t, tc.wantIDs, ids)
		})
	}

	t.Run("all_returns_same_backing_array", func(t *testing.T) {
		t.Parallel()
		got := Select(list, All)
		require.Len(t, got, len(list))
		require.Same(t, &list[0], &got[0])
	})

	t.Run("id_returns_the_matching_element", func(t *testing.T) {
		t.Parallel()
		got := Select(list, ByID(1))
		require.Equal(t, []models.Auction{list[1]}, got)
	})
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Key
		wantErr bool
	}{
		{raw: "all", want: All},
		{raw: " ALL ", want: All},
		{raw: "12", want: ByID(12)},
		{raw: "0", want: ByID(0)},
		{raw: "", wantErr: true},
		{raw: "twelve", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("raw_%q", tc.raw), func(t *testing.T) {
			t.Parallel()
			got, err := ParseKey(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, dashboarderrors.ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.want.String(), got.String())
		})
	}
}

func TestSelector_SurvivesPolls(t *testing.T) {
	t.Parallel()

	s := NewSelector()
	require.True(t, s.Key().IsAll())

	// tick 1
	first := roster(1, 2)
	s.Observe(first)
	s.Choose(ByID(2))
	require.Equal(t, []models.Auction{first[1]}, s.Apply(first))

	// tick 2: a new auction shows up in front, the selection follows the id
	second := roster(9, 1, 2)
	s.Observe(second)
	got := s.Apply(second)
	require.Len(t, got, 1)
	require.Equal(t, 2, got[0].AuctionID)

	opts := s.Options()
	require.Equal(t, []string{"all", "1", "2", "9"}, optionKeys(opts))
	require.True(t, opts[2].Selected)
	require.False(t, opts[0].Selected)

	// tick 3: the selected auction was dropped upstream
	third := roster(9, 1)
	s.Observe(third)
	require.Empty(t, s.Apply(third))
	require.Equal(t, ByID(2), s.Key(), "polls never change the selection")

	opts = s.Options()
	require.Equal(t, []string{"all", "1", "2", "9"}, optionKeys(opts))
	require.True(t, opts[2].Selected)
}

func optionKeys(opts []Option) []string {
	keys := make([]string, 0, len(opts))
	for _, o := range opts {
		keys = append(keys, o.Key)
	}
	return keys
}
