package validation

import (
	"strconv"
	"testing"

	"lotto/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantErr     error
		wantAmount  int64
		wantTickets int
	}{
		{name: "one ticket", input: "1000", wantAmount: 1000, wantTickets: 1},
		{name: "eight tickets", input: "8000", wantAmount: 8000, wantTickets: 8},
		{name: "surrounding spaces", input: "  14000 ", wantAmount: 14000, wantTickets: 14},
		{name: "empty", input: "", wantErr: entities.ErrAmountEmpty},
		{name: "blank", input: "   ", wantErr: entities.ErrAmountEmpty},
		{name: "words", input: "one thousand", wantErr: entities.ErrAmountNotNumber},
		{name: "trailing letter", input: "1000j", wantErr: entities.ErrAmountNotNumber},
		{name: "decimal", input: "1000.5", wantErr: entities.ErrAmountNotNumber},
		{name: "overflow", input: "99999999999999999999999", wantErr: entities.ErrAmountNotNumber},
		{name: "zero", input: "0", wantErr: entities.ErrAmountNegative},
		{name: "negative", input: "-1000", wantErr: entities.ErrAmountNegative},
		{name: "negative and off unit", input: "-1500", wantErr: entities.ErrAmountNegative},
		{name: "not a multiple of 1000", input: "10500", wantErr: entities.ErrAmountInvalidUnit},
		{name: "below unit", input: "999", wantErr: entities.ErrAmountInvalidUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			amount, err := ValidateAmount(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, amount.Value())
			assert.Equal(t, tt.wantTickets, amount.TicketCount())
		})
	}
}

func TestValidateAmount_AnyMultipleOfUnit(t *testing.T) {
	t.Parallel()

	for tickets := int64(1); tickets <= 200; tickets++ {
		amount, err := ValidateAmount(strconv.FormatInt(tickets*entities.TicketPrice, 10))
		require.NoError(t, err)
		assert.Equal(t, int(tickets), amount.TicketCount())
	}
}

func TestValidateWinningNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr error
	}{
		{name: "valid", input: "1,2,3,4,5,6", want: []int{1, 2, 3, 4, 5, 6}},
		{name: "valid with spaces and unsorted", input: " 45, 3 ,17,8,  1,22", want: []int{1, 3, 8, 17, 22, 45}},
		{name: "empty", input: "", wantErr: entities.ErrWinningEmpty},
		{name: "blank", input: "  ", wantErr: entities.ErrWinningEmpty},
		{name: "word token", input: "1,2,three,4,5,6", wantErr: entities.ErrWinningNotNumber},
		{name: "empty token", input: "1,2,,4,5,6", wantErr: entities.ErrWinningNotNumber},
		{name: "wrong delimiter", input: "1 2 3 4 5 6", wantErr: entities.ErrWinningNotNumber},
		{name: "duplicate", input: "1,2,3,3,4,5", wantErr: entities.ErrWinningDuplicate},
		{name: "five numbers", input: "1,2,3,4,5", wantErr: entities.ErrWinningInvalidCount},
		{name: "seven numbers", input: "1,2,3,4,5,6,7", wantErr: entities.ErrWinningInvalidCount},
		{name: "zero", input: "0,1,2,3,4,5", wantErr: entities.ErrWinningOutOfRange},
		{name: "above max", input: "1,2,3,4,5,46", wantErr: entities.ErrWinningOutOfRange},
		{name: "not-number wins over duplicate", input: "1,1,x,4,5,6", wantErr: entities.ErrWinningNotNumber},
		{name: "duplicate wins over count", input: "1,1,2", wantErr: entities.ErrWinningDuplicate},
		{name: "count wins over range", input: "1,2,3,4,5,99,100", wantErr: entities.ErrWinningInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set, err := ValidateWinningNumbers(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, set.Numbers())
		})
	}
}

func TestValidateBonusNumber(t *testing.T) {
	t.Parallel()

	winning, err := ValidateWinningNumbers("1,2,3,4,5,6")
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "valid", input: "7", want: 7},
		{name: "valid max", input: " 45 ", want: 45},
		{name: "empty", input: "", wantErr: entities.ErrBonusEmpty},
		{name: "not a number", input: "seven", wantErr: entities.ErrBonusNotNumber},
		{name: "zero", input: "0", wantErr: entities.ErrBonusOutOfRange},
		{name: "46", input: "46", wantErr: entities.ErrBonusOutOfRange},
		{name: "duplicate of winning", input: "3", wantErr: entities.ErrBonusDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bonus, err := ValidateBonusNumber(tt.input, winning)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, bonus.Int())
		})
	}
}
