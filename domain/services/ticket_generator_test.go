package services

import (
	"errors"
	"testing"

	"lotto/domain/entities"
	"lotto/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateTickets_UsesSourceAndSorts(t *testing.T) {
	t.Parallel()

	source := testhelpers.NewSequenceRandomSource(
		[]int{43, 8, 42, 21, 41, 23},
		[]int{1, 2, 3, 4, 5, 6},
	)

	tickets, err := GenerateTickets(2, source)

	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, []int{8, 21, 23, 41, 42, 43}, tickets[0].Numbers().Numbers())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, tickets[1].Numbers().Numbers())
	assert.Equal(t, 2, source.Calls())
}

func TestGenerateTickets_RequestsSixFromFullRange(t *testing.T) {
	t.Parallel()

	source := new(testhelpers.MockRandomSource)
	source.On("PickUniqueNumbersInRange", 1, 45, 6).Return([]int{10, 20, 30, 40, 44, 45}, nil).Times(3)

	tickets, err := GenerateTickets(3, source)

	require.NoError(t, err)
	assert.Len(t, tickets, 3)
	source.AssertExpectations(t)
}

func TestGenerateTickets_ZeroCount(t *testing.T) {
	t.Parallel()

	source := new(testhelpers.MockRandomSource)

	tickets, err := GenerateTickets(0, source)

	require.NoError(t, err)
	assert.Empty(t, tickets)
	source.AssertNotCalled(t, "PickUniqueNumbersInRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateTickets_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		count       int
		setupSource func(*testhelpers.MockRandomSource)
		errContains string
		wantErr     error
	}{
		{
			name:        "negative count",
			count:       -1,
			setupSource: func(*testhelpers.MockRandomSource) {},
			errContains: "must not be negative",
		},
		{
			name:  "source failure",
			count: 1,
			setupSource: func(m *testhelpers.MockRandomSource) {
				m.On("PickUniqueNumbersInRange", 1, 45, 6).Return(nil, errors.New("entropy exhausted"))
			},
			errContains: "entropy exhausted",
		},
		{
			name:  "source returns duplicates",
			count: 1,
			setupSource: func(m *testhelpers.MockRandomSource) {
				m.On("PickUniqueNumbersInRange", 1, 45, 6).Return([]int{1, 1, 2, 3, 4, 5}, nil)
			},
			wantErr: entities.ErrNumberSetDuplicate,
		},
		{
			name:  "source returns out of range",
			count: 1,
			setupSource: func(m *testhelpers.MockRandomSource) {
				m.On("PickUniqueNumbersInRange", 1, 45, 6).Return([]int{1, 2, 3, 4, 5, 50}, nil)
			},
			wantErr: entities.ErrNumberOutOfRange,
		},
		{
			name:  "source returns too few",
			count: 1,
			setupSource: func(m *testhelpers.MockRandomSource) {
				m.On("PickUniqueNumbersInRange", 1, 45, 6).Return([]int{1, 2, 3}, nil)
			},
			wantErr: entities.ErrNumberSetSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			source := new(testhelpers.MockRandomSource)
			tt.setupSource(source)

			tickets, err := GenerateTickets(tt.count, source)

			require.Error(t, err)
			assert.Nil(t, tickets)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateTickets_NilSource(t *testing.T) {
	t.Parallel()

	_, err := GenerateTickets(1, nil)
	assert.Error(t, err)
}
