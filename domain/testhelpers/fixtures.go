package testhelpers

// ReferenceDraws are the eight tickets of the reference scenario: 8,000 spent,
// winning numbers 1,2,3,4,5,6 with bonus 7, exactly one 3-match ticket (the last one).
var ReferenceDraws = [][]int{
	{8, 21, 23, 41, 42, 43},
	{3, 5, 11, 16, 32, 38},
	{7, 11, 16, 35, 36, 44},
	{1, 8, 11, 31, 41, 42},
	{13, 14, 16, 38, 42, 45},
	{7, 11, 30, 40, 42, 43},
	{2, 13, 22, 32, 38, 45},
	{1, 3, 5, 14, 22, 45},
}
