package turing_test

import (
	"context"
	"testing"

	"github.com/asphodex/go-turing-reverse/examples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, seq func(func([]rune) bool)) [][]rune {
	t.Helper()
	var out [][]rune
	seq(func(v []rune) bool {
		out = append(out, v)
		return true
	})
	return out
}

func TestAlternating_Parse(t *testing.T) {
	t.Parallel()

	m, err := examples.Alternating()
	require.NoError(t, err)

	ctx := context.Background()
	tt := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"0", true},
		{"1", true},
		{"01", true},
		{"10", true},
		{"010", true},
		{"00", false},
		{"11", false},
		{"011", false},
		{"0101", true},
		{"0110", false},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := m.Parse(ctx, []rune(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		})
	}
}

func TestAlternating_Generate(t *testing.T) {
	t.Parallel()

	m, err := examples.Alternating()
	require.NoError(t, err)

	got := collect(t, m.Generate(context.Background(), 4))

	want := [][]rune{
		{},
		{'0'}, {'1'},
		{'0', '1'}, {'1', '0'},
		{'0', '1', '0'}, {'1', '0', '1'},
		{'0', '1', '0', '1'}, {'1', '0', '1', '0'},
	}
	assert.ElementsMatch(t, want, got)
}

func TestPalindrome_Parse(t *testing.T) {
	t.Parallel()

	m, err := examples.Palindrome()
	require.NoError(t, err)

	ctx := context.Background()
	tt := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"0", true},
		{"1", true},
		{"00", true},
		{"11", true},
		{"01", false},
		{"10", false},
		{"010", true},
		{"101", true},
		{"011", false},
		{"00100", true},
		{"00110", false},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := m.Parse(ctx, []rune(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		})
	}
}

func TestPalindrome_Generate(t *testing.T) {
	t.Parallel()

	m, err := examples.Palindrome()
	require.NoError(t, err)

	got := collect(t, m.Generate(context.Background(), 3))

	want := [][]rune{
		{},
		{'0'}, {'1'},
		{'0', '0'}, {'1', '1'},
		{'0', '0', '0'}, {'0', '1', '0'}, {'1', '0', '1'}, {'1', '1', '1'},
	}
	assert.ElementsMatch(t, want, got)
}

func TestBach_Parse(t *testing.T) {
	t.Parallel()

	m, err := examples.Bach()
	require.NoError(t, err)

	ctx := context.Background()
	tt := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"ABC", true},
		{"BAC", true},
		{"CBA", true},
		{"AAB", false},
		{"ABCABC", true},
		{"ABCABD", false}, // unreachable with this alphabet, exercised via Parse's rejection
		{"AABBCC", true},
		{"AABBC", false},
		{"ABCAB", false},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := m.Parse(ctx, []rune(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		})
	}
}

func TestBach_GenerateOnlyYieldsMultiplesOfThree(t *testing.T) {
	t.Parallel()

	m, err := examples.Bach()
	require.NoError(t, err)

	got := collect(t, m.Generate(context.Background(), 6))
	require.NotEmpty(t, got)

	for _, seq := range got {
		assert.Zero(t, len(seq)%3, "sequence %q has length not a multiple of 3", string(seq))

		var a, b, c int
		for _, r := range seq {
			switch r {
			case 'A':
				a++
			case 'B':
				b++
			case 'C':
				c++
			}
		}
		assert.Equal(t, a, b, "unequal A/B counts in %q", string(seq))
		assert.Equal(t, b, c, "unequal B/C counts in %q", string(seq))
	}
}

func TestPassword_GenerateFindsExactSecret(t *testing.T) {
	t.Parallel()

	const secret = "Tr0ub4dor"
	m, err := examples.Password(secret)
	require.NoError(t, err)

	var found []rune
	for v := range m.Generate(context.Background(), len(secret)) {
		found = v
		break
	}
	require.Equal(t, secret, string(found))
}

func TestPassword_ParseOnlyAcceptsTheSecret(t *testing.T) {
	t.Parallel()

	const secret = "hunter2"
	m, err := examples.Password(secret)
	require.NoError(t, err)

	ctx := context.Background()
	ok, err := m.Parse(ctx, []rune(secret))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Parse(ctx, []rune("hunter3"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = m.Parse(ctx, []rune("hunter"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMachine_GenerateRespectsContextCancellation(t *testing.T) {
	t.Parallel()

	m, err := examples.Alternating()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := collect(t, m.Generate(ctx, 4))
	assert.Empty(t, got)
}
