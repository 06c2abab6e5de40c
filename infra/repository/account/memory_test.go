package account

import (
	"context"
	"sync"
	"testing"

	domainaccount "github.com/amirasaad/pinbank/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(t *testing.T, owner string) domainaccount.Account {
	t.Helper()
	acc, err := domainaccount.New().WithOwnerName(owner).WithPinCode("1234").Build()
	require.NoError(t, err)
	return acc
}

func TestMemoryRepository_SaveAndFind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := NewMemory()

	saved, err := r.Save(ctx, newAccount(t, "Ann"))
	require.NoError(t, err)
	assert.Positive(t, saved.Number)
	assert.LessOrEqual(t, saved.Number, int64(DefaultMaxNumber))
	assert.False(t, saved.CreatedAt.IsZero())

	found, err := r.FindByNumber(ctx, saved.Number)
	require.NoError(t, err)
	assert.Equal(t, saved, found)

	_, err = r.FindByNumber(ctx, saved.Number+1)
	assert.ErrorIs(t, err, domainaccount.ErrAccountNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := NewMemory()

	saved, err := r.Save(ctx, newAccount(t, "Ann"))
	require.NoError(t, err)

	saved.Balance = decimal.NewFromInt(100)
	found, err := r.FindByNumber(ctx, saved.Number)
	require.NoError(t, err)
	assert.True(t, found.Balance.IsZero(), "mutating a returned value must not touch the store")
}

func TestMemoryRepository_RetriesOnCollision(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	candidates := []int64{4, 4, 4, 6}
	var i int
	r := NewMemory(WithRandom(func(int64) int64 {
		c := candidates[i%len(candidates)]
		i++
		return c
	}))

	first, err := r.Save(ctx, newAccount(t, "Ann"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), first.Number)

	second, err := r.Save(ctx, newAccount(t, "Bob"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), second.Number)
}

func TestMemoryRepository_FallsBackToScan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := NewMemory(
		WithNumberSpace(3),
		WithMaxAttempts(2),
		WithRandom(func(int64) int64 { return 0 }),
	)

	var numbers []int64
	for _, owner := range []string{"Ann", "Bob", "Cid"} {
		saved, err := r.Save(ctx, newAccount(t, owner))
		require.NoError(t, err)
		numbers = append(numbers, saved.Number)
	}
	assert.ElementsMatch(t, []int64{1, 2, 3}, numbers)

	_, err := r.Save(ctx, newAccount(t, "Dee"))
	assert.ErrorIs(t, err, domainaccount.ErrNumberSpaceExhausted)
}

func TestMemoryRepository_GetAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := NewMemory()

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	for _, owner := range []string{"Ann", "Bob", "Cid"} {
		_, err := r.Save(ctx, newAccount(t, owner))
		require.NoError(t, err)
	}
	all, err = r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	owners := []string{all[0].OwnerName, all[1].OwnerName, all[2].OwnerName}
	assert.ElementsMatch(t, []string{"Ann", "Bob", "Cid"}, owners)
}

func TestMemoryRepository_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := NewMemory()

	saved, err := r.Save(ctx, newAccount(t, "Ann"))
	require.NoError(t, err)

	saved.Balance = decimal.RequireFromString("12.00")
	updated, err := r.Update(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.CreatedAt, updated.CreatedAt)

	found, err := r.FindByNumber(ctx, saved.Number)
	require.NoError(t, err)
	assert.True(t, found.Balance.Equal(decimal.NewFromInt(12)))

	missing := saved
	missing.Number = saved.Number + 1
	_, err = r.Update(ctx, missing)
	assert.ErrorIs(t, err, domainaccount.ErrAccountNotFound)

	require.NoError(t, r.Delete(ctx, saved.Number))
	_, err = r.FindByNumber(ctx, saved.Number)
	assert.ErrorIs(t, err, domainaccount.ErrAccountNotFound)
	assert.ErrorIs(t, r.Delete(ctx, saved.Number), domainaccount.ErrAccountNotFound)
}

func TestMemoryRepository_UpdateManyIsAllOrNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := NewMemory()

	a, err := r.Save(ctx, newAccount(t, "Ann"))
	require.NoError(t, err)
	b, err := r.Save(ctx, newAccount(t, "Bob"))
	require.NoError(t, err)

	a.Balance = decimal.NewFromInt(1)
	b.Balance = decimal.NewFromInt(2)
	saved, err := r.UpdateMany(ctx, a, b)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, a.Number, saved[0].Number)
	assert.Equal(t, b.Number, saved[1].Number)

	a.Balance = decimal.NewFromInt(100)
	ghost := b
	ghost.Number = 0
	_, err = r.UpdateMany(ctx, a, ghost)
	require.ErrorIs(t, err, domainaccount.ErrAccountNotFound)

	found, err := r.FindByNumber(ctx, a.Number)
	require.NoError(t, err)
	assert.True(t, found.Balance.Equal(decimal.NewFromInt(1)), "no record may change when one is missing")
}

func TestMemoryRepository_ConcurrentSavesGetUniqueNumbers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := NewMemory()
	const n = 200

	acc := newAccount(t, "Ann")
	var wg sync.WaitGroup
	numbers := make(chan int64, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			saved, err := r.Save(ctx, acc)
			if err == nil {
				numbers <- saved.Number
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[int64]struct{}, n)
	for number := range numbers {
		_, dup := seen[number]
		assert.False(t, dup, "number %d assigned twice", number)
		seen[number] = struct{}{}
	}
	assert.Len(t, seen, n)
}
