package purge_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/purge"
	"github.com/jmgilman/go/purge/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// newMock returns a ProviderMock whose methods all return err.
func newMock(err error) *mocks.ProviderMock {
	return &mocks.ProviderMock{
		InvalidateByTagFunc: func(ctx context.Context, tags []string) error {
			return err
		},
		InvalidateBySrcImageFunc: func(ctx context.Context, srcs []string) error {
			return err
		},
		DangerouslyDeleteByTagFunc: func(ctx context.Context, tags []string, opts *purge.DeleteOptions) error {
			return err
		},
		DangerouslyDeleteBySrcImageFunc: func(ctx context.Context, srcs []string, opts *purge.DeleteOptions) error {
			return err
		},
	}
}

func totalCalls(m *mocks.ProviderMock) int {
	return len(m.InvalidateByTagCalls()) +
		len(m.InvalidateBySrcImageCalls()) +
		len(m.DangerouslyDeleteByTagCalls()) +
		len(m.DangerouslyDeleteBySrcImageCalls())
}

func TestNewClient(t *testing.T) {
	t.Run("defaults to context resolver", func(t *testing.T) {
		mock := newMock(nil)
		client, err := purge.NewClient()
		require.NoError(t, err)

		ctx := purge.NewContext(context.Background(), mock)
		assert.Same(t, mock, client.Provider(ctx))
		assert.Nil(t, client.Provider(context.Background()))
	})

	t.Run("fixed provider ignores context", func(t *testing.T) {
		fixed := newMock(nil)
		other := newMock(nil)
		client, err := purge.NewClient(purge.WithProvider(fixed))
		require.NoError(t, err)

		ctx := purge.NewContext(context.Background(), other)
		assert.Same(t, fixed, client.Provider(ctx))
	})

	t.Run("custom resolver", func(t *testing.T) {
		mock := newMock(nil)
		client, err := purge.NewClient(purge.WithResolver(func(context.Context) purge.Provider {
			return mock
		}))
		require.NoError(t, err)
		assert.Same(t, mock, client.Provider(context.Background()))
	})

	t.Run("fails with nil resolver", func(t *testing.T) {
		client, err := purge.NewClient(purge.WithResolver(nil))

		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})
}

func TestClient_NoProvider(t *testing.T) {
	opts := &purge.DeleteOptions{RevalidationDeadlineSeconds: 30}

	tests := []struct {
		name   string
		client func(t *testing.T) *purge.Client
	}{
		{
			name: "empty context",
			client: func(t *testing.T) *purge.Client {
				c, err := purge.NewClient()
				require.NoError(t, err)
				return c
			},
		},
		{
			name: "nil fixed provider",
			client: func(t *testing.T) *purge.Client {
				c, err := purge.NewClient(purge.WithProvider(nil))
				require.NoError(t, err)
				return c
			},
		},
		{
			name: "resolver returns nil",
			client: func(t *testing.T) *purge.Client {
				c, err := purge.NewClient(purge.WithResolver(func(context.Context) purge.Provider {
					return nil
				}))
				require.NoError(t, err)
				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := tt.client(t)
			ctx := context.Background()

			assert.NoError(t, client.InvalidateByTag(ctx, []string{"a"}))
			assert.NoError(t, client.InvalidateByTag(ctx, nil))
			assert.NoError(t, client.InvalidateBySrcImage(ctx, []string{"/a.png", "/b.png"}))
			assert.NoError(t, client.DangerouslyDeleteByTag(ctx, []string{"a"}, nil))
			assert.NoError(t, client.DangerouslyDeleteByTag(ctx, []string{"a"}, opts))
			assert.NoError(t, client.DangerouslyDeleteBySrcImage(ctx, []string{"/a.png"}, opts))
		})
	}
}

func TestClient_NoProviderDoesNotTouchInputs(t *testing.T) {
	client, err := purge.NewClient()
	require.NoError(t, err)

	tags := []string{" b ", "a", "a"}
	opts := &purge.DeleteOptions{RevalidationDeadlineSeconds: 5}

	require.NoError(t, client.DangerouslyDeleteByTag(context.Background(), tags, opts))
	assert.Equal(t, []string{" b ", "a", "a"}, tags)
	assert.Equal(t, 5, opts.RevalidationDeadlineSeconds)
}

func TestClient_Forwards(t *testing.T) {
	ctx := context.Background()
	tags := []string{"b", "a", "a"}
	opts := &purge.DeleteOptions{RevalidationDeadlineSeconds: 30}

	t.Run("InvalidateByTag", func(t *testing.T) {
		mock := newMock(nil)
		client, err := purge.NewClient(purge.WithProvider(mock))
		require.NoError(t, err)

		require.NoError(t, client.InvalidateByTag(ctx, tags))

		calls := mock.InvalidateByTagCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, 1, totalCalls(mock))
		assert.Equal(t, ctx, calls[0].Ctx)
		assert.Equal(t, []string{"b", "a", "a"}, calls[0].Tags)
		assert.Same(t, &tags[0], &calls[0].Tags[0])
	})

	t.Run("InvalidateBySrcImage", func(t *testing.T) {
		mock := newMock(nil)
		client, err := purge.NewClient(purge.WithProvider(mock))
		require.NoError(t, err)

		require.NoError(t, client.InvalidateBySrcImage(ctx, tags))

		calls := mock.InvalidateBySrcImageCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, 1, totalCalls(mock))
		assert.Same(t, &tags[0], &calls[0].Srcs[0])
		assert.Len(t, calls[0].Srcs, 3)
	})

	t.Run("DangerouslyDeleteByTag without options", func(t *testing.T) {
		mock := newMock(nil)
		client, err := purge.NewClient(purge.WithProvider(mock))
		require.NoError(t, err)

		require.NoError(t, client.DangerouslyDeleteByTag(ctx, tags, nil))

		calls := mock.DangerouslyDeleteByTagCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, 1, totalCalls(mock))
		assert.Same(t, &tags[0], &calls[0].Tags[0])
		assert.Nil(t, calls[0].Opts)
	})

	t.Run("DangerouslyDeleteByTag with options", func(t *testing.T) {
		mock := newMock(nil)
		client, err := purge.NewClient(purge.WithProvider(mock))
		require.NoError(t, err)

		require.NoError(t, client.DangerouslyDeleteByTag(ctx, tags, opts))

		calls := mock.DangerouslyDeleteByTagCalls()
		require.Len(t, calls, 1)
		assert.Same(t, opts, calls[0].Opts)
		assert.Equal(t, 30, calls[0].Opts.RevalidationDeadlineSeconds)
	})

	t.Run("DangerouslyDeleteBySrcImage", func(t *testing.T) {
		mock := newMock(nil)
		client, err := purge.NewClient(purge.WithProvider(mock))
		require.NoError(t, err)

		require.NoError(t, client.DangerouslyDeleteBySrcImage(ctx, tags, opts))

		calls := mock.DangerouslyDeleteBySrcImageCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, 1, totalCalls(mock))
		assert.Same(t, &tags[0], &calls[0].Srcs[0])
		assert.Same(t, opts, calls[0].Opts)
	})
}

func TestClient_PropagatesProviderError(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New(errors.CodeRateLimit, "slow down")
	mock := newMock(wantErr)
	client, err := purge.NewClient(purge.WithProvider(mock))
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
	}{
		{"InvalidateByTag", func() error { return client.InvalidateByTag(ctx, []string{"a"}) }},
		{"InvalidateBySrcImage", func() error { return client.InvalidateBySrcImage(ctx, []string{"a"}) }},
		{"DangerouslyDeleteByTag", func() error { return client.DangerouslyDeleteByTag(ctx, []string{"a"}, nil) }},
		{"DangerouslyDeleteBySrcImage", func() error { return client.DangerouslyDeleteBySrcImage(ctx, []string{"a"}, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.True(t, err == wantErr, "error must be returned unchanged, got %v", err)
		})
	}
}

func TestClient_ResolvesPerCall(t *testing.T) {
	first := newMock(nil)
	second := newMock(nil)
	client, err := purge.NewClient()
	require.NoError(t, err)

	require.NoError(t, client.InvalidateByTag(purge.NewContext(context.Background(), first), []string{"a"}))
	require.NoError(t, client.InvalidateByTag(purge.NewContext(context.Background(), second), []string{"b"}))
	require.NoError(t, client.InvalidateByTag(context.Background(), []string{"c"}))

	require.Len(t, first.InvalidateByTagCalls(), 1)
	require.Len(t, second.InvalidateByTagCalls(), 1)
	assert.Equal(t, []string{"a"}, first.InvalidateByTagCalls()[0].Tags)
	assert.Equal(t, []string{"b"}, second.InvalidateByTagCalls()[0].Tags)
}

func TestClient_Concurrent(t *testing.T) {
	fail := errors.New(errors.CodeNetwork, "backend down")
	mock := &mocks.ProviderMock{
		InvalidateByTagFunc: func(ctx context.Context, tags []string) error {
			if tags[0] == "y" {
				return fail
			}
			return nil
		},
	}
	client, err := purge.NewClient(purge.WithProvider(mock))
	require.NoError(t, err)

	const n = 50
	results := make([]error, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		tag := "x"
		if i%2 == 1 {
			tag = "y"
		}
		g.Go(func() error {
			results[i] = client.InvalidateByTag(context.Background(), []string{tag})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	calls := mock.InvalidateByTagCalls()
	require.Len(t, calls, n)

	seen := map[string]int{}
	for _, c := range calls {
		require.Len(t, c.Tags, 1)
		seen[c.Tags[0]]++
	}
	assert.Equal(t, map[string]int{"x": n / 2, "y": n / 2}, seen)

	for i, err := range results {
		if i%2 == 1 {
			assert.True(t, err == fail, fmt.Sprintf("call %d: want backend error", i))
		} else {
			assert.NoError(t, err, fmt.Sprintf("call %d", i))
		}
	}
}

func TestClient_TypedNilProvider(t *testing.T) {
	var typedNil *mocks.ProviderMock
	opts := &purge.DeleteOptions{RevalidationDeadlineSeconds: 30}

	fromContext, err := purge.NewClient()
	require.NoError(t, err)
	fixed, err := purge.NewClient(purge.WithProvider(typedNil))
	require.NoError(t, err)
	resolved, err := purge.NewClient(purge.WithResolver(func(context.Context) purge.Provider {
		return typedNil
	}))
	require.NoError(t, err)

	ctx := purge.NewContext(context.Background(), typedNil)

	for name, client := range map[string]*purge.Client{
		"context resolver": fromContext,
		"fixed provider":   fixed,
		"custom resolver":  resolved,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, client.Provider(ctx))
			assert.NotPanics(t, func() {
				assert.NoError(t, client.InvalidateByTag(ctx, []string{"a"}))
				assert.NoError(t, client.InvalidateBySrcImage(ctx, []string{"/a.png"}))
				assert.NoError(t, client.DangerouslyDeleteByTag(ctx, []string{"a"}, nil))
				assert.NoError(t, client.DangerouslyDeleteBySrcImage(ctx, []string{"/a.png"}, opts))
			})
		})
	}

	t.Run("package functions", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.NoError(t, purge.InvalidateByTag(ctx, []string{"a"}))
			assert.NoError(t, purge.DangerouslyDeleteBySrcImage(ctx, []string{"/a.png"}, nil))
		})
	})
}
