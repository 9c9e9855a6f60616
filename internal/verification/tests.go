// Package verification holds the test cases the verify binary runs against
// the blog store.
package verification

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"verify.dev/pkg/verify/internal/adapter"
)

const defaultTenant = "1"

// StoreOpener opens a new session on the blog store. Every call returns an
// independent handle that the caller closes.
type StoreOpener func(ctx context.Context) (*adapter.BlogStore, error)

// Tests is the container of verification test cases. Each exported
// func(context.Context) error method is one test case.
type Tests struct {
	open StoreOpener
}

// NewTests creates the container over the given store opener.
func NewTests(open StoreOpener) *Tests {
	return &Tests{open: open}
}

// CompiledQuery seeds two blogs with one post each, then checks from a fresh
// session that a prepared tenant query returns both posts with their blogs,
// and that the session tracks exactly what the query loaded.
func (t *Tests) CompiledQuery(ctx context.Context) error {
	err := t.session(ctx, func(store *adapter.BlogStore) error {
		if err := store.Reset(ctx); err != nil {
			return errors.Wrap(err, "reset store")
		}

		blog, err := store.CreateBlog(ctx, defaultTenant, "Hello World!")
		if err != nil {
			return errors.Wrap(err, "create blog")
		}

		if _, err := store.CreatePost(ctx, blog, "First"); err != nil {
			return errors.Wrap(err, "create post")
		}

		other, err := store.CreateBlog(ctx, defaultTenant, "0x000 is the new black")
		if err != nil {
			return errors.Wrap(err, "create blog")
		}

		if _, err := store.CreatePost(ctx, other, "Black is back"); err != nil {
			return errors.Wrap(err, "create post")
		}

		return nil
	})
	if err != nil {
		return err
	}

	return t.session(ctx, func(store *adapter.BlogStore) error {
		query, err := store.PrepareTenantPosts(ctx)
		if err != nil {
			return errors.Wrap(err, "compile query")
		}
		defer query.Close()

		count, err := store.CountBlogs(ctx)
		if err != nil {
			return errors.Wrap(err, "count blogs")
		}

		expect := newExpectation("CompiledQuery")
		expect.Equal(2, count, "blog count")
		expect.Zero(store.TrackedPosts(), "posts tracked before the query")

		posts, err := query.Run(ctx, defaultTenant)
		if err != nil {
			return errors.Wrap(err, "run compiled query")
		}

		expect.Equal(2, store.TrackedPosts(), "posts tracked after the query")

		if !expect.Len(posts, 2, "tenant posts") {
			return expect.Err()
		}

		for _, post := range posts {
			if !expect.NotNil(post.Blog, "blog of post %d", post.ID) {
				continue
			}

			tracked, ok := store.TrackedBlog(post.Blog.ID)
			expect.True(ok, "blog %d tracked", post.Blog.ID)
			expect.Same(tracked, post.Blog, "blog of post %d is the tracked instance", post.ID)
		}

		expect.NotSame(posts[0].Blog, posts[1].Blog, "posts belong to different blogs")

		return expect.Err()
	})
}

// SelfJoinProjection joins blogs with themselves and checks that both sides
// of the first row resolve to the same loaded blog.
func (t *Tests) SelfJoinProjection(ctx context.Context) error {
	err := t.session(ctx, func(store *adapter.BlogStore) error {
		if err := store.Reset(ctx); err != nil {
			return errors.Wrap(err, "reset store")
		}

		if _, err := store.CreateBlog(ctx, defaultTenant, "Hello World!"); err != nil {
			return errors.Wrap(err, "create blog")
		}

		return nil
	})
	if err != nil {
		return err
	}

	return t.session(ctx, func(store *adapter.BlogStore) error {
		pairs, err := store.BlogSelfJoin(ctx)
		if err != nil {
			return errors.Wrap(err, "self join")
		}

		if len(pairs) == 0 {
			return errors.New("self join returned no rows")
		}

		expect := newExpectation("SelfJoinProjection")
		expect.Same(pairs[0].Left, pairs[0].Right, "projected blogs")

		return expect.Err()
	})
}

// session opens a store, hands it to fn and closes it again.
func (t *Tests) session(ctx context.Context, fn func(store *adapter.BlogStore) error) (err error) {
	store, err := t.open(ctx)
	if err != nil {
		return errors.Wrap(err, "open store")
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close store")
		}
	}()

	return fn(store)
}

// expectation runs testify assertions and keeps their failure messages
// instead of failing a *testing.T.
type expectation struct {
	*assert.Assertions

	name      string
	collector *failureCollector
}

func newExpectation(name string) *expectation {
	collector := &failureCollector{}

	return &expectation{
		Assertions: assert.New(collector),
		name:       name,
		collector:  collector,
	}
}

// Err returns nil when every assertion held.
func (e *expectation) Err() error {
	failures := e.collector.failures
	if len(failures) == 0 {
		return nil
	}

	return errors.Errorf("%s: %d assertion(s) failed\n%s", e.name, len(failures), strings.Join(failures, "\n"))
}

type failureCollector struct {
	failures []string
}

// Errorf implements assert.TestingT.
func (c *failureCollector) Errorf(format string, args ...any) {
	c.failures = append(c.failures, strings.TrimSpace(fmt.Sprintf(format, args...)))
}
