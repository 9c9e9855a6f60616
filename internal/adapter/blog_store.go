package adapter

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// InMemoryStorePath opens a private in-memory database.
const InMemoryStorePath = ":memory:"

const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS tenants (
	id TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS blogs (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	tenant_id TEXT NOT NULL REFERENCES tenants(id),
	name      TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS posts (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	tenant_id TEXT NOT NULL REFERENCES tenants(id),
	blog_id   INTEGER REFERENCES blogs(id) ON DELETE SET NULL,
	title     TEXT NOT NULL DEFAULT ''
);
`

const dropSchemaSQL = `
DROP TABLE IF EXISTS posts;
DROP TABLE IF EXISTS blogs;
DROP TABLE IF EXISTS tenants;
`

const tenantPostsSQL = `
SELECT p.id, p.tenant_id, p.blog_id, p.title, b.id, b.tenant_id, b.name
FROM posts p
LEFT JOIN blogs b ON b.id = p.blog_id
WHERE p.tenant_id = ?
ORDER BY p.id`

const blogSelfJoinSQL = `
SELECT b.id, b.tenant_id, b.name, l.id, l.tenant_id, l.name
FROM blogs b
JOIN blogs l ON l.id = b.id
ORDER BY b.id`

// Blog is a row of the blogs table.
type Blog struct {
	ID       int64
	TenantID string
	Name     string
}

// Post is a row of the posts table with its blog loaded, if any.
type Post struct {
	ID       int64
	TenantID string
	Title    string
	Blog     *Blog
}

// BlogPair is one row of a self join over blogs.
type BlogPair struct {
	Left  *Blog
	Right *Blog
}

// BlogStore is one session on the SQLite database the verification tests
// exercise. Rows loaded by its queries are tracked per session, so a row read
// twice resolves to the same instance.
type BlogStore struct {
	db    *sql.DB
	blogs map[int64]*Blog
	posts map[int64]*Post
}

// OpenBlogStore opens or creates the database at path.
func OpenBlogStore(ctx context.Context, path string) (*BlogStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared across statements.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &BlogStore{
		db:    db,
		blogs: map[int64]*Blog{},
		posts: map[int64]*Post{},
	}, nil
}

// Close closes the database connection.
func (s *BlogStore) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// EnsureDeleted drops every table.
func (s *BlogStore) EnsureDeleted(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, dropSchemaSQL); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}

	return nil
}

// EnsureCreated creates the tables that do not exist yet.
func (s *BlogStore) EnsureCreated(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// Reset drops and recreates the schema and forgets every tracked row.
func (s *BlogStore) Reset(ctx context.Context) error {
	if err := s.EnsureDeleted(ctx); err != nil {
		return err
	}

	clear(s.blogs)
	clear(s.posts)

	return s.EnsureCreated(ctx)
}

// CreateBlog inserts a blog, adding its tenant first when it is unknown.
func (s *BlogStore) CreateBlog(ctx context.Context, tenantID, name string) (Blog, error) {
	if _, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO tenants (id) VALUES (?)", tenantID); err != nil {
		return Blog{}, fmt.Errorf("insert tenant %q: %w", tenantID, err)
	}

	res, err := s.db.ExecContext(ctx, "INSERT INTO blogs (tenant_id, name) VALUES (?, ?)", tenantID, name)
	if err != nil {
		return Blog{}, fmt.Errorf("insert blog: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Blog{}, fmt.Errorf("blog id: %w", err)
	}

	return Blog{ID: id, TenantID: tenantID, Name: name}, nil
}

// CreatePost inserts a post into blog under the blog's tenant.
func (s *BlogStore) CreatePost(ctx context.Context, blog Blog, title string) (Post, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO posts (tenant_id, blog_id, title) VALUES (?, ?, ?)",
		blog.TenantID, blog.ID, title,
	)
	if err != nil {
		return Post{}, fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Post{}, fmt.Errorf("post id: %w", err)
	}

	return Post{ID: id, TenantID: blog.TenantID, Title: title, Blog: &blog}, nil
}

// CountBlogs returns the number of blogs across all tenants.
func (s *BlogStore) CountBlogs(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM blogs").Scan(&count); err != nil {
		return 0, fmt.Errorf("count blogs: %w", err)
	}

	return count, nil
}

// TrackedPosts returns the number of posts loaded by this session.
func (s *BlogStore) TrackedPosts() int {
	return len(s.posts)
}

// TrackedBlog returns the instance this session loaded for id.
func (s *BlogStore) TrackedBlog(id int64) (*Blog, bool) {
	blog, ok := s.blogs[id]
	return blog, ok
}

// TenantPostsQuery is a prepared query for the posts of one tenant.
type TenantPostsQuery struct {
	store *BlogStore
	stmt  *sql.Stmt
}

// PrepareTenantPosts compiles the tenant posts query once for repeated use.
func (s *BlogStore) PrepareTenantPosts(ctx context.Context) (*TenantPostsQuery, error) {
	stmt, err := s.db.PrepareContext(ctx, tenantPostsSQL)
	if err != nil {
		return nil, fmt.Errorf("prepare tenant posts: %w", err)
	}

	return &TenantPostsQuery{store: s, stmt: stmt}, nil
}

// Run returns the tenant's posts with their blogs and tracks both. Posts of
// the same blog share one *Blog.
func (q *TenantPostsQuery) Run(ctx context.Context, tenantID string) ([]*Post, error) {
	rows, err := q.stmt.QueryContext(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query tenant posts: %w", err)
	}
	defer rows.Close()

	posts := []*Post{}

	for rows.Next() {
		var (
			post                   Post
			postBlogID, blogID     sql.NullInt64
			blogTenantID, blogName sql.NullString
		)

		if err := rows.Scan(&post.ID, &post.TenantID, &postBlogID, &post.Title, &blogID, &blogTenantID, &blogName); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}

		if blogID.Valid {
			post.Blog = q.store.trackBlog(Blog{ID: blogID.Int64, TenantID: blogTenantID.String, Name: blogName.String})
		}

		posts = append(posts, q.store.trackPost(post))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}

// Close releases the prepared statement.
func (q *TenantPostsQuery) Close() error {
	return q.stmt.Close()
}

// BlogSelfJoin joins blogs with themselves on id. Both sides of a pair refer
// to the same *Blog.
func (s *BlogStore) BlogSelfJoin(ctx context.Context) ([]BlogPair, error) {
	rows, err := s.db.QueryContext(ctx, blogSelfJoinSQL)
	if err != nil {
		return nil, fmt.Errorf("query blog self join: %w", err)
	}
	defer rows.Close()

	pairs := []BlogPair{}

	for rows.Next() {
		var left, right Blog
		if err := rows.Scan(&left.ID, &left.TenantID, &left.Name, &right.ID, &right.TenantID, &right.Name); err != nil {
			return nil, fmt.Errorf("scan blog pair: %w", err)
		}

		pairs = append(pairs, BlogPair{Left: s.trackBlog(left), Right: s.trackBlog(right)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blog pairs: %w", err)
	}

	return pairs, nil
}

// trackBlog returns the instance already loaded for blog.ID, or registers blog.
func (s *BlogStore) trackBlog(blog Blog) *Blog {
	if existing, ok := s.blogs[blog.ID]; ok {
		return existing
	}

	tracked := &blog
	s.blogs[blog.ID] = tracked

	return tracked
}

func (s *BlogStore) trackPost(post Post) *Post {
	if existing, ok := s.posts[post.ID]; ok {
		return existing
	}

	tracked := &post
	s.posts[post.ID] = tracked

	return tracked
}
