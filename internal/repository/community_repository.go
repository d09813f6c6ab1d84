package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"womenhub/internal/database"
	"womenhub/internal/models"
)

const anonymousAuthor = "Anonymous"

type communityRepository struct {
	db *database.DB
}

func NewCommunityRepository(db *database.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Insert(ctx context.Context, post models.NewPost) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO community_posts (user_id, title, content, category)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)

	var userID any
	if post.UserID > 0 {
		userID = post.UserID
	}

	var id int64
	err := r.db.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &id, query, userID, post.Title, post.Content, nullable(post.Category))
	})
	if err != nil {
		return 0, fmt.Errorf("insert community post: %w", err)
	}

	return id, nil
}

func (r *communityRepository) List(ctx context.Context, category string, limit int) ([]models.CommunityPost, error) {
	query := `SELECT id,
			COALESCE(user_id, 0) AS user_id,
			title, content,
			COALESCE(category, '') AS category,
			COALESCE(likes, 0) AS likes,
			created_at,
			'` + anonymousAuthor + `' AS author_name
		FROM community_posts`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query = r.db.Rebind(query + ` ORDER BY created_at DESC, id DESC LIMIT ?`)
	args = append(args, limit)

	posts := []models.CommunityPost{}
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &posts, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list community posts: %w", err)
	}

	return posts, nil
}
