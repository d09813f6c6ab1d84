package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"womenhub/internal/database"
	"womenhub/internal/models"
)

type storyRepository struct {
	db *database.DB
}

func NewStoryRepository(db *database.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Insert(ctx context.Context, story models.NewStory) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO success_stories (name, title, story, category, image_url)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	err := r.db.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &id, query,
			story.Name,
			story.Title,
			story.Story,
			nullable(story.Category),
			nullable(story.ImageURL),
		)
	})
	if err != nil {
		return 0, fmt.Errorf("insert success story: %w", err)
	}

	return id, nil
}

func (r *storyRepository) ListApproved(ctx context.Context, limit int) ([]models.SuccessStory, error) {
	query := r.db.Rebind(`
		SELECT id, name, title, story,
			COALESCE(image_url, '') AS image_url,
			COALESCE(category, '') AS category,
			date_posted, is_approved
		FROM success_stories
		WHERE is_approved = TRUE
		ORDER BY date_posted DESC, id DESC
		LIMIT ?`)

	stories := []models.SuccessStory{}
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &stories, query, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("list success stories: %w", err)
	}

	return stories, nil
}
