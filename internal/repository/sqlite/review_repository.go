package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/logger"
	"github.com/vytor/leitnerflash/internal/models"
	"github.com/vytor/leitnerflash/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new ReviewRepository implementation
func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, cardID int64, difficulty flashcard.Difficulty, day int) error {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("inserting review: card_id=%d, difficulty=%s, day=%d", cardID, difficulty, day)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO review_history (card_id, difficulty, day)
VALUES (?, ?, ?)
`, cardID, int(difficulty), day)
	if err != nil {
		log.Error("failed to insert review: %v", err)
	}
	return err
}

func (r *reviewRepository) History(ctx context.Context, profileID int64, cards map[int64]*models.Card) ([]flashcard.HistoryEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("loading review history: profile_id=%d", profileID)

	query, args, err := sqlBuilder.Select("r.card_id", "r.difficulty").
		From("review_history r").
		Join("cards c ON c.id = r.card_id").
		Where(squirrel.Eq{"c.profile_id": profileID}).
		OrderBy("r.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query review history: %v", err)
		return nil, err
	}
	defer rows.Close()

	history := []flashcard.HistoryEntry{}
	skipped := 0
	for rows.Next() {
		var cardID int64
		var difficulty int
		if err := rows.Scan(&cardID, &difficulty); err != nil {
			log.Error("failed to scan review row: %v", err)
			return nil, err
		}
		card, ok := cards[cardID]
		if !ok {
			skipped++
			continue
		}
		history = append(history, flashcard.HistoryEntry{Card: card, Difficulty: flashcard.Difficulty(difficulty)})
	}
	if skipped > 0 {
		log.Debug("skipped %d reviews of unknown cards", skipped)
	}
	return history, rows.Err()
}

func (r *reviewRepository) Count(ctx context.Context, profileID int64) (int, error) {
	query, args, err := sqlBuilder.Select("COUNT(*)").
		From("review_history r").
		Join("cards c ON c.id = r.card_id").
		Where(squirrel.Eq{"c.profile_id": profileID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).WithPrefix("review_repo").Error("failed to count reviews: %v", err)
		return 0, err
	}
	return n, nil
}
