package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/logger"
	"github.com/vytor/leitnerflash/internal/models"
	"github.com/vytor/leitnerflash/internal/repository"
)

type bucketRepository struct {
	db *sql.DB
}

// NewBucketRepository creates a new BucketRepository implementation
func NewBucketRepository(db *sql.DB) repository.BucketRepository {
	return &bucketRepository{db: db}
}

func (r *bucketRepository) Load(ctx context.Context, profileID int64) (flashcard.BucketStore, map[int64]*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("bucket_repo")
	log.Debug("loading bucket store: profile_id=%d", profileID)

	query, args, err := sqlBuilder.Select(append(cardColumns, "COALESCE(b.bucket, 0)")...).
		From("cards c").
		LeftJoin("card_buckets b ON b.card_id = c.id").
		Where(squirrel.Eq{"c.profile_id": profileID}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to load buckets: %v", err)
		return nil, nil, err
	}
	defer rows.Close()

	store := flashcard.BucketStore{}
	cards := map[int64]*models.Card{}
	for rows.Next() {
		var bucket int
		c, err := scanCard(rows, &bucket)
		if err != nil {
			log.Error("failed to scan bucket row: %v", err)
			return nil, nil, err
		}
		card := &c
		cards[card.ID] = card
		if store[bucket] == nil {
			store[bucket] = flashcard.CardSet{}
		}
		store[bucket].Add(card)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	log.Debug("loaded %d cards across %d buckets", len(cards), len(store))
	return store, cards, nil
}

// Save writes the placement of every card in store. Cards that do not belong
// to the profile are rejected and nothing is written.
func (r *bucketRepository) Save(ctx context.Context, profileID int64, store flashcard.BucketStore) error {
	log := logger.FromContext(ctx).WithPrefix("bucket_repo")
	log.Debug("saving bucket store: profile_id=%d, buckets=%d", profileID, len(store))

	if err := flashcard.Validate(store); err != nil {
		log.Warn("refusing to save invalid store: %v", err)
		return err
	}

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO card_buckets (card_id, bucket)
SELECT id, ? FROM cards WHERE id = ? AND profile_id = ?
ON CONFLICT(card_id) DO UPDATE SET bucket = excluded.bucket, updated_at = CURRENT_TIMESTAMP
WHERE card_buckets.bucket <> excluded.bucket
`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for bucket, set := range store {
			for card := range set {
				if card.ProfileID != 0 && card.ProfileID != profileID {
					return fmt.Errorf("card %d belongs to profile %d, not %d", card.ID, card.ProfileID, profileID)
				}
				if _, err := stmt.ExecContext(ctx, bucket, card.ID, profileID); err != nil {
					log.Error("failed to save placement for card %d: %v", card.ID, err)
					return err
				}
			}
		}
		return nil
	})
}
