package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/leitnerflash/internal/logger"
	"github.com/vytor/leitnerflash/internal/models"
	"github.com/vytor/leitnerflash/internal/repository"
)

type cardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new CardRepository implementation
func NewCardRepository(db *sql.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

var cardColumns = []string{"c.id", "c.profile_id", "c.front", "c.back", "c.hint", "c.tags", "c.created_at"}

func scanCard(row rowScanner, extra ...any) (models.Card, error) {
	var c models.Card
	var tags string
	dest := append([]any{&c.ID, &c.ProfileID, &c.Front, &c.Back, &c.Hint, &tags, &c.CreatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return c, err
	}
	c.Tags = decodeTags(tags)
	return c, nil
}

func insertCard(ctx context.Context, tx *sql.Tx, c models.Card) (int64, error) {
	res, err := tx.ExecContext(ctx, `
INSERT INTO cards (profile_id, front, back, hint, tags)
VALUES (?, ?, ?, ?, ?)
`, c.ProfileID, c.Front, c.Back, c.Hint, encodeTags(c.Tags))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO card_buckets (card_id, bucket) VALUES (?, 0)`, id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *cardRepository) Insert(ctx context.Context, c models.Card) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("inserting card: profile_id=%d", c.ProfileID)

	var id int64
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		id, err = insertCard(ctx, tx, c)
		return err
	})
	if err != nil {
		log.Error("failed to insert card: %v", err)
		return 0, err
	}
	log.Debug("card inserted: id=%d", id)
	return id, nil
}

func (r *cardRepository) InsertBatch(ctx context.Context, cards []models.Card) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("inserting %d cards", len(cards))

	ids := make([]int64, 0, len(cards))
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		for _, c := range cards {
			id, err := insertCard(ctx, tx, c)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to insert card batch: %v", err)
		return nil, err
	}
	return ids, nil
}

func (r *cardRepository) Get(ctx context.Context, profileID, id int64) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("getting card: id=%d, profile_id=%d", id, profileID)

	query, args, err := sqlBuilder.Select(cardColumns...).
		From("cards c").
		Where(squirrel.Eq{"c.id": id, "c.profile_id": profileID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	c, err := scanCard(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("card not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *cardRepository) List(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("listing cards: profile_id=%d, tag=%s", filter.ProfileID, filter.Tag)

	query := sqlBuilder.Select(cardColumns...).
		From("cards c").
		LeftJoin("card_buckets b ON b.card_id = c.id").
		Where(squirrel.Eq{"c.profile_id": filter.ProfileID})

	if filter.Tag != "" {
		query = query.Where(squirrel.Like{"',' || c.tags || ','": "%," + filter.Tag + ",%"})
	}
	if filter.Bucket != nil {
		query = query.Where(squirrel.Eq{"COALESCE(b.bucket, 0)": *filter.Bucket})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.OrderBy("c.id ASC").Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	cards := []models.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan card row: %v", err)
			return nil, err
		}
		cards = append(cards, c)
	}
	log.Debug("found %d cards", len(cards))
	return cards, rows.Err()
}

func (r *cardRepository) Delete(ctx context.Context, profileID, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("deleting card: id=%d, profile_id=%d", id, profileID)

	res, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ? AND profile_id = ?`, id, profileID)
	if err != nil {
		log.Error("failed to delete card: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
