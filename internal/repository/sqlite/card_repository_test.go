package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/leitnerflash/internal/models"
	"github.com/vytor/leitnerflash/internal/repository"
	"github.com/vytor/leitnerflash/internal/repository/sqlite"
	"github.com/vytor/leitnerflash/internal/testutil"
)

type CardRepositorySuite struct {
	suite.Suite
	db        *sql.DB
	repo      repository.CardRepository
	profileID int64
}

func (s *CardRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewCardRepository(s.db)
	s.profileID = testutil.MustProfile(s.T(), s.db, "learner")
}

func (s *CardRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *CardRepositorySuite) TestInsertPlacesCardInBucketZero() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, models.Card{
		ProfileID: s.profileID,
		Front:     "hola",
		Back:      "hello",
		Hint:      "greeting",
		Tags:      []string{"spanish", " basics "},
	})
	s.Require().NoError(err)
	s.Assert().Greater(id, int64(0))

	var bucket int
	err = s.db.QueryRowContext(ctx, `SELECT bucket FROM card_buckets WHERE card_id = ?`, id).Scan(&bucket)
	s.Require().NoError(err)
	s.Assert().Equal(0, bucket)

	card, err := s.repo.Get(ctx, s.profileID, id)
	s.Require().NoError(err)
	s.Require().NotNil(card)
	s.Assert().Equal("hola", card.Front)
	s.Assert().Equal("greeting", card.Hint)
	s.Assert().Equal([]string{"spanish", "basics"}, card.Tags)
}

func (s *CardRepositorySuite) TestGetScopedToProfile() {
	ctx := context.Background()
	id := testutil.MustCard(s.T(), s.db, s.profileID, "mine", 0)
	other := testutil.MustProfile(s.T(), s.db, "someone-else")

	card, err := s.repo.Get(ctx, other, id)
	s.Require().NoError(err)
	s.Assert().Nil(card)
}

func (s *CardRepositorySuite) TestInsertBatch() {
	ctx := context.Background()
	ids, err := s.repo.InsertBatch(ctx, []models.Card{
		{ProfileID: s.profileID, Front: "one", Back: "1"},
		{ProfileID: s.profileID, Front: "two", Back: "2"},
	})
	s.Require().NoError(err)
	s.Assert().Len(ids, 2)

	var n int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM card_buckets`).Scan(&n))
	s.Assert().Equal(2, n)
}

func (s *CardRepositorySuite) TestListFilters() {
	ctx := context.Background()
	_, err := s.repo.Insert(ctx, models.Card{ProfileID: s.profileID, Front: "a", Back: "a", Tags: []string{"verbs"}})
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, models.Card{ProfileID: s.profileID, Front: "b", Back: "b", Tags: []string{"nouns", "verbs-irregular"}})
	s.Require().NoError(err)
	promoted := testutil.MustCard(s.T(), s.db, s.profileID, "c", 2)

	all, err := s.repo.List(ctx, models.CardFilter{ProfileID: s.profileID})
	s.Require().NoError(err)
	s.Assert().Len(all, 3)

	verbs, err := s.repo.List(ctx, models.CardFilter{ProfileID: s.profileID, Tag: "verbs"})
	s.Require().NoError(err)
	s.Require().Len(verbs, 1, "tag match must be exact, not a prefix")
	s.Assert().Equal("a", verbs[0].Front)

	bucket := 2
	inTwo, err := s.repo.List(ctx, models.CardFilter{ProfileID: s.profileID, Bucket: &bucket})
	s.Require().NoError(err)
	s.Require().Len(inTwo, 1)
	s.Assert().Equal(promoted, inTwo[0].ID)

	page, err := s.repo.List(ctx, models.CardFilter{ProfileID: s.profileID, Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Assert().Equal("b", page[0].Front)
}

func (s *CardRepositorySuite) TestDelete() {
	ctx := context.Background()
	id := testutil.MustCard(s.T(), s.db, s.profileID, "gone", 1)

	s.Require().NoError(s.repo.Delete(ctx, s.profileID, id))
	s.Assert().ErrorIs(s.repo.Delete(ctx, s.profileID, id), sql.ErrNoRows)

	var n int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM card_buckets WHERE card_id = ?`, id).Scan(&n))
	s.Assert().Equal(0, n, "placement should cascade")
}

func TestCardRepositorySuite(t *testing.T) {
	suite.Run(t, new(CardRepositorySuite))
}
