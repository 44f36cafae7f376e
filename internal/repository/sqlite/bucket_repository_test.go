package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/repository"
	"github.com/vytor/leitnerflash/internal/repository/sqlite"
	"github.com/vytor/leitnerflash/internal/testutil"
)

type BucketRepositorySuite struct {
	suite.Suite
	db        *sql.DB
	repo      repository.BucketRepository
	profileID int64
}

func (s *BucketRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewBucketRepository(s.db)
	s.profileID = testutil.MustProfile(s.T(), s.db, "learner")
}

func (s *BucketRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *BucketRepositorySuite) TestLoadEmpty() {
	store, cards, err := s.repo.Load(context.Background(), s.profileID)
	s.Require().NoError(err)
	s.Assert().Empty(store)
	s.Assert().Empty(cards)
}

func (s *BucketRepositorySuite) TestLoadGroupsByBucket() {
	ctx := context.Background()
	a := testutil.MustCard(s.T(), s.db, s.profileID, "a", 0)
	b := testutil.MustCard(s.T(), s.db, s.profileID, "b", 3)
	c := testutil.MustCard(s.T(), s.db, s.profileID, "c", 3)
	other := testutil.MustProfile(s.T(), s.db, "other")
	testutil.MustCard(s.T(), s.db, other, "foreign", 1)

	store, cards, err := s.repo.Load(ctx, s.profileID)
	s.Require().NoError(err)
	s.Require().Len(cards, 3)
	s.Assert().Len(store, 2)
	s.Assert().True(store[0].Contains(cards[a]))
	s.Assert().True(store[3].Contains(cards[b]))
	s.Assert().True(store[3].Contains(cards[c]))
	s.Assert().NoError(flashcard.Validate(store))
}

func (s *BucketRepositorySuite) TestSaveRoundTripsMove() {
	ctx := context.Background()
	a := testutil.MustCard(s.T(), s.db, s.profileID, "a", 0)

	store, cards, err := s.repo.Load(ctx, s.profileID)
	s.Require().NoError(err)

	next, err := flashcard.Move(store, cards[a], flashcard.Easy)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Save(ctx, s.profileID, next))

	reloaded, reloadedCards, err := s.repo.Load(ctx, s.profileID)
	s.Require().NoError(err)
	bucket, ok := flashcard.FindBucket(reloaded, reloadedCards[a])
	s.Require().True(ok)
	s.Assert().Equal(1, bucket)
}

func (s *BucketRepositorySuite) TestSaveRejectsInvalidStore() {
	ctx := context.Background()
	a := testutil.MustCard(s.T(), s.db, s.profileID, "a", 0)
	_, cards, err := s.repo.Load(ctx, s.profileID)
	s.Require().NoError(err)

	bad := flashcard.BucketStore{
		0: flashcard.NewCardSet(cards[a]),
		1: flashcard.NewCardSet(cards[a]),
	}
	s.Assert().ErrorIs(s.repo.Save(ctx, s.profileID, bad), flashcard.ErrDuplicateCard)
}

func (s *BucketRepositorySuite) TestSaveRejectsForeignCard() {
	ctx := context.Background()
	other := testutil.MustProfile(s.T(), s.db, "other")
	foreign := testutil.MustCard(s.T(), s.db, other, "foreign", 0)
	_, otherCards, err := s.repo.Load(ctx, other)
	s.Require().NoError(err)

	err = s.repo.Save(ctx, s.profileID, flashcard.BucketStore{4: flashcard.NewCardSet(otherCards[foreign])})
	s.Require().Error(err)

	var bucket int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT bucket FROM card_buckets WHERE card_id = ?`, foreign).Scan(&bucket))
	s.Assert().Equal(0, bucket)
}

func TestBucketRepositorySuite(t *testing.T) {
	suite.Run(t, new(BucketRepositorySuite))
}
