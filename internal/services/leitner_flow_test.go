package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/models"
	"github.com/vytor/leitnerflash/internal/repository/sqlite"
	"github.com/vytor/leitnerflash/internal/services"
	"github.com/vytor/leitnerflash/internal/testutil"
)

// LeitnerFlowSuite drives the services against a real SQLite database.
type LeitnerFlowSuite struct {
	suite.Suite
	db       *sql.DB
	profiles services.ProfileService
	cards    services.CardService
	practice services.PracticeService
	imports  services.ImportService
}

func (s *LeitnerFlowSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	profileRepo := sqlite.NewProfileRepository(s.db)
	cardRepo := sqlite.NewCardRepository(s.db)
	s.profiles = services.NewProfileService(profileRepo)
	s.cards = services.NewCardService(cardRepo)
	s.practice = services.NewPracticeService(profileRepo, sqlite.NewBucketRepository(s.db), sqlite.NewReviewRepository(s.db), 0)
	s.imports = services.NewImportService(nil, profileRepo, cardRepo)
}

func (s *LeitnerFlowSuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *LeitnerFlowSuite) TestReviewCycle() {
	ctx := context.Background()
	p, err := s.profiles.CreateProfile(ctx, "ana")
	s.Require().NoError(err)

	ids, err := s.imports.ImportNow(ctx, p.ID, []byte(`
name = "capitals"
[[cards]]
front = "France"
back = "Paris"
[[cards]]
front = "Peru"
back = "Lima"
hint = "three syllables? no, two"
`))
	s.Require().NoError(err)
	s.Require().Len(ids, 2)

	set, err := s.practice.DueCards(ctx, p.ID, nil)
	s.Require().NoError(err)
	s.Assert().Equal(0, set.Total, "nothing is due on day 0")

	_, err = s.profiles.AdvanceDay(ctx, p.ID)
	s.Require().NoError(err)
	set, err = s.practice.DueCards(ctx, p.ID, nil)
	s.Require().NoError(err)
	s.Assert().Equal(2, set.Total)

	res, err := s.practice.ReviewCard(ctx, p.ID, ids[0], flashcard.Easy)
	s.Require().NoError(err)
	s.Assert().Equal(1, res.ToBucket)
	s.Assert().Equal(1, res.Day)

	set, err = s.practice.DueCards(ctx, p.ID, nil)
	s.Require().NoError(err)
	s.Require().Len(set.Cards, 1)
	s.Assert().Equal(ids[1], set.Cards[0].ID)

	_, err = s.practice.ReviewBatch(ctx, p.ID, []services.Review{
		{CardID: ids[1], Difficulty: flashcard.Hard},
		{CardID: ids[0], Difficulty: flashcard.Wrong},
	})
	s.Require().NoError(err)

	sched, err := s.practice.Schedule(ctx, p.ID)
	s.Require().NoError(err)
	s.Assert().Equal([]models.BucketStat{{Bucket: 0, Cards: 2}}, sched.Buckets)
	s.Assert().Equal(0, *sched.MinBucket)
	s.Assert().Equal(0, *sched.MaxBucket)

	progress, err := s.practice.Progress(ctx, p.ID)
	s.Require().NoError(err)
	s.Assert().Equal(2, progress.TotalCards)
	s.Assert().Equal(3, progress.TotalReviews)
	s.Assert().Equal(2, progress.SuccessfulReviews)
	s.Assert().Equal(100.0, progress.Percent)

	hint, err := s.cards.GetHint(ctx, p.ID, ids[1])
	s.Require().NoError(err)
	s.Assert().Equal("three syllables? no, two", hint)
}

func TestLeitnerFlowSuite(t *testing.T) {
	suite.Run(t, new(LeitnerFlowSuite))
}
