package redis_repo

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SessionRepoTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	rdb  *redis.Client
	repo *SessionRepo
}

func (suite *SessionRepoTestSuite) SetupTest() {
	suite.mr = miniredis.RunT(suite.T())
	suite.rdb = redis.NewClient(&redis.Options{Addr: suite.mr.Addr()})
	suite.repo = NewSessionRepo(suite.rdb, "stylish", 0)
}

func (suite *SessionRepoTestSuite) TearDownTest() {
	suite.rdb.Close()
}

func TestSessionRepoTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepoTestSuite))
}

func (suite *SessionRepoTestSuite) TestSaveAndLoadCart() {
	ctx := context.Background()
	items := []model.CartItem{
		{ProductID: "p1", Quantity: 2, Size: "M", Color: "White"},
		{ProductID: "p2", Quantity: 1, Size: "L", Color: "Black"},
	}

	err := suite.repo.SaveCart(ctx, "sid-1", items)
	assert.NoError(suite.T(), err)

	got, err := suite.repo.LoadCart(ctx, "sid-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), items, got)
}

func (suite *SessionRepoTestSuite) TestLoadCartNotFound() {
	_, err := suite.repo.LoadCart(context.Background(), "sid-missing")
	assert.ErrorIs(suite.T(), err, ErrSnapshotNotFound)
}

func (suite *SessionRepoTestSuite) TestLoadCartCorrupted() {
	ctx := context.Background()
	suite.mr.Set("stylish:session:sid-bad:cart", "{not json")

	_, err := suite.repo.LoadCart(ctx, "sid-bad")
	assert.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, ErrSnapshotNotFound)
}

func (suite *SessionRepoTestSuite) TestDeleteCart() {
	ctx := context.Background()
	err := suite.repo.SaveCart(ctx, "sid-del", []model.CartItem{{ProductID: "p1", Quantity: 1}})
	assert.NoError(suite.T(), err)

	err = suite.repo.DeleteCart(ctx, "sid-del")
	assert.NoError(suite.T(), err)

	_, err = suite.repo.LoadCart(ctx, "sid-del")
	assert.ErrorIs(suite.T(), err, ErrSnapshotNotFound)
}

func (suite *SessionRepoTestSuite) TestSaveAndLoadUser() {
	ctx := context.Background()
	user := &model.User{UserID: "1", Name: "Admin User", Email: "admin@example.com", IsAdmin: true}

	err := suite.repo.SaveUser(ctx, "sid-2", user)
	assert.NoError(suite.T(), err)

	got, err := suite.repo.LoadUser(ctx, "sid-2")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user, got)
}

func (suite *SessionRepoTestSuite) TestDeleteUser() {
	ctx := context.Background()
	err := suite.repo.SaveUser(ctx, "sid-3", &model.User{UserID: "2"})
	assert.NoError(suite.T(), err)

	err = suite.repo.DeleteUser(ctx, "sid-3")
	assert.NoError(suite.T(), err)

	_, err = suite.repo.LoadUser(ctx, "sid-3")
	assert.ErrorIs(suite.T(), err, ErrSnapshotNotFound)
}

func (suite *SessionRepoTestSuite) TestSessionsAreIsolated() {
	ctx := context.Background()
	err := suite.repo.SaveCart(ctx, "sid-a", []model.CartItem{{ProductID: "p1", Quantity: 1}})
	assert.NoError(suite.T(), err)

	_, err = suite.repo.LoadCart(ctx, "sid-b")
	assert.ErrorIs(suite.T(), err, ErrSnapshotNotFound)
}
