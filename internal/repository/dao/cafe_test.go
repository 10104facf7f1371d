package dao

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vietanh2810/cafe-api/internal/pkg/testdb"
)

var (
	testDSN    string
	skipReason string
)

func TestMain(m *testing.M) {
	flag.Parse()

	if testing.Short() {
		skipReason = "skipping postgres integration tests in short mode"
		os.Exit(m.Run())
	}

	pg, err := testdb.StartPostgres(2 * time.Minute)
	if err != nil {
		skipReason = fmt.Sprintf("postgres container unavailable: %v", err)
		os.Exit(m.Run())
	}
	testDSN = pg.DSN

	code := m.Run()

	if err = pg.Purge(); err != nil {
		fmt.Fprintf(os.Stderr, "could not purge postgres container: %v\n", err)
	}

	os.Exit(code)
}

func strPtr(s string) *string {
	return &s
}

type CafeDAOSuite struct {
	suite.Suite

	db  *gorm.DB
	dao *CafeDAO
	ctx context.Context
}

func TestCafeDAO(t *testing.T) {
	if skipReason != "" {
		t.Skip(skipReason)
	}

	suite.Run(t, new(CafeDAOSuite))
}

func (s *CafeDAOSuite) SetupSuite() {
	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)

	s.db = db
	s.dao = NewCafeDAO(db)
	s.ctx = context.Background()
}

func (s *CafeDAOSuite) SetupTest() {
	s.Require().NoError(dropAllTables(s.db))
	s.Require().NoError(InitTables(s.db))
}

func (s *CafeDAOSuite) insert(name, location string) Cafe {
	created, err := s.dao.Insert(s.ctx, Cafe{
		Name:        name,
		MapURL:      "https://maps.example.com/" + name,
		ImgURL:      "https://img.example.com/" + name,
		Location:    location,
		Seats:       "20-30",
		HasToilet:   true,
		HasWifi:     true,
		CoffeePrice: strPtr("£2.40"),
	})
	s.Require().NoError(err)

	return created
}

func (s *CafeDAOSuite) count() int64 {
	var n int64
	s.Require().NoError(s.db.Model(&Cafe{}).Count(&n).Error)

	return n
}

func (s *CafeDAOSuite) TestInsert_AssignsID() {
	a := s.insert("Alpha", "Peckham")
	b := s.insert("Bravo", "Peckham")

	s.NotZero(a.ID)
	s.NotEqual(a.ID, b.ID)
}

func (s *CafeDAOSuite) TestInsert_DuplicateName() {
	original := s.insert("Alpha", "Peckham")

	_, err := s.dao.Insert(s.ctx, Cafe{
		Name:     "Alpha",
		MapURL:   "https://other",
		ImgURL:   "https://other",
		Location: "Hackney",
		Seats:    "0-10",
	})
	s.ErrorIs(err, ErrCafeNameExists)

	s.Equal(int64(1), s.count())
	found, err := s.dao.FindByID(s.ctx, original.ID)
	s.Require().NoError(err)
	s.Equal(original, found)
}

func (s *CafeDAOSuite) TestFindAll_OrderedByName() {
	s.insert("Charlie", "Peckham")
	s.insert("Alpha", "Hackney")
	s.insert("Bravo", "Peckham")

	cafes, err := s.dao.FindAll(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(cafes, 3)
	s.Equal("Alpha", cafes[0].Name)
	s.Equal("Bravo", cafes[1].Name)
	s.Equal("Charlie", cafes[2].Name)
}

func (s *CafeDAOSuite) TestFindAll_Empty() {
	cafes, err := s.dao.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(cafes)
}

func (s *CafeDAOSuite) TestFindByID_NotFound() {
	_, err := s.dao.FindByID(s.ctx, 999)
	s.ErrorIs(err, ErrCafeNotFound)
}

func (s *CafeDAOSuite) TestFindByLocation_ExactMatch() {
	s.insert("Alpha", "Peckham")
	s.insert("Bravo", "peckham")
	s.insert("Charlie", "Peckham Rye")

	cafes, err := s.dao.FindByLocation(s.ctx, "Peckham")
	s.Require().NoError(err)

	s.Require().Len(cafes, 1)
	s.Equal("Alpha", cafes[0].Name)
}

func (s *CafeDAOSuite) TestUpdateCoffeePrice() {
	original := s.insert("Alpha", "Peckham")

	s.Require().NoError(s.dao.UpdateCoffeePrice(s.ctx, original.ID, strPtr("£5.67")))

	found, err := s.dao.FindByID(s.ctx, original.ID)
	s.Require().NoError(err)

	expected := original
	expected.CoffeePrice = strPtr("£5.67")
	s.Equal(expected, found)
}

func (s *CafeDAOSuite) TestUpdateCoffeePrice_Null() {
	original := s.insert("Alpha", "Peckham")

	s.Require().NoError(s.dao.UpdateCoffeePrice(s.ctx, original.ID, nil))

	found, err := s.dao.FindByID(s.ctx, original.ID)
	s.Require().NoError(err)
	s.Nil(found.CoffeePrice)
}

func (s *CafeDAOSuite) TestUpdateCoffeePrice_NotFound() {
	original := s.insert("Alpha", "Peckham")

	err := s.dao.UpdateCoffeePrice(s.ctx, original.ID+1, strPtr("£1.00"))
	s.ErrorIs(err, ErrCafeNotFound)

	found, err := s.dao.FindByID(s.ctx, original.ID)
	s.Require().NoError(err)
	s.Equal(original, found)
}

func (s *CafeDAOSuite) TestDelete() {
	original := s.insert("Alpha", "Peckham")

	s.Require().NoError(s.dao.Delete(s.ctx, original.ID))
	s.Equal(int64(0), s.count())

	s.ErrorIs(s.dao.Delete(s.ctx, original.ID), ErrCafeNotFound)
}

func (s *CafeDAOSuite) TestPing() {
	s.NoError(s.dao.Ping(s.ctx))
}
