package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// an in-memory database lives only as long as its connections
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	models := []struct {
		name  string
		model any
	}{
		{"Candidate", entities.Candidate{}},
		{"JobRole", entities.JobRole{}},
		{"Presentation", entities.Presentation{}},
		{"Employer", entities.Employer{}},
		{"Message", entities.Message{}},
	}

	for _, m := range models {
		if err := c.DB.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("failed to migrate %s entity: %w", m.name, err)
		}
	}

	return nil
}

// Seed fills an empty store with SampleData. A store that already holds
// candidates is left untouched.
func (c *DbContext) Seed(now time.Time) error {
	var candidatesCount int64
	if err := c.DB.Model(entities.Candidate{}).Count(&candidatesCount).Error; err != nil {
		return fmt.Errorf("failed to count candidates: %w", err)
	}

	if candidatesCount > 0 {
		return nil
	}

	data := SampleData(now)

	return c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&data.Candidates).Error; err != nil {
			return fmt.Errorf("failed to seed candidates: %w", err)
		}
		if err := tx.Create(&data.JobRoles).Error; err != nil {
			return fmt.Errorf("failed to seed job roles: %w", err)
		}
		if err := tx.Create(&data.Presentations).Error; err != nil {
			return fmt.Errorf("failed to seed presentations: %w", err)
		}
		if err := tx.Create(&data.Employers).Error; err != nil {
			return fmt.Errorf("failed to seed employers: %w", err)
		}
		if err := tx.Create(&data.Messages).Error; err != nil {
			return fmt.Errorf("failed to seed messages: %w", err)
		}
		return nil
	})
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
