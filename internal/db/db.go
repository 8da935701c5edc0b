package db

import (
	"fmt"

	"taskdeck/internal/auth"
	"taskdeck/internal/task"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError so a duplicate email surfaces as gorm.ErrDuplicatedKey.
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.User{},
		&task.Task{},
	); err != nil {
		return err
	}

	// Query paths: list by owner (default created_at desc), status/priority
	// filters, due-date sorting.
	stmts := []string{
		`create index if not exists idx_tasks_user_created on tasks(user_id, created_at desc);`,
		`create index if not exists idx_tasks_user_status on tasks(user_id, status);`,
		`create index if not exists idx_tasks_user_priority on tasks(user_id, priority);`,
		`create index if not exists idx_tasks_user_due on tasks(user_id, due_date);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
