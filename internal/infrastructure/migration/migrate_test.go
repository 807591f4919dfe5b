package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alcatelz/internal/app/server/config"
)

// MockMigrator: мок для интерфейса Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

var testDB = config.DB{DatabaseURI: "postgres://localhost/alcatelz", Migrations: "migrations"}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)

	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	var gotSource, gotDB string
	engine := func(source, db string) (Migrator, error) {
		gotSource, gotDB = source, db
		return mockM, nil
	}

	err := NewMigration(testDB, engine).Up()

	assert.NoError(t, err)
	assert.Equal(t, "file://migrations", gotSource)
	assert.Equal(t, "postgres://localhost/alcatelz", gotDB)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)

	// ErrNoChange не должна считаться ошибкой в методе Up()
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(testDB, engine).Up()

	assert.NoError(t, err)
}

func TestMigration_Up_Failure(t *testing.T) {
	mockM := new(MockMigrator)

	mockM.On("Up").Return(errors.New("dirty database"))
	mockM.On("Close").Return(nil, errors.New("close failed"))

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(testDB, engine).Up()

	assert.ErrorContains(t, err, "dirty database")
	assert.ErrorContains(t, err, "close failed")
}

func TestMigration_Up_EngineError(t *testing.T) {
	// Ошибка на этапе создания мигратора (например, неверный драйвер)
	engine := func(source, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	err := NewMigration(testDB, engine).Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}
