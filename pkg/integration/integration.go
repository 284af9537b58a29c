package integration

import (
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/config"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/pkg/migration"

	// for integration test, must not be imported in any main.go
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// EnabledEnv guards integration tests: they only run when this
// environment variable is set, so unit runs need no database.
const EnabledEnv = "CHATPILOT_INTEGRATION_TEST"

// Enabled ...
func Enabled() bool {
	return os.Getenv(EnabledEnv) != ""
}

// TestCase ...
type TestCase struct {
	DB   *sqlx.DB
	Conf config.Config
}

var initOnce sync.Once

var globalConf config.Config
var globalDB *sqlx.DB

// NewTestCase ...
func NewTestCase() *TestCase {
	initOnce.Do(func() {
		rootDir := findRootDir()

		conf := config.LoadTestConfig(rootDir)
		migration.MigrateUpForTesting(rootDir, conf.MySQL.DSN())

		db := conf.MySQL.MustConnect()

		globalConf = conf
		globalDB = db
	})

	return &TestCase{
		Conf: globalConf,
		DB:   globalDB,
	}
}

// Truncate ...
func (tc *TestCase) Truncate(table string) {
	tc.DB.MustExec(fmt.Sprintf("TRUNCATE %s", table))
}

func findRootDir() string {
	workdir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	directory := workdir
	for {
		entries, err := os.ReadDir(directory)
		if err != nil {
			panic(err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if entry.Name() == "go.mod" {
				return directory
			}
		}

		directory = path.Dir(directory)
	}
}
