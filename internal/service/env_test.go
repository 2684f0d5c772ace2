package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"github.com/texnomart/backend/internal/audit"
	"github.com/texnomart/backend/internal/cache"
	"github.com/texnomart/backend/internal/config"
	"github.com/texnomart/backend/internal/models"
	"github.com/texnomart/backend/internal/notify"
	"github.com/texnomart/backend/internal/repo"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

type catalogEnv struct {
	svc      *CatalogService
	db       *gorm.DB
	sender   *fakeSender
	auditDir string
}

func newCatalogEnv(t *testing.T) *catalogEnv {
	t.Helper()

	db := newTestDB(t)
	dir := t.TempDir()
	sender := &fakeSender{}

	svc := &CatalogService{
		Repo:     &repo.GormRepo{DB: db},
		Cache:    cache.New(cache.DefaultTTL),
		Audit:    audit.New(dir),
		Notifier: &notify.Notifier{Sender: sender, From: "shop@texnomart.uz"},
	}

	return &catalogEnv{svc: svc, db: db, sender: sender, auditDir: dir}
}

func (env *catalogEnv) createAdmin(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, env.db.Create(&models.User{
		Username:     "admin_" + email,
		PasswordHash: "x",
		Role:         "admin",
		Email:        email,
	}).Error)
}
